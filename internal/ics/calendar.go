package ics

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Calendar is a serializable VCALENDAR document. Lines are joined with
// CRLF as RFC 5545 requires.
type Calendar struct {
	Name     string // X-WR-CALNAME
	ProdID   string
	Timezone string // X-WR-TIMEZONE hint, no conversion is applied
	Events   []Event
}

// Serialize renders the calendar wire text. All-day events use the
// date-only DTSTART/DTEND form; timed events use floating local time
// with no Z suffix.
func (c Calendar) Serialize() string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + c.ProdID,
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"X-WR-CALNAME:" + c.Name,
		"X-WR-TIMEZONE:" + c.Timezone,
	}

	for _, e := range c.Events {
		lines = append(lines,
			"BEGIN:VEVENT",
			"UID:"+newUID(),
			"DTSTAMP:"+time.Now().UTC().Format("20060102T150405Z"),
		)

		if e.AllDay {
			lines = append(lines,
				"DTSTART;VALUE=DATE:"+e.Start.Format("20060102"),
				"DTEND;VALUE=DATE:"+e.End.Format("20060102"),
			)
		} else {
			lines = append(lines,
				"DTSTART:"+e.Start.Format("20060102T150405"),
				"DTEND:"+e.End.Format("20060102T150405"),
			)
		}

		lines = append(lines, "SUMMARY:"+EscapeText(e.Summary))
		if e.Description != "" {
			lines = append(lines, "DESCRIPTION:"+EscapeText(e.Description))
		}
		if e.Category != "" {
			lines = append(lines, "CATEGORIES:"+EscapeText(e.Category))
		}

		if e.AlarmMinutes > 0 {
			lines = append(lines,
				"BEGIN:VALARM",
				"ACTION:DISPLAY",
				"DESCRIPTION:"+EscapeText(e.Summary),
				fmt.Sprintf("TRIGGER:-PT%dM", e.AlarmMinutes),
				"END:VALARM",
			)
		}

		lines = append(lines, "END:VEVENT")
	}

	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, "\r\n")
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\n", `\n`,
)

// EscapeText escapes calendar text values in a single pass, so
// backslashes introduced by one rule are never re-escaped by another.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// UnescapeText inverts EscapeText.
func UnescapeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			if s[i] == 'n' {
				b.WriteByte('\n')
			} else {
				b.WriteByte(s[i])
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// newUID builds a globally unique event identifier from the current
// time and a random suffix.
func newUID() string {
	suffix, _, _ := strings.Cut(uuid.NewString(), "-")
	return fmt.Sprintf("%d-%s@rota-reader", time.Now().UnixMilli(), suffix)
}
