package ics

import (
	"regexp"
	"strings"
	"time"

	"rota-reader/internal/model"
)

// Event is one calendar event descriptor, ready for serialization.
// AlarmMinutes <= 0 means no reminder.
type Event struct {
	Summary      string
	Description  string
	Start        time.Time
	End          time.Time
	AllDay       bool
	Category     string
	AlarmMinutes int
}

const (
	restDayTitle    = "Rest Day (RD)"
	restDayCategory = "REST_DAY"
	dateLayout      = "2006-01-02"
	dateTimeLayout  = "2006-01-02T15:04:05"
)

// FromShifts maps shifts to calendar events. Rest days become all-day
// events when included; working shifts lacking either datetime are
// skipped.
func FromShifts(shifts []model.Shift, includeRestDays bool, settings model.EventSettings) []Event {
	var events []Event

	for _, shift := range shifts {
		if shift.IsRestDay {
			if !includeRestDays {
				continue
			}
			date, err := time.ParseInLocation(dateLayout, shift.Date, time.Local)
			if err != nil {
				continue
			}
			alarm := 0
			if settings.RestDayReminder {
				alarm = settings.RestDayReminderMinutes
			}
			events = append(events, Event{
				Summary:      restDayTitle,
				Description:  "Rest Day",
				Start:        date,
				End:          date.AddDate(0, 0, 1),
				AllDay:       true,
				Category:     restDayCategory,
				AlarmMinutes: alarm,
			})
			continue
		}

		if shift.StartDateTime == nil || shift.EndDateTime == nil {
			continue
		}
		start, err := time.ParseInLocation(dateTimeLayout, *shift.StartDateTime, time.Local)
		if err != nil {
			continue
		}
		end, err := time.ParseInLocation(dateTimeLayout, *shift.EndDateTime, time.Local)
		if err != nil {
			continue
		}

		ref := strDeref(shift.Reference)
		events = append(events, Event{
			Summary:      eventName(ref, strDeref(shift.StartTime), strDeref(shift.EndTime), settings),
			Description:  orShift(ref) + " - " + strDeref(shift.StartTime) + " to " + strDeref(shift.EndTime),
			Start:        start,
			End:          end,
			Category:     Category(ref),
			AlarmMinutes: settings.ShiftReminderMinutes,
		})
	}

	return events
}

// eventName applies the configured naming template. Templates needing
// times fall back to the reference when a time is missing; an empty
// reference falls back to the generic "Shift" label.
func eventName(reference, startTime, endTime string, settings model.EventSettings) string {
	ref := orShift(reference)
	hasTimes := startTime != "" && endTime != ""

	switch settings.EventNameFormat {
	case model.NameFormatTimes:
		if hasTimes {
			return startTime + "-" + endTime
		}
	case model.NameFormatTimesWithRef:
		if hasTimes {
			return startTime + "-" + endTime + " (" + ref + ")"
		}
	case model.NameFormatDetailed:
		if hasTimes {
			return "Shift " + ref + " (" + startTime + "-" + endTime + ")"
		}
	case model.NameFormatCustom:
		return settings.CustomPrefix + ref
	}
	return ref
}

var (
	fourDigits  = regexp.MustCompile(`^\d{4}$`)
	nonCategory = regexp.MustCompile(`[^A-Z0-9_]`)
)

// Category derives an event category from the turn code. The rules are
// ordered; the first match wins.
func Category(reference string) string {
	if reference == "" {
		return "SHIFT"
	}
	ref := strings.ToUpper(reference)
	switch {
	case strings.Contains(ref, "A/R") || strings.HasPrefix(ref, "AR"):
		return "AR_SHIFT"
	case fourDigits.MatchString(ref):
		return "REF_" + ref
	case strings.Contains(ref, "TRAIN"):
		return "TRAINING"
	case strings.Contains(ref, "MEET"):
		return "MEETING"
	default:
		return nonCategory.ReplaceAllString(ref, "_")
	}
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orShift(ref string) string {
	if ref == "" {
		return "Shift"
	}
	return ref
}
