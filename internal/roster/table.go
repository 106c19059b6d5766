package roster

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"rota-reader/internal/model"
)

const (
	// DefaultWeeks is the window materialized when no end date asks for
	// more; MaxWeeks caps any window, truncating with a warning.
	DefaultWeeks = 26
	MaxWeeks     = 52

	// RestDayMarker is the turn code recording a rest day.
	RestDayMarker = "RD"

	weekNumberCol = 1
	totalHoursCol = 2
	firstDayCol   = 3
	colsPerDay    = 4
)

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

const dateLayout = "2006-01-02"

type weekRow struct {
	row        int
	weekNumber int
}

// ShiftTable walks an employee's sheet and materializes a bounded window
// of roster weeks starting from the employee's current week number. The
// window wraps around the parsed week rows, repeating the rotation once
// the table is exhausted. The returned warning is non-empty when an end
// date filter was truncated to MaxWeeks.
func ShiftTable(w *Workbook, sheet string, rosterStart time.Time, sel model.EmployeeSelection) ([]model.WeekData, string, error) {
	weekRows := parseWeekRows(w, sheet)
	if len(weekRows) == 0 {
		return nil, "", ErrNoWeekRows
	}

	startIndex := 0
	for i, wr := range weekRows {
		if wr.weekNumber == sel.Wk {
			startIndex = i
			break
		}
	}

	startFilter := rosterStart
	if sel.StartDate != "" {
		d, err := time.ParseInLocation(dateLayout, sel.StartDate, time.Local)
		if err != nil {
			return nil, "", &InvalidDateError{Field: "startDate", Value: sel.StartDate}
		}
		startFilter = d
	}

	var endFilter *time.Time
	if sel.EndDate != "" {
		d, err := time.ParseInLocation(dateLayout, sel.EndDate, time.Local)
		if err != nil {
			return nil, "", &InvalidDateError{Field: "endDate", Value: sel.EndDate}
		}
		endFilter = &d
	}

	if endFilter != nil && endFilter.Before(rosterStart) {
		return nil, "", &RangeError{RosterStart: rosterStart}
	}

	weeks := DefaultWeeks
	warning := ""
	if endFilter != nil {
		if n := weeksUntil(rosterStart, *endFilter) + 1; n > weeks {
			weeks = n
		}
		if weeks > MaxWeeks {
			weeks = MaxWeeks
			lastCovered := rosterStart.AddDate(0, 0, MaxWeeks*7-1)
			warning = fmt.Sprintf("Only %d weeks allowed from Roster WC %s. Results displayed until %s.",
				MaxWeeks, rosterStart.Format(dateLayout), lastCovered.Format(dateLayout))
		}
	}

	var weeksData []model.WeekData
	for i := 0; i < weeks; i++ {
		wr := weekRows[(startIndex+i)%len(weekRows)]
		totalHours := w.Cell(sheet, wr.row, totalHoursCol).String()

		var shifts []model.Shift
		for day := 0; day < 7; day++ {
			base := firstDayCol + day*colsPerDay
			onTime := w.Cell(sheet, wr.row, base).String()
			offTime := w.Cell(sheet, wr.row, base+1).String()
			turn := w.Cell(sheet, wr.row, base+2).String()
			dayTotal := w.Cell(sheet, wr.row, base+3).String()

			shiftDate := rosterStart.AddDate(0, 0, i*7+day)
			if shiftDate.Before(startFilter) || (endFilter != nil && shiftDate.After(*endFilter)) {
				continue
			}

			shifts = append(shifts, buildShift(wr.weekNumber, day, shiftDate, onTime, offTime, turn, dayTotal))
		}

		if len(shifts) == 0 {
			continue
		}

		weeksData = append(weeksData, model.WeekData{
			WeekNumber:     wr.weekNumber,
			WeekCommencing: rosterStart.AddDate(0, 0, i*7).Format(dateLayout),
			TotalHours:     totalHours,
			Shifts:         shifts,
		})
	}

	return weeksData, warning, nil
}

// parseWeekRows collects every row whose first column parses as an
// integer week number, in sheet order. Anything else is skipped.
func parseWeekRows(w *Workbook, sheet string) []weekRow {
	var rows []weekRow
	count := w.RowCount(sheet)
	for r := 1; r <= count; r++ {
		n, err := strconv.Atoi(w.Cell(sheet, r, weekNumberCol).String())
		if err != nil {
			continue
		}
		rows = append(rows, weekRow{row: r, weekNumber: n})
	}
	return rows
}

func buildShift(weekNumber, day int, date time.Time, onTime, offTime, turn, dayTotal string) model.Shift {
	isRestDay := turn == RestDayMarker || (onTime == "" && offTime == "" && turn == "")
	endsNextDay := EndsNextDay(onTime, offTime)

	s := model.Shift{
		WeekNumber:  weekNumber,
		Day:         dayNames[day],
		Date:        date.Format(dateLayout),
		IsRestDay:   isRestDay,
		EndsNextDay: endsNextDay,
	}
	if isRestDay {
		return s
	}

	s.StartTime = ptr(onTime)
	s.EndTime = ptr(offTime)
	s.Reference = ptr(turn)
	s.TotalHours = ptr(dayTotal)

	if onTime != "" && offTime != "" {
		s.StartDateTime = ptr(date.Format(dateLayout) + "T" + onTime + ":00")
		endDate := date
		if endsNextDay {
			endDate = date.AddDate(0, 0, 1)
		}
		s.EndDateTime = ptr(endDate.Format(dateLayout) + "T" + offTime + ":00")
	}

	return s
}

// EndsNextDay reports whether a shift finishes after midnight: the end
// hour precedes the start hour, or the end hour falls in [0,6) while the
// start hour is 12 or later (an early-morning finish after a late start).
// This is a heuristic, kept as-is for compatibility with existing rosters.
func EndsNextDay(startTime, endTime string) bool {
	if startTime == "" || endTime == "" {
		return false
	}
	startHour, err := leadingHour(startTime)
	if err != nil {
		return false
	}
	endHour, err := leadingHour(endTime)
	if err != nil {
		return false
	}
	return endHour < startHour || (endHour >= 0 && endHour < 6 && startHour >= 12)
}

func leadingHour(t string) (int, error) {
	h, _, _ := strings.Cut(t, ":")
	return strconv.Atoi(h)
}

// weeksUntil counts whole weeks from start to end, rounding up. The day
// count is rounded to stay exact across DST transitions.
func weeksUntil(start, end time.Time) int {
	days := int(end.Sub(start).Hours()/24 + 0.5)
	return (days + 6) / 7
}

func ptr(s string) *string { return &s }
