package roster

import (
	"regexp"
	"strconv"
	"time"
)

// The anchor cell holding the first week-commencing date, e.g.
// "W/C 03/11/2024".
const (
	anchorRow = 2
	anchorCol = 1
)

var wcPattern = regexp.MustCompile(`(?i)w/?c\s*(\d{1,2})/(\d{1,2})/(\d{4})`)

// WeekCommencing resolves the Sunday that starts week 1 of the rotation
// from the directory sheet's anchor cell. Date and number cells resolve
// directly; text is matched against the W/C day/month/year pattern.
func WeekCommencing(w *Workbook, sheet string) (time.Time, error) {
	v := w.Cell(sheet, anchorRow, anchorCol)

	if d, ok := v.Date(); ok {
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local), nil
	}

	m := wcPattern.FindStringSubmatch(v.String())
	if m == nil {
		return time.Time{}, ErrNoWeekCommencing
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}
