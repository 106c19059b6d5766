package roster

import (
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Kind tags the closed set of cell value variants a roster workbook can
// contain. Formula cells carry their cached result, rich text its
// concatenated runs.
type Kind int

const (
	KindEmpty Kind = iota
	KindText
	KindNumber
	KindDate
	KindFormula
	KindBool
)

// Value is one cell's raw content. Text holds the formatted string for
// every kind; Serial holds the spreadsheet date serial for number and
// date kinds.
type Value struct {
	Kind   Kind
	Text   string
	Serial float64
}

// String returns the trimmed plain-text form of the cell. Empty cells
// and unrecognized content yield "".
func (v Value) String() string {
	return strings.TrimSpace(v.Text)
}

// Date resolves number and date kinds through the spreadsheet epoch.
// Other kinds report false; a serial is never treated as a plain number
// when the caller wants a date.
func (v Value) Date() (time.Time, bool) {
	if v.Kind != KindNumber && v.Kind != KindDate {
		return time.Time{}, false
	}
	t, err := excelize.ExcelDateToTime(v.Serial, false)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (v Value) IsEmpty() bool {
	return v.String() == ""
}
