package roster

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DirectorySheet is the sheet holding the link directory and the
// week-commencing anchor cell.
const DirectorySheet = "Roster"

// Workbook wraps an open xlsx file with the row/column access the
// parsers need. Cells are addressed 1-based.
type Workbook struct {
	f *excelize.File
}

func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return &Workbook{f: f}, nil
}

func (w *Workbook) Close() error {
	return w.f.Close()
}

func (w *Workbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// FindSheet returns the first sheet whose name contains link,
// case-insensitively.
func (w *Workbook) FindSheet(link string) (string, bool) {
	needle := strings.ToLower(link)
	for _, name := range w.f.GetSheetList() {
		if strings.Contains(strings.ToLower(name), needle) {
			return name, true
		}
	}
	return "", false
}

func (w *Workbook) HasSheet(name string) bool {
	idx, err := w.f.GetSheetIndex(name)
	return err == nil && idx >= 0
}

// RowCount reports how many rows the sheet has.
func (w *Workbook) RowCount(sheet string) int {
	rows, err := w.f.GetRows(sheet)
	if err != nil {
		return 0
	}
	return len(rows)
}

// Cell reads one cell as a tagged Value. Missing cells and read errors
// degrade to the empty value.
func (w *Workbook) Cell(sheet string, row, col int) Value {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return Value{}
	}
	text, err := w.f.GetCellValue(sheet, name)
	if err != nil {
		return Value{}
	}

	ctype, err := w.f.GetCellType(sheet, name)
	if err != nil {
		ctype = excelize.CellTypeUnset
	}

	switch ctype {
	case excelize.CellTypeFormula:
		return Value{Kind: KindFormula, Text: text}
	case excelize.CellTypeBool:
		return Value{Kind: KindBool, Text: text}
	case excelize.CellTypeInlineString, excelize.CellTypeSharedString:
		return Value{Kind: KindText, Text: text}
	case excelize.CellTypeDate:
		return Value{Kind: KindDate, Text: text, Serial: w.rawSerial(sheet, name)}
	case excelize.CellTypeNumber:
		return Value{Kind: KindNumber, Text: text, Serial: w.rawSerial(sheet, name)}
	default:
		// Plain numeric cells carry no type attribute. Classify by the
		// raw stored value instead.
		if raw, err := w.f.GetCellValue(sheet, name, excelize.Options{RawCellValue: true}); err == nil {
			if n, perr := strconv.ParseFloat(strings.TrimSpace(raw), 64); perr == nil {
				return Value{Kind: KindNumber, Text: text, Serial: n}
			}
		}
		if text == "" {
			return Value{}
		}
		return Value{Kind: KindText, Text: text}
	}
}

func (w *Workbook) rawSerial(sheet, cell string) float64 {
	raw, err := w.f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return 0
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return n
}
