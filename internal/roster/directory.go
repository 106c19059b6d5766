package roster

import (
	"fmt"
	"strconv"
	"strings"

	"rota-reader/internal/model"
)

const (
	directoryHeaderRows = 7
	directoryWkCol      = 1
	directoryNameCol    = 2

	// The directory sheet has exactly three link blocks, each closed by
	// a "Total" row. Scanning stops after the third.
	directoryBlocks = 3
)

// ParseDirectory scans the directory sheet into ordered link groups.
// Differently shaped sheets produce a truncated or empty result rather
// than an error.
func ParseDirectory(w *Workbook, sheet string) []model.Link {
	var links []model.Link
	var current *model.Link

	linkNumber := 0
	totals := 0
	rows := w.RowCount(sheet)

	for row := directoryHeaderRows + 1; row <= rows; row++ {
		wkText := w.Cell(sheet, row, directoryWkCol).String()
		nameText := w.Cell(sheet, row, directoryNameCol).String()

		if containsTotal(wkText) || containsTotal(nameText) {
			if current != nil && len(current.Employees) > 0 {
				links = append(links, *current)
			}
			current = nil
			totals++
			if totals >= directoryBlocks {
				break
			}
			continue
		}

		if wkText == "" || nameText == "" || strings.EqualFold(wkText, "wk") {
			continue
		}

		if current == nil {
			linkNumber++
			current = &model.Link{Link: fmt.Sprintf("Link %d", linkNumber)}
		}

		// A week cell that does not parse still records the employee,
		// defaulting to week 0.
		wk, _ := strconv.Atoi(wkText)
		current.Employees = append(current.Employees, model.Employee{Name: nameText, Wk: wk})
	}

	return links
}

func containsTotal(s string) bool {
	return strings.Contains(strings.ToLower(s), "total")
}
