package service

import (
	"fmt"

	"rota-reader/internal/model"
	"rota-reader/internal/roster"
)

// RosterService extracts link directories and shift data from uploaded
// roster workbooks. Every call reads the workbook fresh; nothing is
// shared between requests.
type RosterService struct{}

func NewRosterService() *RosterService { return &RosterService{} }

// Links parses the directory sheet of the workbook at path.
func (s *RosterService) Links(path string) ([]model.Link, error) {
	w, err := roster.Open(path)
	if err != nil {
		return nil, err
	}
	defer w.Close()

	if !w.HasSheet(roster.DirectorySheet) {
		return nil, roster.ErrDirectoryMissing
	}
	return roster.ParseDirectory(w, roster.DirectorySheet), nil
}

// ShiftData resolves the employee's sheet and materializes their shift
// weeks, applying any date window in the selection.
func (s *RosterService) ShiftData(path string, sel model.EmployeeSelection) (*model.ShiftDataResult, error) {
	w, err := roster.Open(path)
	if err != nil {
		return nil, err
	}
	defer w.Close()

	sheet, ok := w.FindSheet(sel.Link)
	if !ok {
		return nil, &roster.SheetNotFoundError{Link: sel.Link, Available: w.SheetNames()}
	}

	if !w.HasSheet(roster.DirectorySheet) {
		return nil, roster.ErrNoWeekCommencing
	}
	start, err := roster.WeekCommencing(w, roster.DirectorySheet)
	if err != nil {
		return nil, err
	}

	weeks, warning, err := roster.ShiftTable(w, sheet, start, sel)
	if err != nil {
		return nil, err
	}
	if weeks == nil {
		weeks = []model.WeekData{}
	}

	return &model.ShiftDataResult{
		Success:          true,
		Message:          fmt.Sprintf("Retrieved %d weeks of shifts for %s", len(weeks), sel.Name),
		SelectedEmployee: sel,
		CurrentWeek:      sel.Wk,
		WeeksData:        weeks,
		Warning:          warning,
	}, nil
}
