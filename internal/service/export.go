package service

import (
	"errors"
	"regexp"
	"strconv"
	"time"

	"rota-reader/internal/config"
	"rota-reader/internal/ics"
	"rota-reader/internal/model"
)

// ErrMissingShift is returned for single exports without a shift record.
var ErrMissingShift = errors.New("single shift export requires a shift record")

// Export types accepted in DownloadRequest.Type.
const (
	ExportAll    = "all"
	ExportMonth  = "month"
	ExportSingle = "single"
)

// ExportService turns shift data into downloadable calendar feeds.
type ExportService struct {
	rosters *RosterService
	cal     config.CalendarConfig
}

func NewExportService(rosters *RosterService, cal config.CalendarConfig) *ExportService {
	return &ExportService{rosters: rosters, cal: cal}
}

type Export struct {
	Filename string
	Content  string
}

// Build produces the calendar document and file name for a download
// request. Single exports bypass the table parser and serialize the
// caller-supplied shift directly.
func (s *ExportService) Build(path string, req model.DownloadRequest) (*Export, error) {
	settings := model.DefaultEventSettings()
	if req.Settings != nil {
		settings = *req.Settings
	}

	var shifts []model.Shift
	if req.Type == ExportSingle {
		if req.Shift == nil {
			return nil, ErrMissingShift
		}
		shifts = []model.Shift{*req.Shift}
	} else {
		result, err := s.rosters.ShiftData(path, req.EmployeeData)
		if err != nil {
			return nil, err
		}
		for _, week := range result.WeeksData {
			shifts = append(shifts, week.Shifts...)
		}
		if req.Type == ExportMonth && req.MonthFilter != nil {
			shifts = filterMonth(shifts, *req.MonthFilter)
		}
	}

	cal := ics.Calendar{
		Name:     req.EmployeeData.Name + " Shifts",
		ProdID:   s.cal.ProdID,
		Timezone: s.cal.Timezone,
		Events:   ics.FromShifts(shifts, req.IncludeRestDays, settings),
	}

	return &Export{Filename: exportFilename(req), Content: cal.Serialize()}, nil
}

// filterMonth keeps shifts whose date falls in the zero-based month and
// year of the filter.
func filterMonth(shifts []model.Shift, mf model.MonthFilter) []model.Shift {
	var kept []model.Shift
	for _, shift := range shifts {
		d, err := time.ParseInLocation("2006-01-02", shift.Date, time.Local)
		if err != nil {
			continue
		}
		if int(d.Month())-1 == mf.Month && d.Year() == mf.Year {
			kept = append(kept, shift)
		}
	}
	return kept
}

var unsafeName = regexp.MustCompile(`[^a-zA-Z0-9]`)

func sanitizeName(s string) string {
	return unsafeName.ReplaceAllString(s, "_")
}

func exportFilename(req model.DownloadRequest) string {
	name := sanitizeName(req.EmployeeData.Name) + "_shifts"

	switch req.Type {
	case ExportMonth:
		if req.MonthFilter != nil {
			month := time.Month(req.MonthFilter.Month + 1)
			name += "_" + month.String()[:3] + "_" + strconv.Itoa(req.MonthFilter.Year)
		}
	case ExportSingle:
		if req.Shift != nil {
			ref := "shift"
			if req.Shift.Reference != nil && *req.Shift.Reference != "" {
				ref = sanitizeName(*req.Shift.Reference)
			}
			name += "_" + ref + "_" + req.Shift.Date
		}
	}

	return name + ".ics"
}
