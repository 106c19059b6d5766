package service

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"rota-reader/internal/config"
	"rota-reader/internal/model"
	"rota-reader/internal/roster"
)

func testCalendarConfig() config.CalendarConfig {
	return config.CalendarConfig{ProdID: "-//Rota Reader//EN", Timezone: "Europe/London"}
}

// writeWorkbook writes a minimal roster: directory with one link block
// and a single-week "Link 1" rotation.
func writeWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Roster"))
	require.NoError(t, f.SetCellValue("Roster", "A2", "W/C 03/11/2024"))
	require.NoError(t, f.SetCellValue("Roster", "A8", 5))
	require.NoError(t, f.SetCellValue("Roster", "B8", "Alice Smith"))
	require.NoError(t, f.SetCellValue("Roster", "A9", "Total"))
	require.NoError(t, f.SetCellValue("Roster", "A10", "Total"))
	require.NoError(t, f.SetCellValue("Roster", "A11", "Total"))

	_, err := f.NewSheet("Link 1")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Link 1", "A3", 5))
	require.NoError(t, f.SetCellValue("Link 1", "B3", "39:00"))
	require.NoError(t, f.SetCellValue("Link 1", "C3", "06:00"))
	require.NoError(t, f.SetCellValue("Link 1", "D3", "14:00"))
	require.NoError(t, f.SetCellValue("Link 1", "E3", "1234"))
	require.NoError(t, f.SetCellValue("Link 1", "F3", "8:00"))

	path := filepath.Join(t.TempDir(), "roster.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLinks(t *testing.T) {
	links, err := NewRosterService().Links(writeWorkbook(t))
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "Link 1", links[0].Link)
	assert.Equal(t, []model.Employee{{Name: "Alice Smith", Wk: 5}}, links[0].Employees)
}

func TestShiftDataSuccess(t *testing.T) {
	result, err := NewRosterService().ShiftData(writeWorkbook(t), model.EmployeeSelection{
		Name: "Alice Smith", Link: "Link 1", Wk: 5,
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "Retrieved 26 weeks of shifts for Alice Smith", result.Message)
	assert.Equal(t, 5, result.CurrentWeek)
	require.Len(t, result.WeeksData, 26)
	assert.Equal(t, "2024-11-03", result.WeeksData[0].Shifts[0].Date)
}

func TestShiftDataUnknownLink(t *testing.T) {
	_, err := NewRosterService().ShiftData(writeWorkbook(t), model.EmployeeSelection{
		Name: "Alice Smith", Link: "Link 9", Wk: 5,
	})

	var notFound *roster.SheetNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Link 9", notFound.Link)
	assert.Contains(t, notFound.Available, "Roster")
	assert.Contains(t, notFound.Available, "Link 1")
}

func TestBuildMonthExport(t *testing.T) {
	path := writeWorkbook(t)
	exports := NewExportService(NewRosterService(), testCalendarConfig())

	export, err := exports.Build(path, model.DownloadRequest{
		Type:         ExportMonth,
		EmployeeData: model.EmployeeSelection{Name: "Alice Smith", Link: "Link 1", Wk: 5},
		MonthFilter:  &model.MonthFilter{Month: 10, Year: 2024}, // November, zero-based
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice_Smith_shifts_Nov_2024.ics", export.Filename)
	assert.Contains(t, export.Content, "X-WR-CALNAME:Alice Smith Shifts")
	// Sundays 3rd, 10th, 17th and 24th of November fall in the filter.
	assert.Equal(t, 4, strings.Count(export.Content, "BEGIN:VEVENT"))
	assert.NotContains(t, export.Content, "DTSTART:202412")
}
