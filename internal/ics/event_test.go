package ics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rota-reader/internal/model"
)

func ptr(s string) *string { return &s }

func workingShift() model.Shift {
	return model.Shift{
		WeekNumber:    5,
		Day:           "Sunday",
		Date:          "2024-11-03",
		StartTime:     ptr("06:00"),
		EndTime:       ptr("14:00"),
		StartDateTime: ptr("2024-11-03T06:00:00"),
		EndDateTime:   ptr("2024-11-03T14:00:00"),
		Reference:     ptr("1234"),
		TotalHours:    ptr("8:00"),
	}
}

func restDay() model.Shift {
	return model.Shift{WeekNumber: 5, Day: "Monday", Date: "2024-11-04", IsRestDay: true}
}

func TestFromShiftsWorkingShift(t *testing.T) {
	events := FromShifts([]model.Shift{workingShift()}, false, model.DefaultEventSettings())
	require.Len(t, events, 1)

	e := events[0]
	assert.Equal(t, "1234", e.Summary)
	assert.Equal(t, "1234 - 06:00 to 14:00", e.Description)
	assert.Equal(t, "2024-11-03 06:00", e.Start.Format("2006-01-02 15:04"))
	assert.Equal(t, "2024-11-03 14:00", e.End.Format("2006-01-02 15:04"))
	assert.False(t, e.AllDay)
	assert.Equal(t, "REF_1234", e.Category)
	assert.Zero(t, e.AlarmMinutes)
}

func TestFromShiftsShiftReminder(t *testing.T) {
	settings := model.DefaultEventSettings()
	settings.ShiftReminderMinutes = 30
	events := FromShifts([]model.Shift{workingShift()}, false, settings)
	require.Len(t, events, 1)
	assert.Equal(t, 30, events[0].AlarmMinutes)
}

func TestFromShiftsSkipsMissingDateTimes(t *testing.T) {
	s := workingShift()
	s.EndDateTime = nil
	assert.Empty(t, FromShifts([]model.Shift{s}, false, model.DefaultEventSettings()))
}

func TestFromShiftsRestDayExcluded(t *testing.T) {
	assert.Empty(t, FromShifts([]model.Shift{restDay()}, false, model.DefaultEventSettings()))
}

func TestFromShiftsRestDayIncluded(t *testing.T) {
	settings := model.DefaultEventSettings()
	settings.RestDayReminder = true
	settings.RestDayReminderMinutes = 480

	events := FromShifts([]model.Shift{restDay()}, true, settings)
	require.Len(t, events, 1)

	e := events[0]
	assert.Equal(t, "Rest Day (RD)", e.Summary)
	assert.True(t, e.AllDay)
	assert.Equal(t, "2024-11-04", e.Start.Format("2006-01-02"))
	assert.Equal(t, "2024-11-05", e.End.Format("2006-01-02"))
	assert.Equal(t, "REST_DAY", e.Category)
	assert.Equal(t, 480, e.AlarmMinutes)
}

func TestFromShiftsRestDayIgnoresCustomPrefix(t *testing.T) {
	settings := model.DefaultEventSettings()
	settings.EventNameFormat = model.NameFormatCustom
	settings.CustomPrefix = "Work: "

	events := FromShifts([]model.Shift{restDay(), workingShift()}, true, settings)
	require.Len(t, events, 2)
	assert.Equal(t, "Rest Day (RD)", events[0].Summary)
	assert.Equal(t, "Work: 1234", events[1].Summary)
}

func TestEventNameFormats(t *testing.T) {
	tests := []struct {
		format string
		prefix string
		want   string
	}{
		{model.NameFormatReference, "", "1234"},
		{model.NameFormatTimes, "", "06:00-14:00"},
		{model.NameFormatTimesWithRef, "", "06:00-14:00 (1234)"},
		{model.NameFormatDetailed, "", "Shift 1234 (06:00-14:00)"},
		{model.NameFormatCustom, "Depot ", "Depot 1234"},
		{"unknown", "", "1234"},
	}
	for _, tt := range tests {
		settings := model.DefaultEventSettings()
		settings.EventNameFormat = tt.format
		settings.CustomPrefix = tt.prefix
		assert.Equal(t, tt.want, eventName("1234", "06:00", "14:00", settings), tt.format)
	}
}

func TestEventNameFallsBackWithoutTimes(t *testing.T) {
	for _, format := range []string{model.NameFormatTimes, model.NameFormatTimesWithRef, model.NameFormatDetailed} {
		settings := model.DefaultEventSettings()
		settings.EventNameFormat = format
		assert.Equal(t, "1234", eventName("1234", "", "", settings), format)
	}

	// Empty reference falls back to the generic label.
	assert.Equal(t, "Shift", eventName("", "", "", model.DefaultEventSettings()))
}

func TestCategory(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"", "SHIFT"},
		{"A/R 1601", "AR_SHIFT"},
		{"ar99", "AR_SHIFT"},
		{"1601", "REF_1601"},
		{"Train 4", "TRAINING"},
		{"Team meet", "MEETING"},
		{"Spare (PM)", "SPARE__PM_"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Category(tt.ref), tt.ref)
	}
}
