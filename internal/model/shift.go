package model

// Shift is one day's schedule entry for an employee. Time and reference
// fields are nil on rest days.
type Shift struct {
	WeekNumber    int     `json:"weekNumber"`
	Day           string  `json:"day"`
	Date          string  `json:"date"`
	StartTime     *string `json:"startTime"`
	EndTime       *string `json:"endTime"`
	StartDateTime *string `json:"startDateTime"`
	EndDateTime   *string `json:"endDateTime"`
	Reference     *string `json:"reference"`
	TotalHours    *string `json:"totalHours"`
	IsRestDay     bool    `json:"isRestDay"`
	EndsNextDay   bool    `json:"endsNextDay"`
}

// WeekData is one roster week. Shifts are in Sunday..Saturday order
// before any date filtering.
type WeekData struct {
	WeekNumber     int     `json:"weekNumber"`
	WeekCommencing string  `json:"weekCommencing"`
	TotalHours     string  `json:"totalHours"`
	Shifts         []Shift `json:"shifts"`
}

type Employee struct {
	Name string `json:"name"`
	Wk   int    `json:"wk"`
}

// Link groups the employees of one link block in the directory sheet.
type Link struct {
	Link      string     `json:"link"`
	Employees []Employee `json:"employees"`
}
