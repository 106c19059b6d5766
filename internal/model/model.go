package model

// EmployeeSelection identifies one employee's roster and an optional
// date window. Dates are YYYY-MM-DD.
type EmployeeSelection struct {
	Name      string `json:"name" binding:"required"`
	Link      string `json:"link" binding:"required"`
	Wk        int    `json:"wk"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

type SelectRequest struct {
	Token string `json:"token" binding:"required"`
	EmployeeSelection
}

type ShiftDataResult struct {
	Success          bool              `json:"success"`
	Message          string            `json:"message"`
	SelectedEmployee EmployeeSelection `json:"selectedEmployee"`
	CurrentWeek      int               `json:"currentWeek"`
	WeeksData        []WeekData        `json:"weeksData"`
	Warning          string            `json:"warning,omitempty"`
}

// MonthFilter selects a calendar month. Month is zero-based (0 = January),
// matching the wire format the frontend sends.
type MonthFilter struct {
	Month int `json:"month" binding:"min=0,max=11"`
	Year  int `json:"year"`
}

type DownloadRequest struct {
	Token           string            `json:"token" binding:"required"`
	EmployeeData    EmployeeSelection `json:"employeeData"`
	IncludeRestDays bool              `json:"includeRestDays"`
	Type            string            `json:"type" binding:"required,oneof=all month single"`
	MonthFilter     *MonthFilter      `json:"monthFilter,omitempty"`
	Shift           *Shift            `json:"shift,omitempty"`
	Settings        *EventSettings    `json:"settings,omitempty"`
}

type UploadResult struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Links   []Link `json:"links"`
}

// EventSettings controls how shifts are rendered as calendar events.
type EventSettings struct {
	ShiftReminderMinutes   int    `json:"shiftReminderMinutes"`
	RestDayReminder        bool   `json:"restDayReminder"`
	RestDayReminderMinutes int    `json:"restDayReminderMinutes"`
	EventNameFormat        string `json:"eventNameFormat"`
	CustomPrefix           string `json:"customPrefix,omitempty"`
}

// Event name formats accepted in EventSettings.EventNameFormat.
const (
	NameFormatReference    = "reference"
	NameFormatTimes        = "times"
	NameFormatTimesWithRef = "timesWithRef"
	NameFormatDetailed     = "detailed"
	NameFormatCustom       = "custom"
)

func DefaultEventSettings() EventSettings {
	return EventSettings{EventNameFormat: NameFormatReference}
}
