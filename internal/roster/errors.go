package roster

import (
	"errors"
	"fmt"
	"time"
)

// Client-input failures. Handlers map these to 400 responses with
// diagnostic context; anything else is treated as a server failure.
var (
	ErrNoWeekCommencing = errors.New("could not find first week commencing date")
	ErrNoWeekRows       = errors.New("no valid week rows found")
	ErrDirectoryMissing = errors.New(`sheet "Roster" not found in the workbook`)
)

// SheetNotFoundError reports a link with no matching worker sheet,
// carrying the sheet names actually present.
type SheetNotFoundError struct {
	Link      string
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("no sheet matching %q found", e.Link)
}

// RangeError reports a requested window ending before the roster starts.
type RangeError struct {
	RosterStart time.Time
}

func (e *RangeError) Error() string {
	return "selected dates fall before the roster weeks start"
}

// InvalidDateError reports an unparseable start or end date filter.
type InvalidDateError struct {
	Field string
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid %s %q, expected YYYY-MM-DD", e.Field, e.Value)
}
