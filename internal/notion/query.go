package notion

import "time"

// Sort directions accepted by the query endpoint.
const (
	Ascending  = "ascending"
	Descending = "descending"
)

// dateLayout is the format Notion uses for date-only filter values.
const dateLayout = "2006-01-02"

// Query is the JSON body of a database query.
type Query struct {
	Filter      *Filter `json:"filter,omitempty"`
	Sorts       []Sort  `json:"sorts,omitempty"`
	StartCursor string  `json:"start_cursor,omitempty"`
	PageSize    int     `json:"page_size,omitempty"`
}

// Filter is a single property filter.
type Filter struct {
	Property string         `json:"property"`
	Date     *DateCondition `json:"date,omitempty"`
}

// DateCondition filters a date property.
type DateCondition struct {
	Equals string `json:"equals,omitempty"`
}

// Sort orders results by a property.
type Sort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

// DateEquals builds a filter matching pages whose date property falls on day.
// Only the calendar date of day is used, in day's own location.
func DateEquals(property string, day time.Time) *Filter {
	return &Filter{
		Property: property,
		Date:     &DateCondition{Equals: day.Format(dateLayout)},
	}
}

// TasksForDay is the plan database query: entries dated day, ordered by subject.
func TasksForDay(day time.Time) Query {
	return Query{
		Filter: DateEquals(DateProperty, day),
		Sorts:  []Sort{{Property: SubjectProperty, Direction: Ascending}},
	}
}

// ProgressForDay is the progress database query: the single entry dated day.
func ProgressForDay(day time.Time) Query {
	return Query{
		Filter:   DateEquals(DateProperty, day),
		PageSize: 1,
	}
}
