package models

// CalendarEvent is a shift projected into the shape the calendar widget
// consumes. Start and End are local ISO datetime strings built by literal
// concatenation of the shift date and clock times; for overnight shifts the
// End string is numerically earlier than Start because no day is added to the
// date component (inherited display behavior, see calendar service).
type CalendarEvent struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Start           string `json:"start"`
	End             string `json:"end"`
	Color           string `json:"color"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
}
