package models

import "time"

// Trip is one bike trip of a city's trip history.
type Trip struct {
	RowID        string
	StartTime    time.Time
	Duration     float64
	StartStation string
	EndStation   string
	UserType     string
	Gender       string
	BirthYear    float64
	HasBirthYear bool

	// Month (1-12) and DOW (0-6, Monday=0) are derived from StartTime.
	Month int
	DOW   int
}

// NewTrip builds a trip and derives its calendar fields from start.
func NewTrip(rowID string, start time.Time, duration float64) Trip {
	return Trip{
		RowID:     rowID,
		StartTime: start,
		Duration:  duration,
		Month:     int(start.Month()),
		DOW:       MondayBasedWeekday(start),
	}
}

// Hour returns the hour of day (0-23) the trip started.
func (t Trip) Hour() int {
	return t.StartTime.Hour()
}

// MondayBasedWeekday converts time.Weekday (Sunday=0) into Monday=0 numbering.
func MondayBasedWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
