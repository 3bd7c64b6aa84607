package models

import "fmt"

// Filter is a validated (city, month, day) selection. Month and Day hold
// canonical three letter keys or AllToken.
type Filter struct {
	City  string
	Month string
	Day   string
}

// NewFilter returns a Filter selecting every trip of the given city.
func NewFilter(city string) Filter {
	return Filter{City: city, Month: AllToken, Day: AllToken}
}

// MonthNumber returns 1-12 for a month filter, or 0 when Month is "all".
func (f Filter) MonthNumber() int {
	if f.Month == AllToken {
		return 0
	}
	return MonthIndex(f.Month)
}

// DayNumber returns 0-6 (Monday=0) for a day filter, or -1 when Day is "all".
func (f Filter) DayNumber() int {
	if f.Day == AllToken {
		return -1
	}
	return DayIndex(f.Day)
}

// Validate reports whether every field of the filter is a known canonical value.
func (f Filter) Validate() error {
	if _, ok := FindCity(f.City); !ok {
		return fmt.Errorf("unknown city %q", f.City)
	}
	if f.Month != AllToken && (len(f.Month) != KeyLength || MonthIndex(f.Month) < 1) {
		return fmt.Errorf("unknown month key %q", f.Month)
	}
	if f.Day != AllToken && (len(f.Day) != KeyLength || DayIndex(f.Day) < 0) {
		return fmt.Errorf("unknown day key %q", f.Day)
	}
	return nil
}

func (f Filter) String() string {
	return fmt.Sprintf("%s for %s month/s and %s day/s", f.City, f.Month, f.Day)
}
