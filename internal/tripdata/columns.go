package tripdata

import (
	"fmt"
	"strings"
)

const (
	ColumnStartTime    = "Start Time"
	ColumnTripDuration = "Trip Duration"
	ColumnStartStation = "Start Station"
	ColumnEndStation   = "End Station"
	ColumnUserType     = "User Type"
	ColumnGender       = "Gender"
	ColumnBirthYear    = "Birth Year"
)

var requiredColumns = []string{
	ColumnStartTime,
	ColumnTripDuration,
	ColumnStartStation,
	ColumnEndStation,
	ColumnUserType,
}

// layout maps column names to field positions of a trip file. Optional
// columns hold -1 when absent.
type layout struct {
	rowID        int
	startTime    int
	duration     int
	startStation int
	endStation   int
	userType     int
	gender       int
	birthYear    int
}

// isIndexColumn matches the unlabeled index column pandas writes.
func isIndexColumn(name string) bool {
	return name == "" || name == "Unnamed: 0"
}

func resolveLayout(header []string) (layout, error) {
	positions := make(map[string]int, len(header))
	rowID := -1
	for i, raw := range header {
		name := strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff"))
		if isIndexColumn(name) && rowID < 0 {
			rowID = i
			continue
		}
		if _, seen := positions[name]; !seen {
			positions[name] = i
		}
	}

	for _, name := range requiredColumns {
		if _, ok := positions[name]; !ok {
			return layout{}, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	optional := func(name string) int {
		if pos, ok := positions[name]; ok {
			return pos
		}
		return -1
	}

	return layout{
		rowID:        rowID,
		startTime:    positions[ColumnStartTime],
		duration:     positions[ColumnTripDuration],
		startStation: positions[ColumnStartStation],
		endStation:   positions[ColumnEndStation],
		userType:     positions[ColumnUserType],
		gender:       optional(ColumnGender),
		birthYear:    optional(ColumnBirthYear),
	}, nil
}
