package models

// Common constants used across the application
const (
	// AllToken disables filtering on the month or day axis.
	AllToken = "all"

	// KeyLength is the length of a canonical month or day key.
	KeyLength = 3
)

// MonthTokens is the accepted month vocabulary. The index of a canonical
// three letter key within this list is its month number (jan=1).
var MonthTokens = []string{
	"all", "jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec",
	"january", "february", "march", "april", "may", "june", "july", "august", "september",
	"october", "november", "december",
}

// DayTokens is the accepted day-of-week vocabulary. The index of a canonical
// three letter key within this list is its day number (mon=0).
var DayTokens = []string{
	"mon", "tue", "wed", "thu", "fri", "sat", "sun", "all",
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// MonthIndex returns the month number for a canonical month key, or -1 when
// the key is not part of the vocabulary. "all" maps to 0.
func MonthIndex(key string) int {
	return indexOf(MonthTokens, key)
}

// DayIndex returns the Monday-based day number for a canonical day key, or -1
// when the key is unknown. "all" maps to 7.
func DayIndex(key string) int {
	return indexOf(DayTokens, key)
}

func indexOf(tokens []string, key string) int {
	for i, token := range tokens {
		if token == key {
			return i
		}
	}
	return -1
}
