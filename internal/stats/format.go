package stats

import (
	"strconv"
)

func formatInt(n int) string {
	return strconv.Itoa(n)
}

// FormatNumber prints a float without trailing zeros (1985, 525.5).
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
