package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bikeshare.onebusaway.org/internal/models"
)

var (
	ErrInvalidCity     = errors.New("city not recognized")
	ErrInvalidMonth    = errors.New("month not recognized")
	ErrInvalidDay      = errors.New("day not recognized")
	ErrInvalidPageSize = errors.New("page size must be a positive whole number")
)

// ValidateCity lower-cases the input and accepts only exact registry keys.
func ValidateCity(input string) (string, error) {
	city := strings.ToLower(input)
	if _, ok := models.FindCity(city); !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCity, input)
	}
	return city, nil
}

// ValidateMonth accepts any month token and returns its canonical key.
func ValidateMonth(input string) (string, error) {
	key, ok := canonicalKey(models.MonthTokens, input)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidMonth, input)
	}
	return key, nil
}

// ValidateDay accepts any day token and returns its canonical key.
func ValidateDay(input string) (string, error) {
	key, ok := canonicalKey(models.DayTokens, input)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidDay, input)
	}
	return key, nil
}

// canonicalKey matches the full lower-cased token against the vocabulary and
// truncates the match to its first three characters.
func canonicalKey(tokens []string, input string) (string, bool) {
	token := strings.ToLower(input)
	for _, candidate := range tokens {
		if candidate == token {
			return token[:models.KeyLength], true
		}
	}
	return "", false
}

// ParsePageSize accepts digits only. Zero is rejected because it would never
// advance the pager.
func ParsePageSize(input string) (int, error) {
	if input == "" {
		return 0, ErrInvalidPageSize
	}
	for _, r := range input {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidPageSize, input)
		}
	}
	n, err := strconv.Atoi(input)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPageSize, input)
	}
	return n, nil
}

// IsAffirmative reports whether a consent answer is "yes" or "y".
func IsAffirmative(input string) bool {
	answer := strings.ToLower(input)
	return answer == "yes" || answer == "y"
}

// IsRestart reports whether the restart answer is exactly "yes".
func IsRestart(input string) bool {
	return strings.ToLower(input) == "yes"
}

// IsStop reports whether the pager should abort.
func IsStop(input string) bool {
	return strings.ToLower(input) == "stop"
}

// DisplayName title-cases a registry key for banners ("new york city" -> "New York City").
func DisplayName(city string) string {
	return cases.Title(language.English).String(city)
}
