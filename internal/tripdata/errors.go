package tripdata

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCity     = errors.New("unknown city")
	ErrEmptyFile       = errors.New("trip file has no header row")
	ErrMissingColumn   = errors.New("required column missing")
	ErrMalformedRecord = errors.New("malformed trip record")
)

func unknownCityError(city string) error {
	return fmt.Errorf("%w: %q", ErrUnknownCity, city)
}

func malformedError(line int, column, value string, cause error) error {
	return fmt.Errorf("%w: line %d, column %q, value %q: %v", ErrMalformedRecord, line, column, value, cause)
}
