package tripdata

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"bikeshare.onebusaway.org/internal/logging"
	"bikeshare.onebusaway.org/internal/models"
)

// cancellation is checked once per this many records
const cancelCheckInterval = 4096

// Loader reads city trip files and applies month/day filters.
type Loader struct {
	config Config
	logger *slog.Logger
	open   func(path string) (io.ReadCloser, error)
}

func NewLoader(config Config, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{config: config, logger: logger, open: openFile}
}

func openFile(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Load reads the whole file for filter.City and returns the trips matching
// the filter's month and day.
func (l *Loader) Load(ctx context.Context, filter models.Filter) (*models.Dataset, error) {
	if _, ok := models.FindCity(filter.City); !ok {
		return nil, unknownCityError(filter.City)
	}
	if err := filter.Validate(); err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}

	path, err := l.config.Path(filter.City)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	f, err := l.open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening trip file for %s: %w", filter.City, err)
	}
	defer logging.SafeCloseWithLogging(f, l.logger, "close_trip_file")

	ds, read, err := Read(ctx, f, filter)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	logging.LogOperation(l.logger, "trips_loaded",
		slog.String("city", filter.City),
		slog.String("file", path),
		slog.String("month", filter.Month),
		slog.String("day", filter.Day),
		slog.Int("rows_read", read),
		slog.Int("rows_kept", ds.Len()),
		slog.Duration("duration", time.Since(started)))

	return ds, nil
}

// Read parses a trip CSV stream, derives calendar fields for every record
// and keeps those matching filter. It also returns the number of records read.
func Read(ctx context.Context, r io.Reader, filter models.Filter) (*models.Dataset, int, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, ErrEmptyFile
		}
		return nil, 0, fmt.Errorf("read header: %w", err)
	}

	cols, err := resolveLayout(header)
	if err != nil {
		return nil, 0, err
	}

	month := filter.MonthNumber()
	day := filter.DayNumber()

	var trips []models.Trip
	read := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, read, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}

		if read%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, read, err
			}
		}

		line, _ := reader.FieldPos(0)
		trip, err := parseTrip(record, cols, read, line)
		if err != nil {
			return nil, read, err
		}
		read++

		if month > 0 && trip.Month != month {
			continue
		}
		if day >= 0 && trip.DOW != day {
			continue
		}
		trips = append(trips, trip)
	}

	columns := models.Columns{Gender: cols.gender >= 0, BirthYear: cols.birthYear >= 0}
	return models.NewDataset(filter, columns, trips), read, nil
}

func parseTrip(record []string, cols layout, index, line int) (models.Trip, error) {
	start, err := parseTimestamp(record[cols.startTime])
	if err != nil {
		return models.Trip{}, malformedError(line, ColumnStartTime, record[cols.startTime], err)
	}

	rawDuration := strings.TrimSpace(record[cols.duration])
	duration, err := strconv.ParseFloat(rawDuration, 64)
	if err != nil {
		return models.Trip{}, malformedError(line, ColumnTripDuration, rawDuration, err)
	}

	rowID := strconv.Itoa(index)
	if cols.rowID >= 0 {
		rowID = strings.TrimSpace(record[cols.rowID])
	}

	trip := models.NewTrip(rowID, start, duration)
	trip.StartStation = strings.TrimSpace(record[cols.startStation])
	trip.EndStation = strings.TrimSpace(record[cols.endStation])
	trip.UserType = strings.TrimSpace(record[cols.userType])

	if cols.gender >= 0 {
		trip.Gender = strings.TrimSpace(record[cols.gender])
	}
	if cols.birthYear >= 0 {
		if raw := strings.TrimSpace(record[cols.birthYear]); raw != "" {
			year, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return models.Trip{}, malformedError(line, ColumnBirthYear, raw, err)
			}
			trip.BirthYear = year
			trip.HasBirthYear = true
		}
	}

	return trip, nil
}
