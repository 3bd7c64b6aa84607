package tripdata

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare.onebusaway.org/internal/logging"
	"bikeshare.onebusaway.org/internal/models"
)

func newTestLoader(t *testing.T) (*Loader, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)
	config := Config{DataDir: models.GetFixtureDir(t)}
	return NewLoader(config, logger), &buf
}

func TestLoader_Load(t *testing.T) {
	testCases := []struct {
		name     string
		filter   models.Filter
		wantRows int
	}{
		{"chicago all", models.NewFilter("chicago"), 8},
		{"chicago january", models.Filter{City: "chicago", Month: "jan", Day: "all"}, 4},
		{"chicago monday", models.Filter{City: "chicago", Month: "all", Day: "mon"}, 5},
		{"chicago january monday", models.Filter{City: "chicago", Month: "jan", Day: "mon"}, 2},
		{"chicago december", models.Filter{City: "chicago", Month: "dec", Day: "all"}, 0},
		{"new york city all", models.NewFilter("new york city"), 5},
		{"washington may", models.Filter{City: "washington", Month: "may", Day: "all"}, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			loader, _ := newTestLoader(t)
			ds, err := loader.Load(context.Background(), tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.wantRows, ds.Len())
			assert.Equal(t, tc.filter, ds.Filter())

			for _, trip := range ds.Trips() {
				if n := tc.filter.MonthNumber(); n > 0 {
					assert.Equal(t, n, trip.Month)
				}
				if n := tc.filter.DayNumber(); n >= 0 {
					assert.Equal(t, n, trip.DOW)
				}
				assert.Equal(t, int(trip.StartTime.Month()), trip.Month)
				assert.Equal(t, models.MondayBasedWeekday(trip.StartTime), trip.DOW)
			}
		})
	}
}

func TestLoader_FilteredIsSubsetOfAll(t *testing.T) {
	loader, _ := newTestLoader(t)
	ctx := context.Background()

	all, err := loader.Load(ctx, models.NewFilter("chicago"))
	require.NoError(t, err)
	jan, err := loader.Load(ctx, models.Filter{City: "chicago", Month: "jan", Day: "all"})
	require.NoError(t, err)

	assert.LessOrEqual(t, jan.Len(), all.Len())

	ids := make(map[string]bool)
	for _, trip := range all.Trips() {
		ids[trip.RowID] = true
	}
	for _, trip := range jan.Trips() {
		assert.True(t, ids[trip.RowID], "row %s missing from unfiltered load", trip.RowID)
	}
}

func TestLoader_Idempotent(t *testing.T) {
	loader, _ := newTestLoader(t)
	filter := models.Filter{City: "new york city", Month: "jan", Day: "sun"}

	first, err := loader.Load(context.Background(), filter)
	require.NoError(t, err)
	second, err := loader.Load(context.Background(), filter)
	require.NoError(t, err)

	if diff := cmp.Diff(first.Trips(), second.Trips()); diff != "" {
		t.Errorf("second load differs (-first +second):\n%s", diff)
	}
	assert.Equal(t, first.Columns(), second.Columns())
}

func TestLoader_Columns(t *testing.T) {
	loader, _ := newTestLoader(t)

	chicago, err := loader.Load(context.Background(), models.NewFilter("chicago"))
	require.NoError(t, err)
	assert.True(t, chicago.HasGender())
	assert.True(t, chicago.HasBirthYear())

	first := chicago.At(0)
	assert.Equal(t, "0", first.RowID)
	assert.Equal(t, 300.0, first.Duration)
	assert.Equal(t, "Clark St & Lake St", first.StartStation)
	assert.Equal(t, "Canal St & Madison St", first.EndStation)
	assert.Equal(t, "Subscriber", first.UserType)
	assert.Equal(t, "Male", first.Gender)
	assert.True(t, first.HasBirthYear)
	assert.Equal(t, 1985.0, first.BirthYear)

	blank := chicago.At(2)
	assert.Empty(t, blank.Gender)
	assert.False(t, blank.HasBirthYear)

	washington, err := loader.Load(context.Background(), models.NewFilter("washington"))
	require.NoError(t, err)
	assert.False(t, washington.HasGender())
	assert.False(t, washington.HasBirthYear())
	assert.Equal(t, "1621326", washington.At(0).RowID)
}

func TestLoader_LogsOperation(t *testing.T) {
	loader, buf := newTestLoader(t)
	_, err := loader.Load(context.Background(), models.Filter{City: "chicago", Month: "feb", Day: "all"})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, `"msg":"trips_loaded"`)
	assert.Contains(t, output, `"city":"chicago"`)
	assert.Contains(t, output, `"rows_read":8`)
	assert.Contains(t, output, `"rows_kept":2`)
}

func TestLoader_Errors(t *testing.T) {
	t.Run("unknown city", func(t *testing.T) {
		loader, _ := newTestLoader(t)
		_, err := loader.Load(context.Background(), models.NewFilter("boston"))
		assert.ErrorIs(t, err, ErrUnknownCity)
	})

	t.Run("missing file", func(t *testing.T) {
		loader := NewLoader(Config{DataDir: t.TempDir()}, nil)
		_, err := loader.Load(context.Background(), models.NewFilter("chicago"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("non-canonical month", func(t *testing.T) {
		loader, _ := newTestLoader(t)
		_, err := loader.Load(context.Background(), models.Filter{City: "chicago", Month: "january", Day: "all"})
		assert.Error(t, err)
	})

	t.Run("file override", func(t *testing.T) {
		dir := t.TempDir()
		content := ",Start Time,Trip Duration,Start Station,End Station,User Type\n0,2017-01-02 08:00:00,60,A,B,Subscriber\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.csv"), []byte(content), 0o600))

		loader := NewLoader(Config{DataDir: dir, Files: map[string]string{"chicago": "custom.csv"}}, nil)
		ds, err := loader.Load(context.Background(), models.NewFilter("chicago"))
		require.NoError(t, err)
		assert.Equal(t, 1, ds.Len())
	})
}

type failingCloser struct {
	io.Reader
}

func (failingCloser) Close() error {
	return assert.AnError
}

func TestLoader_CloseFailureKeepsDataset(t *testing.T) {
	loader, buf := newTestLoader(t)
	loader.open = func(path string) (io.ReadCloser, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return failingCloser{Reader: bytes.NewReader(data)}, nil
	}

	ds, err := loader.Load(context.Background(), models.NewFilter("washington"))
	require.NoError(t, err)
	require.NotNil(t, ds)
	assert.Equal(t, 3, ds.Len())

	output := buf.String()
	assert.Contains(t, output, `"msg":"failed to close resource"`)
	assert.Contains(t, output, `"operation":"close_trip_file"`)
}

func TestRead(t *testing.T) {
	ctx := context.Background()
	filter := models.NewFilter("chicago")

	t.Run("empty input", func(t *testing.T) {
		_, _, err := Read(ctx, strings.NewReader(""), filter)
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("missing required column", func(t *testing.T) {
		input := ",Start Time,Trip Duration,Start Station,End Station\n"
		_, _, err := Read(ctx, strings.NewReader(input), filter)
		assert.ErrorIs(t, err, ErrMissingColumn)
		assert.Contains(t, err.Error(), "User Type")
	})

	t.Run("bad timestamp", func(t *testing.T) {
		input := ",Start Time,Trip Duration,Start Station,End Station,User Type\n0,yesterday,60,A,B,Subscriber\n"
		_, _, err := Read(ctx, strings.NewReader(input), filter)
		assert.ErrorIs(t, err, ErrMalformedRecord)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("bad duration", func(t *testing.T) {
		input := ",Start Time,Trip Duration,Start Station,End Station,User Type\n0,2017-01-02 08:00:00,sixty,A,B,Subscriber\n"
		_, _, err := Read(ctx, strings.NewReader(input), filter)
		assert.ErrorIs(t, err, ErrMalformedRecord)
	})

	t.Run("ragged record", func(t *testing.T) {
		input := ",Start Time,Trip Duration,Start Station,End Station,User Type\n0,2017-01-02 08:00:00,60\n"
		_, _, err := Read(ctx, strings.NewReader(input), filter)
		assert.ErrorIs(t, err, ErrMalformedRecord)
	})

	t.Run("no index column uses row position", func(t *testing.T) {
		input := "Start Time,Trip Duration,Start Station,End Station,User Type\n" +
			"2017-01-02T08:00:00,60,A,B,Subscriber\n" +
			"2017-01-03 09:30,90,B,A,Customer\n"
		ds, read, err := Read(ctx, strings.NewReader(input), filter)
		require.NoError(t, err)
		assert.Equal(t, 2, read)
		assert.Equal(t, "0", ds.At(0).RowID)
		assert.Equal(t, "1", ds.At(1).RowID)
		assert.Equal(t, 9, ds.At(1).Hour())
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		input := ",Start Time,Trip Duration,Start Station,End Station,User Type\n0,2017-01-02 08:00:00,60,A,B,Subscriber\n"
		_, _, err := Read(cancelled, strings.NewReader(input), filter)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestConfigPath(t *testing.T) {
	config := Config{DataDir: "data", Files: map[string]string{"washington": "/abs/dc.csv"}}

	path, err := config.Path("new york city")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("data", "new_york_city.csv"), path)

	path, err = config.Path("washington")
	require.NoError(t, err)
	assert.Equal(t, "/abs/dc.csv", path)

	_, err = config.Path("seattle")
	assert.ErrorIs(t, err, ErrUnknownCity)
}
