package console

import (
	"context"
	"fmt"
	"strings"

	"bikeshare.onebusaway.org/internal/models"
	"bikeshare.onebusaway.org/internal/stats"
	"bikeshare.onebusaway.org/internal/utils"
)

// PreviewRows is the number of trips echoed after a load.
const PreviewRows = 5

// Section prints heading, runs fn and closes the section with the elapsed time.
func (c *Console) Section(heading string, fn func() error) error {
	c.printf("\n%s\n\n", heading)
	started := c.now()

	if err := fn(); err != nil {
		return err
	}

	c.printf("\nThis took %s seconds.\n", stats.FormatNumber(c.now().Sub(started).Seconds()))
	c.println(Separator)
	return nil
}

// PrintPreview lists the dataset's columns and its first few trips.
func (c *Console) PrintPreview(ds *models.Dataset) error {
	filter := ds.Filter()
	c.printf("%s: %d trips (month: %s, day: %s)\n", utils.DisplayName(filter.City), ds.Len(), filter.Month, filter.Day)

	preview := newTripTable(ds.Columns(), ds.Head(PreviewRows))
	c.printf("Columns: %s\n", strings.Join(preview.Columns(), ", "))
	return WriteTable(c.out, preview, 0, preview.Len())
}

func (c *Console) PrintTimeStats(s stats.TimeStats) error {
	for _, d := range []models.Distribution{s.Months, s.Weekdays, s.Hours} {
		top := d.Head(1)
		if err := WriteTable(c.out, top, 0, top.Len()); err != nil {
			return err
		}
	}
	return nil
}

// PrintStationStats pages through each station distribution.
func (c *Console) PrintStationStats(ctx context.Context, s stats.StationStats) error {
	if err := c.Paginate(ctx, s.StartStations, "Commonly Used Start Station"); err != nil {
		return err
	}
	if err := c.Paginate(ctx, s.EndStations, "Commonly Used End Station"); err != nil {
		return err
	}
	return c.Paginate(ctx, s.Combinations, "Most Frequent Station Combination")
}

func (c *Console) PrintDurationStats(s stats.DurationStats) {
	c.println("Total travel time:")
	c.println(stats.FormatNumber(s.Total))
	c.println("Mean travel time:")
	if s.Count == 0 {
		c.println("n/a")
		return
	}
	c.println(stats.FormatNumber(s.Mean))
}

// PrintUserStats prints user types, then gender and birth-year sections only
// when the data carries those columns.
func (c *Console) PrintUserStats(s stats.UserStats) error {
	if err := WriteTable(c.out, s.UserTypes, 0, s.UserTypes.Len()); err != nil {
		return err
	}

	if s.Genders != nil {
		if err := WriteTable(c.out, s.Genders, 0, s.Genders.Len()); err != nil {
			return err
		}
	}

	if years := s.BirthYears; years != nil {
		if years.Count == 0 {
			c.println("No birth years recorded.")
			return nil
		}
		c.println("Earliest year of birth: ")
		c.println(stats.FormatNumber(years.Earliest))
		c.println("Most recent year of birth: ")
		c.println(stats.FormatNumber(years.MostRecent))
		c.println("Most common year of birth: ")
		for i, year := range years.Modes {
			c.printf("%d    %s\n", i, stats.FormatNumber(year))
		}
	}
	return nil
}

// tripTable adapts raw trips to Table for the load preview.
type tripTable struct {
	columns models.Columns
	trips   []models.Trip
}

func newTripTable(columns models.Columns, trips []models.Trip) tripTable {
	return tripTable{columns: columns, trips: trips}
}

func (t tripTable) Columns() []string {
	header := []string{"rowid", "Start Time", "Trip Duration", "Start Station", "End Station", "User Type"}
	if t.columns.Gender {
		header = append(header, "Gender")
	}
	if t.columns.BirthYear {
		header = append(header, "Birth Year")
	}
	return append(header, "Month", "DOW")
}

func (t tripTable) Len() int {
	return len(t.trips)
}

func (t tripTable) Row(i int) []string {
	trip := t.trips[i]
	cells := []string{
		trip.RowID,
		trip.StartTime.Format("2006-01-02 15:04:05"),
		stats.FormatNumber(trip.Duration),
		trip.StartStation,
		trip.EndStation,
		trip.UserType,
	}
	if t.columns.Gender {
		cells = append(cells, missingAsNaN(trip.Gender))
	}
	if t.columns.BirthYear {
		year := "NaN"
		if trip.HasBirthYear {
			year = stats.FormatNumber(trip.BirthYear)
		}
		cells = append(cells, year)
	}
	return append(cells, fmt.Sprint(trip.Month), fmt.Sprint(trip.DOW))
}

func missingAsNaN(v string) string {
	if v == "" {
		return "NaN"
	}
	return v
}
