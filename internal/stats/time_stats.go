package stats

import "bikeshare.onebusaway.org/internal/models"

// TimeStats holds the month, weekday and start-hour distributions. Reports
// show only the top row of each.
type TimeStats struct {
	Months   models.Distribution
	Weekdays models.Distribution
	Hours    models.Distribution
}

func ComputeTimeStats(ds *models.Dataset) TimeStats {
	return TimeStats{
		Months:   CountByNumber(ds, "Month", "Month Count", func(t models.Trip) int { return t.Month }),
		Weekdays: CountByNumber(ds, "DOW", "DOW Count", func(t models.Trip) int { return t.DOW }),
		Hours:    CountByNumber(ds, "Start Hour", "Hour Count", models.Trip.Hour),
	}
}
