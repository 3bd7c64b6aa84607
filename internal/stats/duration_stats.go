package stats

import "bikeshare.onebusaway.org/internal/models"

// DurationStats summarizes trip durations in seconds. Mean is only
// meaningful when Count is positive.
type DurationStats struct {
	Count int
	Total float64
	Mean  float64
}

func ComputeDurationStats(ds *models.Dataset) DurationStats {
	var stats DurationStats
	for _, trip := range ds.Trips() {
		stats.Total += trip.Duration
		stats.Count++
	}
	if stats.Count > 0 {
		stats.Mean = stats.Total / float64(stats.Count)
	}
	return stats
}
