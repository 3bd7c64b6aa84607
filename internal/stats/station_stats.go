package stats

import "bikeshare.onebusaway.org/internal/models"

type StationStats struct {
	StartStations models.Distribution
	EndStations   models.Distribution
	Combinations  models.Distribution
}

func ComputeStationStats(ds *models.Dataset) StationStats {
	start := func(t models.Trip) string { return t.StartStation }
	end := func(t models.Trip) string { return t.EndStation }

	return StationStats{
		StartStations: CountByText(ds, "Start Station", "Station Count", start),
		EndStations:   CountByText(ds, "End Station", "Station Count", end),
		Combinations: CountByPair(ds,
			[]string{"Start Station", "End Station", "Combination Count"}, start, end),
	}
}
