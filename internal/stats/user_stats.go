package stats

import (
	"slices"

	"bikeshare.onebusaway.org/internal/models"
)

// UserStats holds user demographics. Genders and BirthYears are nil when the
// city's file has no such column.
type UserStats struct {
	UserTypes  models.Distribution
	Genders    *models.Distribution
	BirthYears *BirthYearStats
}

// BirthYearStats covers rows with a recorded birth year only. Modes lists
// every year tied for the highest frequency in ascending order.
type BirthYearStats struct {
	Count      int
	Earliest   float64
	MostRecent float64
	Modes      []float64
}

func ComputeUserStats(ds *models.Dataset) UserStats {
	stats := UserStats{
		UserTypes: CountByText(ds, "User Type", "Type Count", func(t models.Trip) string { return t.UserType }),
	}

	if ds.HasGender() {
		genders := CountByText(ds, "Gender", "Gender Count", func(t models.Trip) string { return t.Gender })
		stats.Genders = &genders
	}

	if ds.HasBirthYear() {
		years := computeBirthYears(ds.Trips())
		stats.BirthYears = &years
	}

	return stats
}

func computeBirthYears(trips []models.Trip) BirthYearStats {
	var stats BirthYearStats
	freq := make(map[float64]int)
	for _, trip := range trips {
		if !trip.HasBirthYear {
			continue
		}
		year := trip.BirthYear
		if stats.Count == 0 || year < stats.Earliest {
			stats.Earliest = year
		}
		if stats.Count == 0 || year > stats.MostRecent {
			stats.MostRecent = year
		}
		stats.Count++
		freq[year]++
	}

	best := 0
	for year, n := range freq {
		switch {
		case n > best:
			best = n
			stats.Modes = []float64{year}
		case n == best:
			stats.Modes = append(stats.Modes, year)
		}
	}
	slices.Sort(stats.Modes)
	return stats
}
