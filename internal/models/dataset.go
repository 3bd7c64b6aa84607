package models

// Columns records which optional columns a city's data file carries.
type Columns struct {
	Gender    bool
	BirthYear bool
}

// Dataset is the immutable, filtered collection of trips consumed by every
// report. Accessors hand out copies so no report can alter what later ones see.
type Dataset struct {
	filter  Filter
	columns Columns
	trips   []Trip
}

// NewDataset takes a private copy of trips.
func NewDataset(filter Filter, columns Columns, trips []Trip) *Dataset {
	owned := make([]Trip, len(trips))
	copy(owned, trips)
	return &Dataset{filter: filter, columns: columns, trips: owned}
}

func (d *Dataset) Filter() Filter {
	return d.filter
}

func (d *Dataset) Columns() Columns {
	return d.columns
}

func (d *Dataset) HasGender() bool {
	return d.columns.Gender
}

func (d *Dataset) HasBirthYear() bool {
	return d.columns.BirthYear
}

func (d *Dataset) Len() int {
	return len(d.trips)
}

// At returns the i-th trip by value.
func (d *Dataset) At(i int) Trip {
	return d.trips[i]
}

// Trips returns a copy of all trips in load order.
func (d *Dataset) Trips() []Trip {
	out := make([]Trip, len(d.trips))
	copy(out, d.trips)
	return out
}

// Head returns a copy of at most n leading trips.
func (d *Dataset) Head(n int) []Trip {
	if n > len(d.trips) {
		n = len(d.trips)
	}
	if n < 0 {
		n = 0
	}
	out := make([]Trip, n)
	copy(out, d.trips[:n])
	return out
}
