package models

import "strconv"

// DistributionRow is one group of a count-by aggregation.
type DistributionRow struct {
	Keys  []string
	Count int
}

// Distribution is a full count-by result, ordered by descending count.
// Header names the key columns followed by the count column.
type Distribution struct {
	Header []string
	Rows   []DistributionRow
}

func (d Distribution) Len() int {
	return len(d.Rows)
}

// Columns returns the header labels.
func (d Distribution) Columns() []string {
	return d.Header
}

// Row renders the i-th row as cells matching Columns.
func (d Distribution) Row(i int) []string {
	row := d.Rows[i]
	cells := make([]string, 0, len(row.Keys)+1)
	cells = append(cells, row.Keys...)
	return append(cells, strconv.Itoa(row.Count))
}

// Total is the sum of all group counts.
func (d Distribution) Total() int {
	total := 0
	for _, row := range d.Rows {
		total += row.Count
	}
	return total
}

// Top returns the most frequent group, or false when the distribution is empty.
func (d Distribution) Top() (DistributionRow, bool) {
	if len(d.Rows) == 0 {
		return DistributionRow{}, false
	}
	return d.Rows[0], true
}

// Head returns a distribution holding at most the first n rows.
func (d Distribution) Head(n int) Distribution {
	if n > len(d.Rows) {
		n = len(d.Rows)
	}
	return Distribution{Header: d.Header, Rows: d.Rows[:n]}
}
