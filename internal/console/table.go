package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table is an ordered, read-only result set that can be paged.
type Table interface {
	Columns() []string
	Len() int
	Row(i int) []string
}

// WriteTable renders rows [from, to) of t with their positional index in the
// leftmost column.
func WriteTable(w io.Writer, t Table, from, to int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "\t%s\t\n", strings.Join(t.Columns(), "\t"))
	for i := from; i < to; i++ {
		fmt.Fprintf(tw, "%d\t%s\t\n", i, strings.Join(t.Row(i), "\t"))
	}
	return tw.Flush()
}
