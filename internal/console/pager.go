package console

import (
	"context"
	"strings"

	"bikeshare.onebusaway.org/internal/utils"
)

const (
	pageSizePrompt = "How many records at a time?  Enter a number: "
	nextPagePrompt = "Type stop to abort, or enter for next records: "
	donePrompt     = "Display complete.  Enter to continue: \n"
)

// Paginate offers to show t page by page. Anything but "yes"/"y" skips the
// table entirely.
func (c *Console) Paginate(ctx context.Context, t Table, title string) error {
	answer, err := c.ask(ctx, "\nDo you want to view "+title+" results?  Type yes to view.")
	if err != nil {
		return err
	}
	c.printf("You typed %s.\n", strings.ToLower(answer))
	if !utils.IsAffirmative(answer) {
		return nil
	}

	size := 0
	if _, err := c.askUntil(ctx, pageSizePrompt, func(s string) (string, error) {
		n, err := utils.ParsePageSize(s)
		size = n
		return s, err
	}); err != nil {
		return err
	}

	total := t.Len()
	for i := 0; i < total; i += size {
		end := min(i+size, total)
		c.printf("Records %d to %d\n", i+1, end)
		if err := WriteTable(c.out, t, i, end); err != nil {
			return err
		}

		answer, err := c.ask(ctx, nextPagePrompt)
		if err != nil {
			return err
		}
		if utils.IsStop(answer) {
			break
		}
	}

	_, err = c.ask(ctx, donePrompt)
	return err
}
