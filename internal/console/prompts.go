package console

import (
	"context"

	"bikeshare.onebusaway.org/internal/models"
	"bikeshare.onebusaway.org/internal/utils"
)

const (
	cityPrompt    = "\nChoose a city (chicago, new york city, washington): "
	monthPrompt   = "Choose month (all, jan, feb, ..., dec): "
	dayPrompt     = "Choose day (all, mon, tue, ..., sun): "
	restartPrompt = "\nWould you like to restart? Enter yes or no.\n"
)

// Filters asks for city, month and day until each is valid and returns the
// canonical selection.
func (c *Console) Filters(ctx context.Context) (models.Filter, error) {
	c.println("Hello! Let's explore some US bikeshare data!")

	city, err := c.askUntil(ctx, cityPrompt, utils.ValidateCity)
	if err != nil {
		return models.Filter{}, err
	}
	month, err := c.askUntil(ctx, monthPrompt, utils.ValidateMonth)
	if err != nil {
		return models.Filter{}, err
	}
	day, err := c.askUntil(ctx, dayPrompt, utils.ValidateDay)
	if err != nil {
		return models.Filter{}, err
	}

	filter := models.Filter{City: city, Month: month, Day: day}
	c.println(Separator)
	c.printf("You chose %s.\n\n", filter)
	c.println(Separator)
	return filter, nil
}

// Restart asks whether to run another session; only "yes" counts.
func (c *Console) Restart(ctx context.Context) (bool, error) {
	answer, err := c.ask(ctx, restartPrompt)
	if err != nil {
		return false, err
	}
	return utils.IsRestart(answer), nil
}
