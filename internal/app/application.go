package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"bikeshare.onebusaway.org/internal/console"
	"bikeshare.onebusaway.org/internal/logging"
	"bikeshare.onebusaway.org/internal/stats"
	"bikeshare.onebusaway.org/internal/tripdata"
)

// Application holds the dependencies of an interactive session: the
// configuration, a logger, the trip loader and the console.
type Application struct {
	Config  Config
	Logger  *slog.Logger
	Loader  *tripdata.Loader
	Console *console.Console
}

// New wires an Application reading answers from in, printing reports to out
// and writing structured logs to logOut.
func New(cfg Config, in io.Reader, out, logOut io.Writer) *Application {
	logger := logging.NewLogger(logOut, cfg.LogLevel, cfg.LogFormat).
		With(slog.String("env", cfg.Environment().String()))

	return &Application{
		Config:  cfg,
		Logger:  logger,
		Loader:  tripdata.NewLoader(cfg.TripData(), logger),
		Console: console.New(in, out),
	}
}

// Run repeats explore sessions until the user declines to restart.
func (app *Application) Run(ctx context.Context) error {
	for {
		logger := app.Logger.With(slog.String("session_id", uuid.NewString()))
		sessionCtx := logging.WithLogger(ctx, logger)

		restart, err := app.session(sessionCtx)
		if err != nil {
			return err
		}
		if !restart {
			logging.LogOperation(logger, "session_finished")
			return nil
		}
	}
}

// session runs one prompt, load and report cycle and returns whether the
// user asked to restart.
func (app *Application) session(ctx context.Context) (bool, error) {
	logger := logging.FromContext(ctx)
	ui := app.Console

	filter, err := ui.Filters(ctx)
	if err != nil {
		return false, err
	}
	logging.LogOperation(logger, "filters_selected",
		slog.String("city", filter.City),
		slog.String("month", filter.Month),
		slog.String("day", filter.Day))

	ds, err := app.Loader.Load(ctx, filter)
	if err != nil {
		return false, err
	}
	if err := ui.PrintPreview(ds); err != nil {
		return false, err
	}

	err = ui.Section("Calculating The Most Frequent Times of Travel...", func() error {
		return ui.PrintTimeStats(stats.ComputeTimeStats(ds))
	})
	if err != nil {
		return false, err
	}

	err = ui.Section("Calculating The Most Popular Stations and Trip...", func() error {
		return ui.PrintStationStats(ctx, stats.ComputeStationStats(ds))
	})
	if err != nil {
		return false, err
	}

	err = ui.Section("Calculating Trip Duration...", func() error {
		ui.PrintDurationStats(stats.ComputeDurationStats(ds))
		return nil
	})
	if err != nil {
		return false, err
	}

	err = ui.Section("Calculating User Stats...", func() error {
		return ui.PrintUserStats(stats.ComputeUserStats(ds))
	})
	if err != nil {
		return false, err
	}

	return ui.Restart(ctx)
}
