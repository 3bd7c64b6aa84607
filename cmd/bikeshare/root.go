package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bikeshare.onebusaway.org/internal/app"
	"bikeshare.onebusaway.org/internal/console"
	"bikeshare.onebusaway.org/internal/logging"
)

var version = "0.1.0"

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	v := viper.New()
	var configFile string

	cmd := &cobra.Command{
		Use:   "bikeshare",
		Short: "Explore US bikeshare trip data",
		Long: `Bikeshare loads trip history for Chicago, New York City or Washington,
filters it by month and day of week, and prints popular travel times,
popular stations, trip duration totals and user demographics.

All choices are made through interactive prompts.

Example:
  bikeshare --data-dir ./data
  BIKESHARE_LOG_LEVEL=debug bikeshare`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(v, configFile)
			if err != nil {
				fmt.Fprintln(errOut, err)
				return err
			}

			application := app.New(cfg, in, out, errOut)
			err = application.Run(cmd.Context())
			if errors.Is(err, console.ErrInputClosed) {
				logging.LogOperation(application.Logger, "input_closed")
				return nil
			}
			if err != nil {
				logging.LogError(application.Logger, "session aborted", err,
					slog.String("component", "session"))
				return err
			}
			return nil
		},
	}

	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "Path to a YAML config file (default: ./bikeshare.yaml if present)")
	flags.String("data-dir", ".", "Directory containing the city CSV files")
	flags.String("env", "development", "Environment (development|test|production)")
	flags.String("log-level", "info", "Log level (debug|info|warn|error)")
	flags.String("log-format", "text", "Log output format (text|json)")

	if err := bindFlags(v, cmd, configFlags); err != nil {
		panic(err)
	}

	return cmd
}

// configFlags maps config keys to the flags that override them.
var configFlags = map[string]string{
	"data_dir":   "data-dir",
	"env":        "env",
	"log_level":  "log-level",
	"log_format": "log-format",
}

func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) error {
	for key, name := range keys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("bind flag --%s to %s: %w", name, key, err)
		}
	}
	return nil
}
