package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"bikeshare.onebusaway.org/internal/appconf"
	"bikeshare.onebusaway.org/internal/models"
	"bikeshare.onebusaway.org/internal/tripdata"
)

// Config holds all the configuration settings for the Application. Values
// come from defaults, an optional bikeshare.yaml, BIKESHARE_* environment
// variables and command-line flags, in increasing priority.
type Config struct {
	DataDir   string            `mapstructure:"data_dir"`
	Env       string            `mapstructure:"env"`
	LogLevel  string            `mapstructure:"log_level"`
	LogFormat string            `mapstructure:"log_format"`
	Cities    map[string]string `mapstructure:"cities"`
}

// Environment converts the configured env name.
func (c Config) Environment() appconf.Environment {
	return appconf.EnvFlagToEnvironment(c.Env)
}

// TripData returns the loader configuration.
func (c Config) TripData() tripdata.Config {
	return tripdata.Config{
		DataDir: c.DataDir,
		Files:   c.Cities,
	}
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", ".")
	v.SetDefault("env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
}

// LoadConfig reads configuration into v and decodes it. An explicit
// configFile must exist; the default bikeshare.yaml lookup is optional.
func LoadConfig(v *viper.Viper, configFile string) (Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix("BIKESHARE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("bikeshare")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("data_dir must not be empty")
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}
	for city := range c.Cities {
		if _, ok := models.FindCity(city); !ok {
			return fmt.Errorf("cities: %q is not a supported city (%s)", city, strings.Join(models.CityNames(), ", "))
		}
	}
	return nil
}
