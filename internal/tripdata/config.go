package tripdata

import (
	"path/filepath"

	"bikeshare.onebusaway.org/internal/models"
)

type Config struct {
	// DataDir is the directory holding the city CSV files.
	DataDir string
	// Files overrides registry file names, keyed by city name.
	Files map[string]string
}

// Path resolves the data file for a registry city.
func (config Config) Path(city string) (string, error) {
	entry, ok := models.FindCity(city)
	if !ok {
		return "", unknownCityError(city)
	}
	file := entry.File
	if override, ok := config.Files[city]; ok && override != "" {
		file = override
	}
	if filepath.IsAbs(file) {
		return file, nil
	}
	return filepath.Join(config.DataDir, file), nil
}
