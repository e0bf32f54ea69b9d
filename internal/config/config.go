package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const FileName = "namegroups.toml"

type Config struct {
	GroupBy string `toml:"group_by"`
	Format  string `toml:"format"`
	Scan    *Scan  `toml:"scan"`
}

// Scan controls which files a directory scan treats as rosters.
// Patterns are doublestar globs relative to the scanned directory.
type Scan struct {
	Include []string `toml:"include"`
	Ignore  []string `toml:"ignore"`
}

func defaultConfig() *Config {
	return &Config{
		GroupBy: "first",
		Format:  "default",
		Scan: &Scan{
			Include: []string{"**/*.toml", "**/*.json", "**/*.txt"},
			Ignore:  []string{},
		},
	}
}

// ReadConfig loads namegroups.toml from dir. A missing file is not an error.
// On any error the defaults are returned alongside it.
func ReadConfig(dir string) (*Config, error) {
	fileName := filepath.Join(dir, FileName)
	if _, err := os.Stat(fileName); errors.Is(err, os.ErrNotExist) {
		return defaultConfig(), nil
	}
	file, err := os.ReadFile(fileName)
	if err != nil {
		return defaultConfig(), err
	}
	config := defaultConfig()
	if err := toml.Unmarshal(file, config); err != nil {
		return defaultConfig(), fmt.Errorf("parsing %s: %w", fileName, err)
	}
	defaults := defaultConfig()
	if config.Scan == nil {
		config.Scan = defaults.Scan
	}
	if config.Scan.Include == nil {
		config.Scan.Include = defaults.Scan.Include
	}
	if config.Scan.Ignore == nil {
		config.Scan.Ignore = defaults.Scan.Ignore
	}
	if config.GroupBy == "" {
		config.GroupBy = defaults.GroupBy
	}
	if config.Format == "" {
		config.Format = defaults.Format
	}
	return config, nil
}
