package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const EnvPath = "LISTS_CONFIG"

func Default() Config {
	return Config{
		DefaultSize: 4,
		Separator:   ", ",
		Parallelism: 4,
	}
}

// Load reads the file named by $LISTS_CONFIG, falling back to
// $HOME/.config/lists/config.yaml. A missing file yields Default.
func Load() (Config, error) {
	path := os.Getenv(EnvPath)
	if path == "" {
		path = os.ExpandEnv("$HOME/.config/lists/config.yaml")
	}

	marshaled, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}

		return Config{}, err
	}

	ret, err := Parse(marshaled)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return ret, nil
}

// Parse overlays the YAML document on top of Default.
func Parse(marshaled []byte) (Config, error) {
	ret := Default()

	if err := yaml.Unmarshal(marshaled, &ret); err != nil {
		return Config{}, err
	}

	if ret.DefaultSize < 0 {
		return Config{}, fmt.Errorf("default_size must not be negative, got %d", ret.DefaultSize)
	}

	if ret.Parallelism < 1 {
		ret.Parallelism = 1
	}

	return ret, nil
}

type Config struct {
	// DefaultSize is the initial capacity of array lists declared without a size.
	DefaultSize int    `yaml:"default_size"`
	Separator   string `yaml:"separator"`
	Parallelism int    `yaml:"parallelism"`
	// LogFile redirects logs away from stderr when set.
	LogFile string `yaml:"log_file"`
}
