package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the solver server's settings file.
type Config struct {
	Host         string        `yaml:"host"`
	Port         string        `yaml:"port"`
	Dictionary   string        `yaml:"dictionary"`
	DefaultSize  int           `yaml:"default_size"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

func Default() Config {
	return Config{
		Host:         "0.0.0.0",
		Port:         "1337",
		Dictionary:   "dictionary.txt",
		DefaultSize:  4,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
}

// Load reads path over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func (c Config) Validate() error {
	switch {
	case c.Dictionary == "":
		return fmt.Errorf("%w: dictionary is required", ErrInvalidConfig)
	case c.Port == "":
		return fmt.Errorf("%w: port is required", ErrInvalidConfig)
	case c.DefaultSize < 1:
		return fmt.Errorf("%w: default_size must be positive, got %d", ErrInvalidConfig, c.DefaultSize)
	case c.ReadTimeout <= 0 || c.WriteTimeout <= 0:
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidConfig)
	}
	return nil
}
