package config

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/zeebo/errs"
)

// UnboundedCapacity in stack_capacity creates stacks without a ceiling.
const UnboundedCapacity = -1

type Config struct {
	StackCapacity          int  `json:"stack_capacity"`
	ContainerTTLSeconds    uint `json:"container_ttl_seconds"`
	CleanupIntervalSeconds uint `json:"cleanup_interval_seconds"`
	Debug                  bool `json:"debug"`
}

func Default() Config {
	return Config{
		StackCapacity:          UnboundedCapacity,
		CleanupIntervalSeconds: 60,
	}
}

// Load reads the JSON file at path on top of the defaults. A missing file is
// not an error.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, errs.Wrap(err)
	}
	defer f.Close()

	return Parse(f)
}

func Parse(r io.Reader) (Config, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Config{}, errs.Wrap(err)
	}

	cfg := Default()
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, errs.New("could not parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.StackCapacity < UnboundedCapacity {
		return errs.New("stack_capacity:%d must be %d or greater", c.StackCapacity, UnboundedCapacity)
	}

	return nil
}

func (c Config) TTL() time.Duration {
	return time.Duration(c.ContainerTTLSeconds) * time.Second
}

func (c Config) CleanupInterval() time.Duration {
	return time.Duration(c.CleanupIntervalSeconds) * time.Second
}
