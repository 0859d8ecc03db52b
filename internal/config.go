package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Art names accepted by AOR_ART.
const (
	ArtSnowflake = "snowflake"
	ArtTree      = "tree"
	ArtRandom    = "random"
)

// DefaultStateFile is created in the working directory unless AOR_STATE_FILE says otherwise.
const DefaultStateFile = ".aor_save.yaml"

// Config represents runtime settings read from the environment.
type Config struct {
	StateFile string `env:"AOR_STATE_FILE" envDefault:".aor_save.yaml"`
	Debug     bool   `env:"AOR_DEBUG"      envDefault:"false"`
	Art       string `env:"AOR_ART"        envDefault:"snowflake"`
	Lock      bool   `env:"AOR_LOCK"       envDefault:"true"`
	Color     bool   `env:"AOR_COLOR"      envDefault:"true"`
}

// LoadConfig reads the AOR_* environment variables and validates them.
func LoadConfig() (Config, error) {
	return LoadConfigFrom(nil)
}

// LoadConfigFrom is LoadConfig with an explicit environment, used by tests.
// A nil map means the process environment.
func LoadConfigFrom(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.StateFile == "" {
		cfg.StateFile = DefaultStateFile
	}
	cfg.StateFile = filepath.Clean(cfg.StateFile)

	switch cfg.Art {
	case ArtSnowflake, ArtTree, ArtRandom:
	default:
		return Config{}, fmt.Errorf("invalid AOR_ART %q: want %s, %s or %s", cfg.Art, ArtSnowflake, ArtTree, ArtRandom)
	}
	return cfg, nil
}
