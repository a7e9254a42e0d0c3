// Package config resolves run defaults from a YAML file, a .env file and
// CTFOLD_* environment variables. Command-line flags override all of them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvFormat = "CTFOLD_FORMAT"
	EnvQuiet  = "CTFOLD_QUIET"
	EnvReport = "CTFOLD_REPORT"
)

// DefaultFormat is the constraint grammar used when nothing else is set.
const DefaultFormat = "RNAstructure"

// Config holds the defaults a run starts from.
type Config struct {
	Format string `yaml:"format"`
	Quiet  bool   `yaml:"quiet"`
	Report string `yaml:"report"`
}

// Default returns the built-in defaults.
func Default() Config { return Config{Format: DefaultFormat} }

// Load resolves defaults from path (optional) and the environment, loading
// ./.env first if present.
func Load(path string) (Config, error) { return LoadWithEnv(path, ".env") }

// LoadWithEnv is Load with an explicit dotenv file. Variables already in the
// environment win over the dotenv file; a missing dotenv file is ignored.
func LoadWithEnv(path, envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
		if cfg.Format == "" {
			cfg.Format = DefaultFormat
		}
	}

	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv(EnvReport); v != "" {
		cfg.Report = v
	}
	if v := os.Getenv(EnvQuiet); v != "" {
		q, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvQuiet, err)
		}
		cfg.Quiet = q
	}
	return cfg, nil
}
