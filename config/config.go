package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ghodss/yaml"
	validator "gopkg.in/go-playground/validator.v9"
)

// Config contains the parameters we'll need to grab a release.
type Config struct {
	Owner           string `json:"owner" validate:"required"`
	Repo            string `json:"repo" validate:"required"`
	OutputDir       string `json:"output_dir" validate:"required"`
	APIBaseURL      string `json:"api_base_url" validate:"required,url"`
	UserAgent       string `json:"user_agent" validate:"required"`
	ChunkSize       int    `json:"chunk_size" validate:"min=1"`
	TimeoutSeconds  int    `json:"timeout_seconds" validate:"min=0"`
	IncludeArchives bool   `json:"include_archives"`
}

// Default returns the configuration used when no file or flags are given.
func Default() Config {
	return Config{
		Owner:      "YumStudioHQ",
		Repo:       "YumStudio-DebugKernel",
		OutputDir:  "Applications/DebugKernel/",
		APIBaseURL: "https://api.github.com",
		UserAgent:  "grabkernel",
		ChunkSize:  4096,
	}
}

// Load reads the YAML file at path on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file %q: %w", path, err)
	}

	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %q: %w", path, err)
	}

	return cfg, nil
}

// Timeout is the HTTP client timeout. Zero means requests never time out.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate checks that every required field is set.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
