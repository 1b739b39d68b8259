package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/tabula-historica/snapshot"
)

// DefaultFile is looked up in the working directory when no config path is given.
const DefaultFile = "snapshot.yaml"

// Config is the optional exporter configuration.
// Every field has a default, so running without a config file reproduces the plain export.
type Config struct {
	Input  string `mapstructure:"input"`
	Output string `mapstructure:"output"`
	// Strip overrides the keys removed from the project. Empty means the defaults.
	Strip        []string `mapstructure:"strip"`
	AllowMissing bool     `mapstructure:"allow_missing"`
	Indent       string   `mapstructure:"indent"`
	LogLevel     string   `mapstructure:"log_level"`
	Redis        Redis    `mapstructure:"redis"`
	Serve        Serve    `mapstructure:"serve"`
}

// Redis configures the optional Redis mirror. It is disabled while Addr is empty.
type Redis struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Key      string        `mapstructure:"key"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Enabled reports whether a Redis mirror is configured.
func (r Redis) Enabled() bool {
	return r.Addr != ""
}

// Serve configures the HTTP server.
type Serve struct {
	Addr string `mapstructure:"addr"`
	// Name is the URL path segment the snapshot is served under.
	Name string `mapstructure:"name"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Input:  snapshot.DefaultInputPath,
		Output: snapshot.DefaultOutputPath,
		Serve: Serve{
			Addr: ":8080",
			Name: "static-project.json",
		},
	}
}

// Load reads the configuration file at path on top of Default.
// If path is empty, DefaultFile is tried and its absence is not an error.
// An explicitly requested file that does not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Decode applies YAML data to cfg. Keys absent from data leave cfg untouched.
func Decode(data []byte, cfg *Config) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}
