package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/pkg/machine"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "turing.yaml"

// Config holds the settings shared by every CLI command.
type Config struct {
	// Alphabet accepts either a string of single-character symbols ("abc")
	// or a list of symbols.
	Alphabet []string `mapstructure:"alphabet" yaml:"alphabet"`
	Blank    string   `mapstructure:"blank" yaml:"blank"`
	LogLevel string   `mapstructure:"log_level" yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Alphabet: machine.Symbols("abc"),
		Blank:    machine.DefaultBlank,
		LogLevel: "info",
	}
}

// Load reads the YAML file at path on top of the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Apply(raw); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Apply decodes overrides (from YAML or CLI flags) into c. Keys that are
// absent or empty leave the current value untouched. Unknown keys are rejected.
func (c *Config) Apply(overrides map[string]any) error {
	if len(overrides) == 0 {
		return nil
	}

	// Decode into a blank value: mapstructure reuses the backing array of a
	// non-nil destination slice.
	var patch Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       symbolsHook,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &patch,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(overrides); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if len(patch.Alphabet) > 0 {
		c.Alphabet = patch.Alphabet
	}
	if patch.Blank != "" {
		c.Blank = patch.Blank
	}
	if patch.LogLevel != "" {
		c.LogLevel = patch.LogLevel
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	return logging.ParseLevel(c.LogLevel)
}

// NewMachine builds an empty machine over the configured alphabet.
func (c Config) NewMachine(opts ...machine.Option) (*machine.Machine, error) {
	return machine.New(c.Alphabet, append([]machine.Option{machine.WithBlank(c.Blank)}, opts...)...)
}

// symbolsHook splits a string into single-character symbols when the target
// is a []string, so "alphabet: abc" and "alphabet: [a, b, c]" are equivalent.
func symbolsHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf([]string(nil)) {
		return data, nil
	}
	return machine.Symbols(data.(string)), nil
}
