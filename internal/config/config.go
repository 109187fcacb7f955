// Package config resolves mining thresholds and output settings from an
// optional YAML file, validated against an embedded CUE schema.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/roach88/basket/internal/ir"
)

// Default configuration values.
const (
	DefaultMinSupport    = 0.3
	DefaultMinConfidence = 0.5
	DefaultFormat        = "text"

	// AppName is the application name used for XDG directory paths.
	AppName = "basket"

	// FileName is the config file name looked up under the XDG config dirs.
	FileName = "config.yaml"
)

//go:embed schema.cue
var schemaCUE string

// Config holds every setting the CLI needs for a mining run.
type Config struct {
	MinSupport    float64 `yaml:"min_support" json:"min_support"`
	MinConfidence float64 `yaml:"min_confidence" json:"min_confidence"`
	Format        string  `yaml:"format" json:"format"`
	Database      string  `yaml:"database" json:"database"`
}

// Default returns a Config populated with default values.
func Default() Config {
	return Config{
		MinSupport:    DefaultMinSupport,
		MinConfidence: DefaultMinConfidence,
		Format:        DefaultFormat,
	}
}

// Thresholds returns the mining thresholds.
func (c Config) Thresholds() ir.Thresholds {
	return ir.Thresholds{MinSupport: c.MinSupport, MinConfidence: c.MinConfidence}
}

// Validate checks the config against the embedded CUE schema.
func (c Config) Validate() error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	value := def.Unify(ctx.Encode(c))
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DefaultPath returns the XDG config file path if one exists.
func DefaultPath() (string, bool) {
	path, err := xdg.SearchConfigFile(AppName + "/" + FileName)
	if err != nil {
		return "", false
	}
	return path, true
}

// Load reads the config at path. An empty path falls back to DefaultPath,
// and to Default() when no file exists there. The result is validated.
func Load(path string) (Config, error) {
	if path == "" {
		found, ok := DefaultPath()
		if !ok {
			cfg := Default()
			return cfg, cfg.Validate()
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
// Unknown keys are rejected; omitted keys keep their default.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
