// Package config loads the demo program's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/tagline/content"
)

const (
	ReturnAppend = "append"
	ReturnSeed   = "seed"
)

// Config holds demo configuration.
type Config struct {
	Tags        []string `yaml:"tags" validate:"omitempty,unique,dive,required,max=64"`
	Return      string   `yaml:"return" validate:"omitempty,oneof=append seed"`
	Placeholder string   `yaml:"placeholder" validate:"max=120"`
	Width       int      `yaml:"width" validate:"gte=0"`
	Log         Log      `yaml:"log"`
}

type Log struct {
	File  string `yaml:"file"`
	Debug bool   `yaml:"debug"`
}

var validate = validator.New()

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Return:      ReturnAppend,
		Placeholder: "Type, then pick a tag…",
	}
}

// Load reads and validates the YAML file at path. An empty path yields
// Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default() and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid %s: failed %q constraint", fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

// ReturnPolicy maps the Return field to the content option.
func (c Config) ReturnPolicy() content.ReturnPolicy {
	if c.Return == ReturnSeed {
		return content.ReturnSeedOrder
	}
	return content.ReturnAppend
}
