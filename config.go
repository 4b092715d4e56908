package crashreport

import (
	"fmt"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/BurntSushi/toml"
	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fs/core"
	"gopkg.in/yaml.v3"
)

// Config holds the frame filtering settings of a Dispatcher.
type Config struct {
	// EntryMarker is the function-name prefix of the first application frame.
	EntryMarker string `yaml:"entry_marker" toml:"entry_marker" json:"entry_marker"`

	// ExcludePaths lists path substrings of frames hidden from the text report.
	ExcludePaths []string `yaml:"exclude_paths" toml:"exclude_paths" json:"exclude_paths"`
}

// fileConfig is the on-disk form of Config. Absent fields keep their defaults.
type fileConfig struct {
	EntryMarker  *string  `yaml:"entry_marker" toml:"entry_marker" json:"entry_marker"`
	ExcludePaths []string `yaml:"exclude_paths" toml:"exclude_paths" json:"exclude_paths"`
}

// DefaultConfig returns settings for programs whose application code lives
// in package main. The exclusions hide frames of github.com/pkg/errors, the
// Go runtime, the Sentry SDK and this package.
func DefaultConfig() Config {
	return Config{
		EntryMarker: "main.",
		ExcludePaths: []string{
			"github.com/pkg/errors@",
			"/src/runtime/",
			"github.com/getsentry/sentry-go@",
			"github.com/jmgilman/go/crashreport@",
		},
	}
}

// Filter returns the FrameFilter described by the config.
func (c Config) Filter() FrameFilter {
	return FrameFilter{
		EntryMarker:  c.EntryMarker,
		ExcludePaths: append([]string(nil), c.ExcludePaths...),
	}
}

// Validate checks the config for unusable values.
// Blank exclusion entries are rejected.
func (c Config) Validate() error {
	for i, p := range c.ExcludePaths {
		if strings.TrimSpace(p) == "" {
			return errors.WithContext(
				errors.Newf(errors.CodeInvalidConfig, "exclude_paths[%d] is empty", i),
				"index", i,
			)
		}
	}
	return nil
}

// LoadConfig reads a config file from fsys, decoding it by extension:
// .yaml and .yml as YAML, .toml as TOML and .cue as CUE. Fields absent from
// the file keep the values of DefaultConfig.
//
// Returns CodeNotFound if the file does not exist.
// Returns CodeInvalidConfig if it cannot be read, decoded or validated.
func LoadConfig(fsys core.ReadFS, path string) (Config, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return Config{}, wrapReadError(err, path)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	case ".toml":
		err = toml.Unmarshal(data, &fc)
	case ".cue":
		err = decodeCUE(data, path, &fc)
	default:
		err = fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return Config{}, wrapConfigError(err, "failed to decode config file", path)
	}

	cfg := DefaultConfig()
	if fc.EntryMarker != nil {
		cfg.EntryMarker = *fc.EntryMarker
	}
	if fc.ExcludePaths != nil {
		cfg.ExcludePaths = fc.ExcludePaths
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, wrapConfigError(err, "invalid config file", path)
	}
	return cfg, nil
}

func decodeCUE(data []byte, path string, fc *fileConfig) error {
	val := cuecontext.New().CompileBytes(data, cue.Filename(path))
	if err := val.Err(); err != nil {
		return err
	}
	if err := val.Validate(cue.Concrete(true)); err != nil {
		return err
	}
	return val.Decode(fc)
}
