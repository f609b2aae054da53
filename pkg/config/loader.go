package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/roster/pkg/codec"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// File names searched for configuration.
const (
	UserConfigFile  = "config.toml"
	LocalConfigFile = "roster.toml"
)

// Config is the resolved roster configuration.
type Config struct {
	DataFile  string       `koanf:"data_file"`
	Integrity string       `koanf:"integrity"`
	Autosave  bool         `koanf:"autosave"`
	Output    OutputConfig `koanf:"output"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	Color string `koanf:"color"`
}

// LoadOptions selects the files and overrides to load.
type LoadOptions struct {
	// UserConfigDir holds config.toml. Defaults to $XDG_CONFIG_HOME/roster.
	UserConfigDir string

	// WorkDir is searched for roster.toml. Defaults to the current directory.
	WorkDir string

	// ConfigFile is an explicit config file; it must exist when set.
	ConfigFile string

	// Overrides are applied last, keyed like the TOML keys ("data_file",
	// "output.color").
	Overrides map[string]interface{}
}

// UserConfigPath returns the default location of the user config file.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, logging.AppDirName, UserConfigFile)
}

// Load resolves the configuration from all layers.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User and local config files, when present
	userDir := opts.UserConfigDir
	if userDir == "" {
		userDir = filepath.Dir(UserConfigPath())
	}
	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}
	for _, path := range []string{
		filepath.Join(userDir, UserConfigFile),
		filepath.Join(workDir, LocalConfigFile),
	} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Explicit config file
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
		if err := k.Load(file.Provider(opts.ConfigFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
	}

	// 4. Flag overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	// 6. Validate
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("data_file", cfg.DataFile).
		Str("integrity", cfg.Integrity).
		Bool("autosave", cfg.Autosave).
		Msg("Configuration loaded")
	return &cfg, nil
}

func (c *Config) validate() error {
	c.DataFile = strings.TrimSpace(c.DataFile)
	if c.DataFile == "" {
		return errors.New(errors.ErrConfigInvalid, "data_file must not be empty").
			WithDetail("key", "data_file")
	}

	policy, err := codec.ParseIntegrity(c.Integrity)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigInvalid, "invalid integrity setting").
			WithDetail("key", "integrity")
	}
	c.Integrity = string(policy)

	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	switch c.Output.Color {
	case "":
		c.Output.Color = "auto"
	case "auto", "always", "never":
	default:
		return errors.New(errors.ErrConfigInvalid,
			fmt.Sprintf("output.color must be auto, always or never, got %q", c.Output.Color)).
			WithDetail("key", "output.color")
	}
	return nil
}

// IntegrityPolicy returns the validated load policy.
func (c *Config) IntegrityPolicy() codec.Integrity {
	return codec.Integrity(c.Integrity)
}
