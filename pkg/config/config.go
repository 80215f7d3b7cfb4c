package config

import (
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/arthur-debert/confc/pkg/charset"
	"github.com/arthur-debert/confc/pkg/errors"
	"github.com/arthur-debert/confc/pkg/logging"
	"github.com/arthur-debert/confc/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the resolved settings tree
type Config struct {
	Input   InputConfig   `koanf:"input" toml:"input"`
	Output  OutputConfig  `koanf:"output" toml:"output"`
	Logging LoggingConfig `koanf:"logging" toml:"logging"`
}

// InputConfig controls how source files are decoded
type InputConfig struct {
	Encodings []string `koanf:"encodings" toml:"encodings"`
}

// OutputConfig controls where and how documents are written
type OutputConfig struct {
	DefaultPath string `koanf:"default_path" toml:"default_path"`
	FileMode    string `koanf:"file_mode" toml:"file_mode"`
}

// LoggingConfig controls the optional log file
type LoggingConfig struct {
	File bool `koanf:"file" toml:"file"`
}

// LoadOptions selects the layers Load reads
type LoadOptions struct {
	// ConfigFile is an explicit settings file; it must exist when set
	ConfigFile string
	// SkipUserConfig ignores the XDG user settings file
	SkipUserConfig bool
	// Overrides are dotted keys (e.g. "output.default_path") applied last
	Overrides map[string]interface{}
}

// Load merges every settings layer and validates the result
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if !opts.SkipUserConfig {
		if path, ok := paths.FindUserConfig(); ok {
			logger.Debug().Str("path", path).Msg("Loading user settings")
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load user settings from %s", path).
					WithDetail("path", path)
			}
		}
	}

	if opts.ConfigFile != "" {
		path, err := paths.Normalize(opts.ConfigFile)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "invalid settings file path")
		}
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "settings file %s not found", opts.ConfigFile).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loading settings file")
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load settings from %s", opts.ConfigFile).
				WithDetail("path", path)
		}
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal settings")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the compiler cannot use
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output.DefaultPath) == "" {
		return errors.New(errors.ErrConfigValid, "output.default_path must not be empty")
	}
	if len(c.Input.Encodings) == 0 {
		return errors.New(errors.ErrConfigValid, "input.encodings must list at least one encoding")
	}
	if _, err := charset.LookupAll(c.Input.Encodings); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid input.encodings")
	}
	if _, err := c.FileMode(); err != nil {
		return err
	}
	return nil
}

// Candidates resolves the configured encoding names
func (c *Config) Candidates() ([]charset.Encoding, error) {
	return charset.LookupAll(c.Input.Encodings)
}

// FileMode parses output.file_mode as octal permission bits
func (c *Config) FileMode() (fs.FileMode, error) {
	mode, err := strconv.ParseUint(c.Output.FileMode, 8, 32)
	if err != nil || mode > 0777 {
		return 0, errors.Newf(errors.ErrConfigValid, "output.file_mode %q is not an octal permission", c.Output.FileMode).
			WithDetail("file_mode", c.Output.FileMode)
	}
	return fs.FileMode(mode), nil
}
