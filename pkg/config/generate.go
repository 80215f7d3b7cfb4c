package config

import (
	"bytes"

	"github.com/arthur-debert/confc/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

const generatedHeader = "# confc settings\n# Place this file at $XDG_CONFIG_HOME/confc/config.toml or pass it with --config.\n\n"

// Default returns the built-in settings
func Default() (*Config, error) {
	return Load(LoadOptions{SkipUserConfig: true})
}

// Generate renders cfg as a TOML settings file
func Generate(cfg *Config) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(false)
	if err := enc.Encode(cfg); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render settings")
	}
	return buf.String(), nil
}

// GenerateDefault renders the built-in settings as a TOML file
func GenerateDefault() (string, error) {
	cfg, err := Default()
	if err != nil {
		return "", err
	}
	return Generate(cfg)
}
