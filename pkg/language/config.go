package language

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the resolver's request and configuration-tree settings.
type Config struct {
	// QueryParam is the query/body parameter carrying an explicit numeric
	// language id.
	QueryParam string `env:"LANG_QUERY_PARAM" envDefault:"L"`

	// LocaleParam is the query parameter carrying an explicit locale code.
	LocaleParam string `env:"LANG_LOCALE_PARAM" envDefault:"locale"`

	// SettingsPath is the configuration-tree path under which locale codes
	// map to numeric language ids.
	SettingsPath string `env:"LANG_SETTINGS_PATH" envDefault:"plugin.rest.settings.languages"`

	// DefaultLocale is the formatting locale applied when no request
	// signal sets one.
	DefaultLocale string `env:"LANG_DEFAULT_LOCALE" envDefault:"en"`
}

// DefaultConfig returns the configuration used when no environment
// overrides apply.
func DefaultConfig() Config {
	return Config{
		QueryParam:    "L",
		LocaleParam:   "locale",
		SettingsPath:  "plugin.rest.settings.languages",
		DefaultLocale: "en",
	}
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.QueryParam == "" {
		c.QueryParam = def.QueryParam
	}
	if c.LocaleParam == "" {
		c.LocaleParam = def.LocaleParam
	}
	if c.SettingsPath == "" {
		c.SettingsPath = def.SettingsPath
	}
	if c.DefaultLocale == "" {
		c.DefaultLocale = def.DefaultLocale
	}
}

// LoadConfig reads the resolver configuration from environment variables,
// loading a .env file first when one exists.
func LoadConfig() (Config, error) {
	// The .env file is optional.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrParseConfig, err)
	}
	return cfg, nil
}
