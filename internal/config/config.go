package config

import (
	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
	"golang.org/x/text/language"
)

const ErrInvalidLocale errorkit.Error = "ErrInvalidLocale"

type Config struct {
	LogLevel   string `env:"FUNCKIT_LOG_LEVEL" default:"info" enum:"debug;info;warn;error;fatal;"`
	Locale     string `env:"FUNCKIT_LOCALE" default:"und"`
	StableSort bool   `env:"FUNCKIT_STABLE_SORT" default:"true"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var c Config
	if err := env.Load(&c); err != nil {
		return Config{}, err
	}
	if _, err := c.Language(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Level() logging.Level {
	return logging.Level(c.LogLevel)
}

// Language parses the configured locale into a language tag.
func (c Config) Language() (language.Tag, error) {
	return ParseLocale(c.Locale)
}

func ParseLocale(raw string) (language.Tag, error) {
	if raw == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return language.Und, ErrInvalidLocale.F("%q: %s", raw, err.Error())
	}
	return tag, nil
}
