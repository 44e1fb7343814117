package config_test

import (
	"testing"

	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"golang.org/x/text/language"

	"go.llib.dev/funckit/internal/config"
)

func TestLoad(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Before(func(t *testcase.T) {
		testcase.UnsetEnv(t, "FUNCKIT_LOG_LEVEL")
		testcase.UnsetEnv(t, "FUNCKIT_LOCALE")
		testcase.UnsetEnv(t, "FUNCKIT_STABLE_SORT")
	})

	s.Test("defaults", func(t *testcase.T) {
		c, err := config.Load()
		assert.NoError(t, err)
		assert.Equal(t, logging.LevelInfo, c.Level())
		assert.True(t, c.StableSort)

		tag, err := c.Language()
		assert.NoError(t, err)
		assert.Equal(t, language.Und, tag)
	})

	s.Test("values from the environment", func(t *testcase.T) {
		testcase.SetEnv(t, "FUNCKIT_LOG_LEVEL", "debug")
		testcase.SetEnv(t, "FUNCKIT_LOCALE", "tr")
		testcase.SetEnv(t, "FUNCKIT_STABLE_SORT", "false")

		c, err := config.Load()
		assert.NoError(t, err)
		assert.Equal(t, logging.LevelDebug, c.Level())
		assert.False(t, c.StableSort)

		tag, err := c.Language()
		assert.NoError(t, err)
		assert.Equal(t, language.Turkish, tag)
	})

	s.Test("unknown log level", func(t *testcase.T) {
		testcase.SetEnv(t, "FUNCKIT_LOG_LEVEL", "verbose")

		_, err := config.Load()
		assert.Error(t, err)
	})

	s.Test("malformed locale", func(t *testcase.T) {
		testcase.SetEnv(t, "FUNCKIT_LOCALE", "not a locale!")

		_, err := config.Load()
		assert.ErrorIs(t, config.ErrInvalidLocale, err)
	})
}

func TestParseLocale(t *testing.T) {
	tag, err := config.ParseLocale("")
	assert.NoError(t, err)
	assert.Equal(t, language.Und, tag)

	tag, err = config.ParseLocale("de-AT")
	assert.NoError(t, err)
	assert.Equal(t, language.MustParse("de-AT"), tag)
}
