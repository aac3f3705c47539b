package language_test

import (
	"testing"

	"github.com/dmitrymomot/sitelang/pkg/language"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := language.DefaultConfig()
	assert.Equal(t, "L", cfg.QueryParam)
	assert.Equal(t, "locale", cfg.LocaleParam)
	assert.Equal(t, "plugin.rest.settings.languages", cfg.SettingsPath)
	assert.Equal(t, "en", cfg.DefaultLocale)
}

func TestLoadConfig(t *testing.T) {
	// t.Setenv forbids t.Parallel.

	t.Run("defaults without environment", func(t *testing.T) {
		cfg, err := language.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, language.DefaultConfig(), cfg)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("LANG_QUERY_PARAM", "lng")
		t.Setenv("LANG_DEFAULT_LOCALE", "de")

		cfg, err := language.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "lng", cfg.QueryParam)
		assert.Equal(t, "de", cfg.DefaultLocale)
		assert.Equal(t, "locale", cfg.LocaleParam)
	})
}
