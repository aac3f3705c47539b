package frontend_test

import (
	"testing"

	"github.com/dmitrymomot/sitelang/pkg/frontend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLanguage(t *testing.T) {
	t.Parallel()

	t.Run("sets all fields together", func(t *testing.T) {
		t.Parallel()
		fc := frontend.NewContext("en")
		fc.SetLanguage(3, "L", "de")

		assert.Equal(t, 3, fc.LanguageID)
		assert.Equal(t, []string{"L"}, fc.LinkVars)
		assert.Equal(t, "de", fc.Locale)
	})

	t.Run("does not duplicate link vars", func(t *testing.T) {
		t.Parallel()
		fc := frontend.NewContext("en")
		fc.SetLanguage(3, "L", "de")
		fc.SetLanguage(3, "L", "de")

		assert.Equal(t, []string{"L"}, fc.LinkVars)
	})

	t.Run("untouched without a call", func(t *testing.T) {
		t.Parallel()
		fc := frontend.NewContext("en")
		fc.LanguageID = 7 // host-preset default

		assert.Equal(t, 7, fc.LanguageID)
		assert.Empty(t, fc.LinkVars)
		assert.Empty(t, fc.Locale)
	})
}

func TestActivateLocale(t *testing.T) {
	t.Parallel()

	t.Run("default locale without override", func(t *testing.T) {
		t.Parallel()
		fc := frontend.NewContext("en")
		fc.ActivateLocale()

		require.True(t, fc.Activated())
		assert.Equal(t, "en", fc.Tag().String())
		require.NotNil(t, fc.Printer())
	})

	t.Run("override locale", func(t *testing.T) {
		t.Parallel()
		fc := frontend.NewContext("en")
		fc.SetLanguage(3, "L", "de")
		fc.ActivateLocale()

		assert.Equal(t, "de", fc.Tag().String())
	})

	t.Run("unparseable locale falls back to english", func(t *testing.T) {
		t.Parallel()
		fc := frontend.NewContext("en")
		fc.SetLanguage(3, "L", "!!!")
		fc.ActivateLocale()

		assert.Equal(t, "en", fc.Tag().String())
	})

	t.Run("number formatting follows the locale", func(t *testing.T) {
		t.Parallel()
		en := frontend.NewContext("en")
		en.ActivateLocale()
		assert.Equal(t, "1,234,567", en.Sprintf("%d", 1234567))

		de := frontend.NewContext("en")
		de.SetLanguage(1, "L", "de")
		de.ActivateLocale()
		assert.Equal(t, "1.234.567", de.Sprintf("%d", 1234567))
	})

	t.Run("sprintf activates lazily", func(t *testing.T) {
		t.Parallel()
		fc := frontend.NewContext("en")
		assert.Equal(t, "1,000", fc.Sprintf("%d", 1000))
		assert.True(t, fc.Activated())
	})
}
