package language_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrymomot/sitelang/pkg/frontend"
	"github.com/dmitrymomot/sitelang/pkg/language"
	"github.com/dmitrymomot/sitelang/pkg/site"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	res := language.New(language.Config{}, languagesTree())

	t.Run("injects resolved frontend context", func(t *testing.T) {
		t.Parallel()
		r := chi.NewRouter()
		r.Use(language.Middleware(res))
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			fc := language.MustFromContext(req.Context())
			assert.Equal(t, 3, fc.LanguageID)
			assert.True(t, fc.Activated())
			w.WriteHeader(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", "/?locale=de", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid locale maps to 400 naming the locale", func(t *testing.T) {
		t.Parallel()
		r := chi.NewRouter()
		r.Use(language.Middleware(res))
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			t.Error("handler must not run")
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", "/?locale=xx", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "xx")
	})

	t.Run("custom error handler", func(t *testing.T) {
		t.Parallel()
		handled := false
		mw := language.Middleware(res, language.WithErrorHandler(
			func(w http.ResponseWriter, r *http.Request, err error) {
				handled = true
				w.WriteHeader(http.StatusTeapot)
			},
		))

		rec := httptest.NewRecorder()
		mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
			ServeHTTP(rec, httptest.NewRequest("GET", "/?locale=xx", nil))

		assert.True(t, handled)
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("context factory presets the default language", func(t *testing.T) {
		t.Parallel()
		mw := language.Middleware(res, language.WithContextFactory(
			func(*http.Request) *frontend.Context {
				fc := frontend.NewContext("en")
				fc.LanguageID = 7
				return fc
			},
		))

		var got int
		mw(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			got = language.MustFromContext(req.Context()).LanguageID
		})).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, 7, got)
	})
}

func TestMiddlewareSiteRouting(t *testing.T) {
	t.Parallel()

	res := language.New(language.Config{}, languagesTree(),
		language.WithSiteResolver(siteResolver()))

	t.Run("annotates routing on the request context", func(t *testing.T) {
		t.Parallel()
		r := chi.NewRouter()
		r.Use(language.Middleware(res))
		r.Get("/fr/articles", func(w http.ResponseWriter, req *http.Request) {
			matched, ok := site.SiteFromContext(req.Context())
			require.True(t, ok)
			assert.Equal(t, "news", matched.Identifier)

			lang, ok := site.LanguageFromContext(req.Context())
			require.True(t, ok)
			assert.Equal(t, 2, lang.ID)

			fc := language.MustFromContext(req.Context())
			assert.Equal(t, 2, fc.LanguageID)
			w.WriteHeader(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", "http://news.example.com/fr/articles", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unmatched site maps to 404", func(t *testing.T) {
		t.Parallel()
		mw := language.Middleware(res)

		rec := httptest.NewRecorder()
		mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Error("handler must not run")
		})).ServeHTTP(rec, httptest.NewRequest("GET", "http://shop.example.com/", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("missing context", func(t *testing.T) {
		t.Parallel()
		_, ok := language.FromContext(httptest.NewRequest("GET", "/", nil).Context())
		assert.False(t, ok)
	})

	t.Run("must panics without context", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			language.MustFromContext(httptest.NewRequest("GET", "/", nil).Context())
		})
	})
}
