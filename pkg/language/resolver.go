package language

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrymomot/sitelang/pkg/acceptlang"
	"github.com/dmitrymomot/sitelang/pkg/conftree"
	"github.com/dmitrymomot/sitelang/pkg/frontend"
	"github.com/dmitrymomot/sitelang/pkg/site"
)

// Resolver decides which content language renders the response for a
// request, applying the precedence: explicit query/body parameter,
// explicit locale parameter, Accept-Language header, site-routing
// language, system default.
//
// A Resolver holds no per-request state and is safe for concurrent use;
// its configuration tree is read-only during resolution.
type Resolver struct {
	cfg     Config
	tree    *conftree.Tree
	sites   site.Resolver
	matcher acceptlang.Matcher
	log     *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithSiteResolver enables site-routing mode. Without it the resolver
// runs in legacy mode and never consults site routing.
func WithSiteResolver(sr site.Resolver) Option {
	return func(r *Resolver) {
		r.sites = sr
	}
}

// WithMatcher overrides the primary-language extraction strategy.
func WithMatcher(m acceptlang.Matcher) Option {
	return func(r *Resolver) {
		if m != nil {
			r.matcher = m
		}
	}
}

// WithLogger sets the logger used for resolution debug lines.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// New creates a Resolver over the given configuration tree. Zero fields
// in cfg fall back to DefaultConfig values.
func New(cfg Config, tree *conftree.Tree, opts ...Option) *Resolver {
	cfg.applyDefaults()
	r := &Resolver{
		cfg:     cfg,
		tree:    tree,
		matcher: acceptlang.New(),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Config returns the resolver's effective configuration.
func (res *Resolver) Config() Config {
	return res.cfg
}

// DetectRequestedLanguageID inspects the request for an explicit or
// inferable language id. Precedence, first match wins:
//
//  1. query parameter (lenient integer coercion, non-numeric yields 0)
//  2. body parameter (same coercion)
//  3. locale parameter looked up in the configuration tree; a miss is an
//     *InvalidLanguageError, since the caller explicitly named a locale
//     and a typo should be diagnosable
//  4. the raw Accept-Language header value as a configuration key
//  5. the primary language code from Accept-Language as a key
//
// No signal yields (0, false, nil).
func (res *Resolver) DetectRequestedLanguageID(r *http.Request) (int, bool, error) {
	query := r.URL.Query()

	if query.Has(res.cfg.QueryParam) {
		return lenientInt(query.Get(res.cfg.QueryParam)), true, nil
	}

	if val, ok := bodyValue(r, res.cfg.QueryParam); ok {
		return lenientInt(val), true, nil
	}

	if query.Has(res.cfg.LocaleParam) {
		locale := query.Get(res.cfg.LocaleParam)
		id, ok := res.tree.LanguageID(res.cfg.SettingsPath + "." + locale)
		if !ok {
			return 0, false, &InvalidLanguageError{Locale: locale}
		}
		return id, true, nil
	}

	header := r.Header.Get("Accept-Language")
	if header != "" {
		if id, ok := res.tree.LanguageID(res.cfg.SettingsPath + "." + header); ok {
			return id, true, nil
		}
		if primary := res.matcher.Primary(header); primary != "" {
			if id, ok := res.tree.LanguageID(res.cfg.SettingsPath + "." + primary); ok {
				return id, true, nil
			}
		}
	}

	return 0, false, nil
}

// Resolve determines the request language and applies it to the frontend
// context. In site-routing mode it returns the request annotated with the
// routing result; callers must thread the returned request onward. The
// frontend context is never left partially mutated: either all language
// fields are set or none, and locale activation runs on every successful
// resolution.
func (res *Resolver) Resolve(r *http.Request, fc *frontend.Context) (*http.Request, error) {
	id, ok, err := res.DetectRequestedLanguageID(r)
	if err != nil {
		return r, err
	}

	if res.sites == nil {
		res.setRequestedLanguage(fc, id, ok, "")
		res.log.DebugContext(r.Context(), "language resolved",
			slog.String("mode", "legacy"),
			slog.Int("language_id", fc.LanguageID),
			slog.Bool("override", ok))
		return r, nil
	}

	routing, err := res.sites.Resolve(r)
	if err != nil {
		return r, err
	}
	if routing == nil || routing.Site == nil {
		return r, site.ErrSiteNotFound
	}

	var lang *site.Language
	if ok {
		if found, exists := routing.Site.LanguageByID(id); exists {
			lang = &found
		}
	} else {
		lang = routing.Language
	}

	annotated := &site.RoutingResult{Site: routing.Site, Language: lang}
	r = r.WithContext(site.WithRouting(r.Context(), annotated))

	if lang != nil {
		res.setRequestedLanguage(fc, lang.ID, true, lang.ISOCode)
	} else {
		res.setRequestedLanguage(fc, id, ok, res.matcher.Primary(r.Header.Get("Accept-Language")))
	}

	res.log.DebugContext(r.Context(), "language resolved",
		slog.String("mode", "site"),
		slog.String("site", routing.Site.Identifier),
		slog.Int("language_id", fc.LanguageID),
		slog.Bool("override", ok || lang != nil))
	return r, nil
}

// setRequestedLanguage applies the override when one exists and always
// finalizes with locale activation, so the default formatting locale is
// established even without an override.
func (res *Resolver) setRequestedLanguage(fc *frontend.Context, id int, ok bool, locale string) {
	if ok {
		fc.SetLanguage(id, res.cfg.QueryParam, locale)
	}
	fc.ActivateLocale()
}

// lenientInt mirrors the permissive numeric coercion of the source
// configuration format: non-numeric values become 0 rather than errors.
// Tightening this would reject legacy clients that send an empty L.
func lenientInt(val string) int {
	id, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return 0
	}
	return id
}

// bodyValue reads a parameter from the parsed request body only; query
// string values are deliberately excluded so the query keeps precedence
// via its own check. Unparseable bodies count as no signal.
func bodyValue(r *http.Request, key string) (string, bool) {
	if r.Body == nil {
		return "", false
	}
	if err := r.ParseForm(); err != nil {
		return "", false
	}
	if _, ok := r.PostForm[key]; !ok {
		return "", false
	}
	return r.PostForm.Get(key), true
}
