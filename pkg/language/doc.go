// Package language resolves the content language for incoming HTTP
// requests in multi-site, multi-language content systems.
//
// Resolution applies a fixed precedence of request signals, first match
// wins: the explicit numeric language parameter in the query string, the
// same parameter in the parsed body, an explicit locale parameter looked
// up in the configuration tree, the raw Accept-Language header as a
// configuration key, and finally the primary language code taken from
// that header. When no signal matches, the system default prevails.
//
// The resolver runs in one of two modes. In legacy mode the detected id is
// applied directly. In site-routing mode (enabled via WithSiteResolver)
// the request is first matched to a site; an explicitly requested id is
// validated against that site's available languages, otherwise the routing
// result's own language stands. The routing outcome is threaded through
// the returned request's context, never through global state.
//
// # Usage
//
//	tree, _ := conftree.ParseYAML(raw)
//	cfg, _ := language.LoadConfig()
//
//	res := language.New(cfg, tree,
//		language.WithSiteResolver(site.NewHostResolver(provider)),
//	)
//
//	r := chi.NewRouter()
//	r.Use(language.Middleware(res))
//
//	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
//		fc := language.MustFromContext(req.Context())
//		_ = fc.LanguageID
//	})
//
// An explicit locale parameter that matches no configured language is the
// one client-input failure resolution surfaces: it yields an
// *InvalidLanguageError, which the middleware maps to a 400. Every other
// lookup miss is a normal "no signal" outcome and degrades to the default.
package language
