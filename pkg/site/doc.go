// Package site matches incoming HTTP requests to configured content sites
// and the languages available within them.
//
// The package is built around three concepts:
//
//  1. Resolvers - match a request to a site (and optionally a language)
//     using host, header or path strategies
//  2. Providers - load site definitions from a data source
//  3. Context helpers - thread the routing result through the request
//
// # Usage
//
//	provider := site.NewStaticProvider(
//		site.Site{
//			Identifier: "news",
//			Hosts:      []string{"news.example.com"},
//			DefaultLanguage: site.Language{ID: 0, ISOCode: "en"},
//			Languages: []site.Language{
//				{ID: 1, ISOCode: "de"},
//				{ID: 2, ISOCode: "fr"},
//			},
//		},
//	)
//
//	resolver := site.NewHostResolver(provider)
//
//	result, err := resolver.Resolve(r)
//	if err != nil {
//		// no matching site
//	}
//	r = r.WithContext(site.WithRouting(r.Context(), result))
//
// Resolution failures surface as ErrSiteNotFound; a CompositeResolver
// tries several strategies in order. Routing results are carried on the
// request context explicitly, never through process-global state.
package site
