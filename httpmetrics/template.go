package httpmetrics

import (
	"net/http"

	"github.com/go-chi/chi"
)

// A TemplateResolver maps an incoming request to the route template it
// will be served by, before the request is dispatched. The matched
// return reports whether any registered route fully matched; when it is
// false the template is the raw request path.
type TemplateResolver interface {
	Resolve(r *http.Request) (template string, matched bool)
}

// ResolverFunc is a function which implements the TemplateResolver
// interface.
type ResolverFunc func(*http.Request) (string, bool)

// Resolve calls f.
func (f ResolverFunc) Resolve(r *http.Request) (string, bool) { return f(r) }

// RouteResolver returns a TemplateResolver backed by the given chi
// router. It matches the request method and path against the router's
// registered routes, in the router's own matching order, and returns
// the unsubstituted route pattern of the first full match. When no
// route matches it falls back to the raw request path.
func RouteResolver(routes chi.Routes) TemplateResolver {
	return ResolverFunc(func(r *http.Request) (string, bool) {
		rctx := chi.NewRouteContext()
		if routes.Match(rctx, r.Method, r.URL.Path) {
			return rctx.RoutePattern(), true
		}
		return r.URL.Path, false
	})
}
