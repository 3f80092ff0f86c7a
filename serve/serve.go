// Package serve answers every application path with the rendered SPA shell,
// the server half of history-mode navigation: a deep link such as /books/42
// must return the app, not a 404 from the static file server.
package serve

import (
	"strings"

	"github.com/rohanthewiz/rnav"
	"github.com/rohanthewiz/rnav/consts"
	"github.com/rohanthewiz/rnav/view"
	"github.com/rohanthewiz/rweb"
)

// Options configures a Shell.
type Options struct {
	// Base is the path the application is mounted under. Empty means "/".
	Base string
	// AssetPrefixes are passed through to the next handler untouched, e.g. "/assets/", "/api/".
	// A prefix matches at the server root and under Base, so with Base "/library"
	// both /assets/app.js and /library/assets/app.js pass through.
	AssetPrefixes []string
}

// Shell resolves request paths and renders the matching view.
type Shell struct {
	resolver *rnav.Resolver
	views    *view.Registry
	opts     Options
}

// New returns a shell over resolver and views.
func New(resolver *rnav.Resolver, views *view.Registry, opts Options) *Shell {
	if opts.Base == "" {
		opts.Base = consts.PathRoot
	}
	opts.Base = rnav.Normalize(opts.Base)

	return &Shell{resolver: resolver, views: views, opts: opts}
}

// Resolve normalizes a raw request target, strips the base and resolves it.
// Targets outside the base are NotFound.
func (sh *Shell) Resolve(raw string) rnav.Result {
	path := rnav.Normalize(raw)

	stripped, ok := rnav.StripBase(sh.opts.Base, path)
	if !ok {
		return rnav.NotFound(path)
	}
	return sh.resolver.Resolve(stripped)
}

// Page renders the page for a raw request target.
// Status is 200 for a matched route and 404 otherwise; the body is always the rendered shell.
func (sh *Shell) Page(raw string) (status int, html string) {
	res := sh.Resolve(raw)

	status = consts.StatusOK
	if !res.Matched {
		status = consts.StatusNotFound
	}
	return status, sh.views.Render(res)
}

// IsAsset reports whether path belongs to one of the pass-through prefixes,
// either at the server root or below the base.
func (sh *Shell) IsAsset(path string) bool {
	if sh.hasAssetPrefix(path) {
		return true
	}
	if sh.opts.Base == consts.PathRoot {
		return false
	}

	stripped, ok := rnav.StripBase(sh.opts.Base, path)
	return ok && sh.hasAssetPrefix(stripped)
}

func (sh *Shell) hasAssetPrefix(path string) bool {
	for _, prefix := range sh.opts.AssetPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Middleware is an rweb middleware answering GET and HEAD requests for
// application paths. Asset paths and other methods continue down the chain.
func (sh *Shell) Middleware(ctx rweb.Context) error {
	req := ctx.Request()

	method := req.Method()
	if (method != consts.MethodGet && method != consts.MethodHead) || sh.IsAsset(req.Path()) {
		return ctx.Next()
	}

	status, html := sh.Page(req.Path())
	ctx.Response().SetStatus(status)
	return ctx.WriteHTML(html)
}

// Register installs the shell as middleware on s.
func (sh *Shell) Register(s *rweb.Server) {
	s.Use(sh.Middleware)
}
