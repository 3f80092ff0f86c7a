package serve

import (
	"strconv"
	"time"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// RequestInfo is a middleware logging basic request / response stats,
// including the route the shell resolved the path to.
func (sh *Shell) RequestInfo(ctx rweb.Context) error {
	start := time.Now()

	defer func() {
		req := ctx.Request()
		route := "-"
		if !sh.IsAsset(req.Path()) {
			route = sh.Resolve(req.Path()).String()
		}

		logger.Info("request",
			"method", req.Method(),
			"path", req.Path(),
			"status", strconv.Itoa(ctx.Response().Status()),
			"route", route,
			"elapsed", time.Since(start).String(),
		)
	}()

	return ctx.Next()
}
