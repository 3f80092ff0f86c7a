package rnav

import (
	"strings"

	"github.com/rohanthewiz/rnav/consts"
	"github.com/rohanthewiz/serr"
)

// Href builds the path of the named route, filling its parameter segments from params.
// Every parameter of the pattern must be given a non-empty value without '/'.
// Extra entries in params are ignored. Values are inserted as given, not encoded.
func (t *Table) Href(name string, params map[string]string) (string, error) {
	def, ok := t.Lookup(name)
	if !ok {
		return "", serr.New("no route with that name", "route", name)
	}
	if def.Pattern == consts.PathRoot {
		return consts.PathRoot, nil
	}

	parts := strings.Split(def.Pattern[1:], consts.PathRoot)
	for i, part := range parts {
		if !strings.HasPrefix(part, consts.ParamMarker) {
			continue
		}

		key := part[1:]
		value, ok := params[key]
		if !ok || value == "" {
			return "", serr.New("missing route parameter", "route", name, "param", key)
		}
		if strings.IndexByte(value, consts.RuneFwdSlash) >= 0 {
			return "", serr.New("route parameter may not contain '/'", "route", name, "param", key, "value", value)
		}
		parts[i] = value
	}

	return consts.PathRoot + strings.Join(parts, consts.PathRoot), nil
}

// MustHref is Href for links built from constant arguments; it panics on error.
func (t *Table) MustHref(name string, params map[string]string) string {
	href, err := t.Href(name, params)
	if err != nil {
		panic(err)
	}
	return href
}
