package rnav

import (
	"strings"

	"github.com/rohanthewiz/rnav/consts"
)

// Normalize turns a raw navigation target into the path form Resolve expects.
//
// Policy:
//   - the fragment (#...) and then the query (?...) are dropped
//   - a leading slash is ensured and repeated slashes are collapsed
//   - a trailing slash is removed, except for the root path "/"
//   - nothing is decoded and case is kept, so /books/a%20b binds id "a%20b"
//
// Dot segments are not interpreted; "/books/../search" stays as it is and
// simply does not match.
func Normalize(raw string) string {
	path, _, _ := SplitURL(raw)
	if isNormalized(path) {
		return path
	}

	var sb strings.Builder
	sb.Grow(len(path) + 1)
	sb.WriteByte(consts.RuneFwdSlash)

	for _, part := range strings.Split(path, consts.PathRoot) {
		if part == "" {
			continue
		}
		if sb.Len() > 1 {
			sb.WriteByte(consts.RuneFwdSlash)
		}
		sb.WriteString(part)
	}
	return sb.String()
}

// SplitURL separates a raw navigation target into path, query and fragment.
// The separators themselves are not included.
func SplitURL(raw string) (path, query, fragment string) {
	path = raw
	if i := strings.IndexByte(path, consts.RuneHash); i >= 0 {
		path, fragment = path[:i], path[i+1:]
	}
	if i := strings.IndexByte(path, consts.RuneQuestion); i >= 0 {
		path, query = path[:i], path[i+1:]
	}
	return
}

// StripBase removes the history base from a normalized path.
// The base itself maps to "/". ok is false when path lies outside the base;
// "/booksearch" is outside base "/books".
func StripBase(base string, path string) (stripped string, ok bool) {
	base = Normalize(base)
	if base == consts.PathRoot {
		return path, true
	}
	if path == base {
		return consts.PathRoot, true
	}
	if strings.HasPrefix(path, base) && path[len(base)] == consts.RuneFwdSlash {
		return path[len(base):], true
	}
	return "", false
}

// JoinBase prefixes a resolver path with the history base.
func JoinBase(base string, path string) string {
	base = Normalize(base)
	if base == consts.PathRoot {
		return path
	}
	if path == consts.PathRoot {
		return base
	}
	return base + path
}

func isNormalized(path string) bool {
	if len(path) == 0 || path[0] != consts.RuneFwdSlash {
		return false
	}
	if path == consts.PathRoot {
		return true
	}
	if path[len(path)-1] == consts.RuneFwdSlash {
		return false
	}
	return !strings.Contains(path, "//")
}
