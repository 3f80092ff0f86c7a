package rtr

import (
	"strconv"
	"strings"

	"github.com/rohanthewiz/rnav/consts"
)

// segment is one slash-separated piece of a compiled pattern.
type segment struct {
	value   string // literal text, or the parameter name when isParam is set
	isParam bool
}

// parsePattern splits a pattern into segments and validates it.
// The root pattern "/" compiles to zero segments.
func parsePattern(pattern string) ([]segment, *ConfigError) {
	if pattern == "" {
		return nil, &ConfigError{Kind: ErrEmptyPattern}
	}
	if pattern[0] != consts.RuneFwdSlash {
		return nil, &ConfigError{Kind: ErrMalformedPattern, Detail: "pattern must begin with '/'"}
	}
	if pattern == consts.PathRoot {
		return nil, nil
	}

	parts := strings.Split(pattern[1:], consts.PathRoot)
	segments := make([]segment, 0, len(parts))
	seen := make(map[string]struct{}, 2)

	for i, part := range parts {
		if part == "" {
			detail := "empty segment at position " + strconv.Itoa(i+1)
			if i == len(parts)-1 {
				detail = "trailing '/' is not allowed"
			}
			return nil, &ConfigError{Kind: ErrEmptySegment, Detail: detail}
		}

		if part[0] != consts.RuneColon {
			if strings.IndexByte(part, consts.RuneColon) >= 0 {
				return nil, &ConfigError{Kind: ErrMalformedPattern,
					Detail: "parameter marker must start the segment: " + part}
			}
			segments = append(segments, segment{value: part})
			continue
		}

		name := part[1:]
		if name == "" {
			return nil, &ConfigError{Kind: ErrEmptyParam, Detail: "parameter at position " + strconv.Itoa(i+1) + " has no name"}
		}
		if strings.IndexByte(name, consts.RuneColon) >= 0 {
			return nil, &ConfigError{Kind: ErrMalformedPattern, Detail: "invalid parameter name " + name}
		}
		if _, dup := seen[name]; dup {
			return nil, &ConfigError{Kind: ErrDuplicateParam, Detail: "parameter " + name + " appears more than once"}
		}
		seen[name] = struct{}{}

		segments = append(segments, segment{value: name, isParam: true})
	}

	return segments, nil
}

// patternKey renders segments with every parameter replaced by the marker,
// so structurally identical patterns share a key.
func patternKey(segments []segment) string {
	if len(segments) == 0 {
		return consts.PathRoot
	}

	var sb strings.Builder
	for _, seg := range segments {
		sb.WriteByte(consts.RuneFwdSlash)
		if seg.isParam {
			sb.WriteString(consts.ParamMarker)
			continue
		}
		sb.WriteString(seg.value)
	}
	return sb.String()
}

// matchSegments reports whether path fits the segments.
// When addParameter is not nil it receives each bound parameter, so callers
// only pass it once a match is already known.
func matchSegments(segments []segment, path string, addParameter func(key string, value string)) bool {
	if len(path) == 0 || path[0] != consts.RuneFwdSlash {
		return false
	}
	if len(segments) == 0 {
		return path == consts.PathRoot
	}

	rest := path[1:]
	last := len(segments) - 1

	for i, seg := range segments {
		var part string
		slash := strings.IndexByte(rest, consts.RuneFwdSlash)

		switch {
		case slash < 0 && i < last: // path ran out of segments
			return false
		case slash >= 0 && i == last: // path has more segments
			return false
		case slash < 0:
			part, rest = rest, ""
		default:
			part, rest = rest[:slash], rest[slash+1:]
		}

		if seg.isParam {
			if part == "" {
				return false
			}
			if addParameter != nil {
				addParameter(seg.value, part)
			}
			continue
		}

		if part != seg.value {
			return false
		}
	}

	return true
}
