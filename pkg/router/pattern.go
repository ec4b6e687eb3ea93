package router

import (
	"strings"

	"github.com/logsviewer/logsviewer/pkg/routepath"
)

// Pattern is a compiled route path.
type Pattern struct {
	path     string
	exact    bool
	segments []string
}

// Match describes a successful pattern match.
type Match struct {
	// Pattern is the entry path that matched.
	Pattern string

	// URL is the canonical path that was matched.
	URL string

	// Params holds values captured by :name segments.
	Params map[string]string

	// IsExact is true when URL has no segments beyond the pattern.
	IsExact bool
}

// Compile compiles an entry path. Prefix patterns match whole leading
// segments; exact patterns match the full path.
func Compile(path string, exact bool) Pattern {
	return Pattern{
		path:     path,
		exact:    exact,
		segments: routepath.Segments(path),
	}
}

// String returns the source path.
func (p Pattern) String() string {
	return p.path
}

// Exact reports whether the pattern only matches identical paths.
func (p Pattern) Exact() bool {
	return p.exact
}

// Match reports whether path satisfies the pattern. path must already be
// canonical.
func (p Pattern) Match(path string) (Match, bool) {
	segs := routepath.Segments(path)
	if len(segs) < len(p.segments) {
		return Match{}, false
	}
	if p.exact && len(segs) != len(p.segments) {
		return Match{}, false
	}

	var params map[string]string
	for i, want := range p.segments {
		if name, ok := strings.CutPrefix(want, ":"); ok && name != "" {
			if params == nil {
				params = make(map[string]string)
			}
			params[name] = segs[i]
			continue
		}
		if segs[i] != want {
			return Match{}, false
		}
	}

	return Match{
		Pattern: p.path,
		URL:     path,
		Params:  params,
		IsExact: len(segs) == len(p.segments),
	}, true
}
