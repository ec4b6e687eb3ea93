// Package routepath normalizes the paths carried by navigation events before
// they are matched against the route table.
package routepath

import (
	"errors"
	"strings"
)

// Result contains the result of path canonicalization.
type Result struct {
	// Path is the canonicalized path (without query string or fragment).
	Path string

	// Query is the query string (without leading "?").
	Query string

	// Changed indicates if the path was modified during canonicalization.
	Changed bool
}

// Path canonicalization errors.
var (
	ErrInvalidPath          = errors.New("invalid path")
	ErrBackslashInPath      = errors.New("path contains backslash")
	ErrNullByteInPath       = errors.New("path contains null byte")
	ErrInvalidPercentEscape = errors.New("invalid percent escape sequence")
	ErrPathEscapesRoot      = errors.New("path escapes root via ..")
)

// Canonicalize normalizes a URL path:
//   - a missing leading slash is added
//   - repeated slashes collapse (/import//logs → /import/logs)
//   - "." segments are removed and ".." segments resolved
//   - a trailing slash is removed (except for root "/")
//
// A query string is split off and preserved; a fragment is discarded.
// Paths containing a backslash, a NUL byte, a malformed percent-escape or a
// ".." that climbs above root are rejected.
func Canonicalize(input string) (Result, error) {
	if input == "" {
		return Result{Path: "/", Changed: true}, nil
	}

	input, _, _ = strings.Cut(input, "#")
	path, query, _ := strings.Cut(input, "?")

	if strings.Contains(path, "\\") {
		return Result{}, ErrBackslashInPath
	}
	if strings.Contains(path, "\x00") || strings.Contains(strings.ToUpper(path), "%00") {
		return Result{}, ErrNullByteInPath
	}
	if strings.Contains(path, "%") {
		if err := validatePercentEscapes(path); err != nil {
			return Result{}, err
		}
	}

	original := path
	segments := make([]string, 0, strings.Count(path, "/")+1)
	for _, seg := range strings.Split(path, "/") {
		switch seg {
		case "", ".":
			continue
		case "..":
			if len(segments) == 0 {
				return Result{}, ErrPathEscapesRoot
			}
			segments = segments[:len(segments)-1]
		default:
			segments = append(segments, seg)
		}
	}

	path = "/" + strings.Join(segments, "/")
	return Result{
		Path:    path,
		Query:   query,
		Changed: path != original,
	}, nil
}

// NavPath validates and canonicalizes the path of a navigation request.
// Navigation targets must be app-relative: absolute URLs and
// protocol-relative "//host" forms are rejected.
func NavPath(input string) (string, error) {
	if strings.HasPrefix(input, "//") || strings.Contains(input, "://") {
		return "", ErrInvalidPath
	}
	if !strings.HasPrefix(input, "/") {
		return "", ErrInvalidPath
	}
	res, err := Canonicalize(input)
	if err != nil {
		return "", err
	}
	return res.Path, nil
}

// Segments splits a canonical path into its segments. Root has none.
func Segments(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// validatePercentEscapes checks that all percent-escapes are %XX with hex digits.
func validatePercentEscapes(path string) error {
	for i := 0; i < len(path); i++ {
		if path[i] != '%' {
			continue
		}
		if i+2 >= len(path) || !isHexDigit(path[i+1]) || !isHexDigit(path[i+2]) {
			return ErrInvalidPercentEscape
		}
		i += 2
	}
	return nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
