package router

import (
	"log/slog"

	"github.com/logsviewer/logsviewer/pkg/routepath"
	"github.com/logsviewer/logsviewer/pkg/routes"
	"github.com/logsviewer/logsviewer/pkg/vdom"
)

// DefaultNotFoundTitle is the document title applied when no route matches.
const DefaultNotFoundTitle = "404 Page Not Found"

// Fallback is rendered when no entry matches. It has no path and no
// predicate; it is always the last alternative.
type Fallback struct {
	// Title defaults to DefaultNotFoundTitle.
	Title string

	// View defaults to a plain not-found message.
	View routes.View
}

var defaultNotFoundView = routes.ViewFunc(func(p routes.Props) *vdom.VNode {
	return vdom.Div(
		vdom.Class("not-found"),
		vdom.H1(vdom.Text("404 Page Not Found")),
		vdom.P(vdom.Text("Nothing lives at "), vdom.Code(vdom.Text(p.URL)), vdom.Text(".")),
	)
})

func (f Fallback) withDefaults() Fallback {
	if f.Title == "" {
		f.Title = DefaultNotFoundTitle
	}
	if f.View == nil {
		f.View = defaultNotFoundView
	}
	return f
}

// Resolution is the outcome of resolving one path.
type Resolution struct {
	// Path is the canonical path, or the raw input if it could not be
	// canonicalized.
	Path string

	// Entry is the matched entry, nil for the fallback.
	Entry *routes.Entry

	// Match holds the match details when Entry is set.
	Match Match

	// Title is the title to apply: the entry's or the fallback's.
	Title string

	// NotFound is true when the fallback was selected.
	NotFound bool

	// Node is the rendered view.
	Node *vdom.VNode
}

type compiledRoute struct {
	entry   routes.Entry
	pattern Pattern
}

// Switch selects the first matching entry of a route table.
// It is immutable and safe for concurrent use.
type Switch struct {
	routes   []compiledRoute
	fallback Fallback
	logger   *slog.Logger
}

// SwitchOption configures a Switch.
type SwitchOption func(*Switch)

// WithSwitchLogger sets the logger used for resolution debug output.
func WithSwitchLogger(logger *slog.Logger) SwitchOption {
	return func(s *Switch) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSwitch compiles the flattened table in declaration order.
func NewSwitch(table *routes.Table, fallback Fallback, opts ...SwitchOption) *Switch {
	s := &Switch{
		fallback: fallback.withDefaults(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if table != nil {
		entries := table.Flatten()
		s.routes = make([]compiledRoute, len(entries))
		for i, e := range entries {
			s.routes[i] = compiledRoute{entry: e, pattern: Compile(e.Path, e.Exact)}
		}
	}
	return s
}

// Fallback returns the fallback with defaults applied.
func (s *Switch) Fallback() Fallback {
	return s.fallback
}

// Lookup finds the first entry matching path without rendering it.
func (s *Switch) Lookup(path string) (*routes.Entry, Match, bool) {
	canonical, err := routepath.NavPath(path)
	if err != nil {
		return nil, Match{}, false
	}
	return s.lookup(canonical)
}

func (s *Switch) lookup(canonical string) (*routes.Entry, Match, bool) {
	for i := range s.routes {
		r := &s.routes[i]
		if m, ok := r.pattern.Match(canonical); ok {
			entry := r.entry
			return &entry, m, true
		}
	}
	return nil, Match{}, false
}

// Resolve selects the first matching entry, or the fallback, and renders
// it. Invalid paths resolve to the fallback.
func (s *Switch) Resolve(path string) Resolution {
	canonical, err := routepath.NavPath(path)
	if err != nil {
		s.logger.Debug("navigation path rejected", "path", path, "error", err)
		return s.notFound(path)
	}

	entry, m, ok := s.lookup(canonical)
	if !ok {
		return s.notFound(canonical)
	}

	props := entry.Props()
	props.URL = canonical
	props.Params = m.Params
	props.IsExact = m.IsExact

	return Resolution{
		Path:  canonical,
		Entry: entry,
		Match: m,
		Title: entry.Title,
		Node:  entry.View.Render(props),
	}
}

func (s *Switch) notFound(path string) Resolution {
	return Resolution{
		Path:     path,
		Title:    s.fallback.Title,
		NotFound: true,
		Node:     s.fallback.View.Render(routes.Props{URL: path, Title: s.fallback.Title}),
	}
}
