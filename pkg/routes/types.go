package routes

import "github.com/logsviewer/logsviewer/pkg/vdom"

// View renders the content of a route. Views are opaque to the router.
type View interface {
	Render(props Props) *vdom.VNode
}

// ViewFunc is a function adapter for View.
type ViewFunc func(props Props) *vdom.VNode

// Render implements View.
func (f ViewFunc) Render(props Props) *vdom.VNode {
	return f(props)
}

// Props is what a view receives when it is rendered: the declared
// properties of its entry plus the match context of the navigation.
type Props struct {
	// Declared on the entry.
	Path  string
	Exact bool
	Title string
	Label string

	// URL is the canonical path that was navigated to.
	URL string

	// Params holds values captured by :name segments.
	Params map[string]string

	// IsExact reports whether URL equals the matched pattern with no
	// trailing segments.
	IsExact bool
}

// Param returns a captured path parameter, or "" when absent.
func (p Props) Param(name string) string {
	return p.Params[name]
}

// Config is one item of a route table: an Entry or a Group.
type Config interface {
	config()
}

// Entry is a routable destination.
type Entry struct {
	// Path is the URL pattern. It must start with "/".
	Path string

	// Exact restricts matching to the identical path. When false the entry
	// also matches any path below it.
	Exact bool

	// Title is applied to the document after navigating here.
	Title string

	// View renders the entry.
	View View

	// Label is the menu text. Entries without a label are routable but
	// hidden from the menu.
	Label string
}

func (Entry) config() {}

// Props returns the declared properties of the entry.
func (e Entry) Props() Props {
	return Props{
		Path:  e.Path,
		Exact: e.Exact,
		Title: e.Title,
		Label: e.Label,
	}
}

// Group is a labeled menu section. Its members route exactly like
// standalone entries.
type Group struct {
	Label   string
	Members []Entry
}

func (Group) config() {}
