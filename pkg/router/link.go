package router

import (
	"github.com/logsviewer/logsviewer/pkg/routepath"
	"github.com/logsviewer/logsviewer/pkg/vdom"
)

// Link creates an anchor element with client-side navigation.
// When clicked, the thin client intercepts and sends a navigate frame
// instead of performing a full page reload.
func Link(href string, children ...any) *vdom.VNode {
	return vdom.A(
		vdom.Href(href),
		DataLink(),
		children,
	)
}

// NavLink creates a menu link. When active it carries the "active" class
// and aria-current="page".
func NavLink(href string, active bool, children ...any) *vdom.VNode {
	attrs := []any{
		vdom.Href(href),
		DataLink(),
	}
	if active {
		attrs = append(attrs, vdom.Class("active"), vdom.AriaCurrent("page"))
	}
	attrs = append(attrs, children...)
	return vdom.A(attrs...)
}

// IsActive reports whether a menu link for href is active at current,
// using the same matching rules as the route table.
func IsActive(href string, exact bool, current string) bool {
	canonical, err := routepath.NavPath(current)
	if err != nil {
		return false
	}
	_, ok := Compile(href, exact).Match(canonical)
	return ok
}

// DataLink creates an anchor attribute that enables client-side navigation.
func DataLink() vdom.Attr {
	return vdom.Attr{Key: "data-link", Value: "true"}
}
