package app

import (
	"github.com/logsviewer/logsviewer/pkg/nav"
	"github.com/logsviewer/logsviewer/pkg/router"
	"github.com/logsviewer/logsviewer/pkg/routes"
	"github.com/logsviewer/logsviewer/pkg/vdom"
)

// RootID is the id of the element replaced on every live navigation.
const RootID = "app-root"

// Shell returns the page layout for a table: a header, the navigation
// menu and the primary content container.
func Shell(table *routes.Table) func(path string, content *vdom.VNode) *vdom.VNode {
	menu := table.Menu()
	return func(path string, content *vdom.VNode) *vdom.VNode {
		return vdom.Div(
			vdom.ID(RootID),
			vdom.Class("app"),
			vdom.Header(vdom.Class("masthead"), vdom.Strong(vdom.Text("LogsViewer"))),
			vdom.Nav(
				vdom.Class("sidebar"),
				vdom.AriaLabel("Global"),
				vdom.Ul(vdom.Range(menu, func(item routes.MenuItem, _ int) *vdom.VNode {
					return menuItem(item, path)
				})),
			),
			vdom.Main(
				vdom.ID(nav.DefaultFocusTarget),
				vdom.TabIndex(-1),
				content,
			),
		)
	}
}

func menuItem(item routes.MenuItem, current string) *vdom.VNode {
	if !item.IsSection() {
		active := router.IsActive(item.Path, item.Exact, current)
		return vdom.Li(vdom.Key(item.Path), router.NavLink(item.Path, active, vdom.Text(item.Label)))
	}

	expanded := false
	for _, child := range item.Children {
		if router.IsActive(child.Path, child.Exact, current) {
			expanded = true
			break
		}
	}
	return vdom.Li(
		vdom.Key(item.Label),
		vdom.Class("section"),
		vdom.Span(vdom.AriaExpanded(expanded), vdom.Text(item.Label)),
		vdom.Ul(vdom.Range(item.Children, func(child routes.MenuItem, _ int) *vdom.VNode {
			return menuItem(child, current)
		})),
	)
}
