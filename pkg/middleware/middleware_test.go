package middleware

import (
	"testing"

	"github.com/logsviewer/logsviewer/pkg/router"
	"github.com/logsviewer/logsviewer/pkg/routes"
	"github.com/logsviewer/logsviewer/pkg/vdom"
)

func testSwitch(t *testing.T) *router.Switch {
	t.Helper()
	view := routes.ViewFunc(func(p routes.Props) *vdom.VNode { return vdom.Text(p.Title) })
	table, err := routes.NewTable([]routes.Config{
		routes.Entry{Path: "/", Exact: true, Title: "Dashboard", View: view},
		routes.Entry{Path: "/nodes/:name", Exact: true, Title: "Node", View: view},
	})
	if err != nil {
		t.Fatalf("NewTable error: %v", err)
	}
	return router.NewSwitch(table, router.Fallback{})
}
