package app

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/logsviewer/logsviewer/pkg/render"
	"github.com/logsviewer/logsviewer/pkg/router"
	"github.com/logsviewer/logsviewer/pkg/routes"
	"github.com/logsviewer/logsviewer/pkg/vdom"
)

func TestRoutes(t *testing.T) {
	table, err := Routes()
	if err != nil {
		t.Fatalf("Routes() error = %v", err)
	}
	if dups := table.Duplicates(); len(dups) != 0 {
		t.Errorf("Duplicates() = %v, want none", dups)
	}

	type row struct {
		Path  string
		Title string
		Exact bool
	}
	var got []row
	for _, e := range table.Flatten() {
		got = append(got, row{e.Path, e.Title, e.Exact})
	}
	want := []row{
		{"/", "LogsViewer | Main Dashboard", true},
		{"/import/logs", "LogsViewer | Import Logs", true},
		{"/import/database", "LogsViewer | Import Database", true},
		{"/workloads/virtualmachines", "PatternFly Seed | Virtual Machines View", true},
		{"/workloads/virtualmachineinstances", "PatternFly Seed | Virtual Machine Instances View", true},
		{"/workloads/migrations", "PatternFly Seed | Migrations View", true},
		{"/workloads/pods", "LogsViewer | Pods View", true},
		{"/storage/pvcs", "PatternFly Seed | PersistentVolumeClaims View", true},
		{"/nodes", "LogsViewer | Nodes View", true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("flattened table mismatch (-want +got):\n%s", diff)
	}
}

func TestMenu(t *testing.T) {
	table, err := Routes()
	if err != nil {
		t.Fatal(err)
	}

	var labels []string
	for _, item := range table.Menu() {
		label := item.Label
		if item.IsSection() {
			var children []string
			for _, c := range item.Children {
				children = append(children, c.Label)
			}
			label += "[" + strings.Join(children, ",") + "]"
		}
		labels = append(labels, label)
	}
	want := []string{
		"Dashboard",
		"Import[Logs,Database]",
		"Workloads[VirtualMachines,VirtualMachineIntances,Migrations,Pods]",
		"Storage[PersistentVolumeClaims]",
		"Nodes",
	}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Errorf("menu mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveTitles(t *testing.T) {
	table, err := Routes()
	if err != nil {
		t.Fatal(err)
	}
	sw := router.NewSwitch(table, Fallback(""))

	tests := []struct {
		path     string
		title    string
		notFound bool
	}{
		{"/", "LogsViewer | Main Dashboard", false},
		{"/workloads/pods", "LogsViewer | Pods View", false},
		{"/workloads/pods/", "LogsViewer | Pods View", false},
		{"/storage/pvcs", "PatternFly Seed | PersistentVolumeClaims View", false},
		{"/nodes/worker-0", "404 Page Not Found", true},
		{"/does-not-exist", "404 Page Not Found", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			res := sw.Resolve(tt.path)
			if res.Title != tt.title || res.NotFound != tt.notFound {
				t.Errorf("Resolve(%q) = (%q, notFound=%v), want (%q, %v)",
					tt.path, res.Title, res.NotFound, tt.title, tt.notFound)
			}
		})
	}
}

func TestShell(t *testing.T) {
	table, err := Routes()
	if err != nil {
		t.Fatal(err)
	}
	sw := router.NewSwitch(table, Fallback(""))
	res := sw.Resolve("/workloads/pods")

	tree := Shell(table)(res.Path, res.Node)

	main := vdom.FindByID(tree, "primary-app-container")
	if main == nil {
		t.Fatal("shell has no primary content container")
	}
	if main.Tag != "main" {
		t.Errorf("container tag = %q, want main", main.Tag)
	}
	if vdom.FindByID(tree, RootID) != tree {
		t.Errorf("root id not on the outermost element")
	}

	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(tree)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`<main id="primary-app-container" tabindex="-1">`,
		`<a aria-current="page" class="active" data-link="true" href="/workloads/pods">Pods</a>`,
		`<a data-link="true" href="/nodes">Nodes</a>`,
		`<span aria-expanded="true">Workloads</span>`,
		`<span aria-expanded="false">Storage</span>`,
		`data-route="/workloads/pods"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered shell missing %s\n%s", want, html)
		}
	}
}

func TestNotFoundView(t *testing.T) {
	node := NotFound.Render(routes.Props{URL: "/missing"})
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"404 Page Not Found", "<code>/missing</code>", `href="/"`} {
		if !strings.Contains(html, want) {
			t.Errorf("not-found view missing %s\n%s", want, html)
		}
	}
}
