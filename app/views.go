package app

import (
	"github.com/logsviewer/logsviewer/pkg/router"
	"github.com/logsviewer/logsviewer/pkg/routes"
	"github.com/logsviewer/logsviewer/pkg/vdom"
)

// page renders the common page frame: a heading and a short description.
func page(class, heading, description string) routes.View {
	return routes.ViewFunc(func(p routes.Props) *vdom.VNode {
		return vdom.Section(
			vdom.Class("page", class),
			vdom.Data("route", p.Path),
			vdom.H1(vdom.Text(heading)),
			vdom.P(vdom.Class("page-description"), vdom.Text(description)),
		)
	})
}

// Page views. Their content is owned by the pages themselves; the router
// only renders them.
var (
	Dashboard = page("dashboard", "Dashboard",
		"Overview of the imported must-gather data.")

	ImportLogs = page("import-logs", "Import Logs",
		"Upload a must-gather archive to index its logs.")

	ImportDatabase = page("import-database", "Import Database",
		"Restore a previously exported LogsViewer database.")

	VirtualMachines = page("virtualmachines", "Virtual Machines",
		"Virtual machines found in the imported data.")

	VirtualMachineInstances = page("virtualmachineinstances", "Virtual Machine Instances",
		"Running virtual machine instances and their nodes.")

	Migrations = page("migrations", "Migrations",
		"Live migrations of virtual machine instances.")

	Pods = page("pods", "Pods",
		"Pods with host and owner enrichment.")

	PersistentVolumeClaims = page("pvcs", "PersistentVolumeClaims",
		"Persistent volume claims and their bound volumes.")

	Nodes = page("nodes", "Nodes",
		"Cluster nodes from the cluster-scoped resources.")
)

// NotFound is the fallback view.
var NotFound = routes.ViewFunc(func(p routes.Props) *vdom.VNode {
	return vdom.Section(
		vdom.Class("page", "not-found"),
		vdom.H1(vdom.Text("404 Page Not Found")),
		vdom.P(vdom.Text("We didn't find a page that matches "), vdom.Code(vdom.Text(p.URL)), vdom.Text(".")),
		vdom.P(router.Link("/", vdom.Text("Take me home"))),
	)
})

// Fallback returns the not-found alternative rendered with NotFound.
// An empty title keeps the router default.
func Fallback(title string) router.Fallback {
	return router.Fallback{Title: title, View: NotFound}
}
