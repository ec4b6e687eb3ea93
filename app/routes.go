package app

import "github.com/logsviewer/logsviewer/pkg/routes"

// Configs returns the LogsViewer route declarations in menu order.
func Configs() []routes.Config {
	return []routes.Config{
		routes.Entry{
			Path:  "/",
			Exact: true,
			Title: "LogsViewer | Main Dashboard",
			View:  Dashboard,
			Label: "Dashboard",
		},
		routes.Group{
			Label: "Import",
			Members: []routes.Entry{
				{
					Path:  "/import/logs",
					Exact: true,
					Title: "LogsViewer | Import Logs",
					View:  ImportLogs,
					Label: "Logs",
				},
				{
					Path:  "/import/database",
					Exact: true,
					Title: "LogsViewer | Import Database",
					View:  ImportDatabase,
					Label: "Database",
				},
			},
		},
		routes.Group{
			Label: "Workloads",
			Members: []routes.Entry{
				{
					Path:  "/workloads/virtualmachines",
					Exact: true,
					Title: "PatternFly Seed | Virtual Machines View",
					View:  VirtualMachines,
					Label: "VirtualMachines",
				},
				{
					Path:  "/workloads/virtualmachineinstances",
					Exact: true,
					Title: "PatternFly Seed | Virtual Machine Instances View",
					View:  VirtualMachineInstances,
					Label: "VirtualMachineIntances",
				},
				{
					Path:  "/workloads/migrations",
					Exact: true,
					Title: "PatternFly Seed | Migrations View",
					View:  Migrations,
					Label: "Migrations",
				},
				{
					Path:  "/workloads/pods",
					Exact: true,
					Title: "LogsViewer | Pods View",
					View:  Pods,
					Label: "Pods",
				},
			},
		},
		routes.Group{
			Label: "Storage",
			Members: []routes.Entry{
				{
					Path:  "/storage/pvcs",
					Exact: true,
					Title: "PatternFly Seed | PersistentVolumeClaims View",
					View:  PersistentVolumeClaims,
					Label: "PersistentVolumeClaims",
				},
			},
		},
		routes.Entry{
			Path:  "/nodes",
			Exact: true,
			Title: "LogsViewer | Nodes View",
			View:  Nodes,
			Label: "Nodes",
		},
	}
}

// Routes builds the LogsViewer route table.
func Routes(opts ...routes.Option) (*routes.Table, error) {
	return routes.NewTable(Configs(), opts...)
}
