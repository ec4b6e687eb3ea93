// Package routes declares the navigation route table.
//
// A table is an ordered list of configs. Each config is either a standalone
// Entry or a labeled Group of entries. Groups exist only for presentation in
// the navigation menu; routing operates on the flattened list:
//
//	table, err := routes.NewTable([]routes.Config{
//	    routes.Entry{Path: "/", Exact: true, Title: "Home", View: home, Label: "Home"},
//	    routes.Group{Label: "Import", Members: []routes.Entry{
//	        {Path: "/import/logs", Exact: true, Title: "Import Logs", View: logs, Label: "Logs"},
//	    }},
//	})
//
// Order is significant: when two entries could match the same path, the one
// declared first wins.
package routes
