// Package router selects and renders the view for a navigation.
//
// A Switch is built from a route table and a Fallback. Resolving a path
// walks the flattened entries in declaration order and renders the first
// one whose pattern matches; when none does, the fallback is rendered.
// Exactly one view is rendered per resolution.
//
// An Outlet binds a Switch to one navigation context. Each call to
// Navigate resolves the path, commits the result and then triggers the
// navigation side effects exactly once:
//
//	sw := router.NewSwitch(table, router.Fallback{View: notFound})
//	out := router.NewOutlet(sw, pipeline,
//	    router.WithCommit(func(res *router.Resolution) error {
//	        return session.Show(res.Node)
//	    }),
//	)
//	res, err := out.Navigate(ctx, "/import/logs")
//
// Navigations pass through Middleware, which can observe the request path
// before resolution and the Resolution after it.
//
// # Patterns
//
// Exact entries match only the identical canonical path. Other entries
// match any path that extends them by whole segments, so "/workloads"
// matches "/workloads/pods" but not "/workloadsx", and "/" matches every
// path. A ":name" segment matches any single segment and captures it.
package router
