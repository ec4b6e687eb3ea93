// Package vdom provides the virtual node tree that views render into.
//
// Views are opaque to the navigation core: each one produces a VNode tree
// that the render package turns into HTML, either for a full server-side
// rendered page or for a live navigation frame.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Main(ID("primary-app-container"), TabIndex(-1),
//	    H1(Text("Nodes")),
//	    P(Text("Cluster nodes")),
//	)
//
// # Lookup
//
// FindByID walks a tree in document order and returns the first element
// carrying the given id attribute. The navigation pipeline uses it to decide
// whether the primary content container is present before requesting focus.
package vdom
