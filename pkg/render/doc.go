// Package render provides server-side rendering (SSR) of view trees.
//
// The render package converts VNode trees into HTML strings or streams:
//
//   - HTML5 element rendering with void element handling
//   - Text and attribute escaping
//   - Boolean attribute handling (hidden, etc.)
//   - Full page rendering with DOCTYPE, head (including the document title) and body
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Full Page Rendering
//
// Initial loads are rendered as a complete document whose title is the
// title of the resolved route:
//
//	page := render.PageData{
//	    Body:  shell,
//	    Title: res.Title,
//	    Scripts: []render.ScriptTag{{Src: "/_nav/client.js", Defer: true}},
//	}
//	err := renderer.RenderPage(w, page)
//
// # Security
//
// All text content is escaped by default. Raw HTML can be inserted using
// KindRaw nodes, but should only be used with trusted content.
package render
