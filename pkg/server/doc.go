// Package server hosts the navigation core over HTTP.
//
// Initial loads are rendered on the server: the requested path is resolved
// against the route table and returned as a complete HTML document whose
// title is the route title. Paths with no route are served with status 404
// and the fallback view.
//
// The page then loads a small client script that opens a WebSocket and
// turns every same-origin link click and history change into a navigate
// frame. Each connection owns a Session with a single event loop; the
// session resolves the path, sends the rendered view, and applies the
// title and focus effects by sending frames back to the client.
//
// # Wire Format
//
// Frames are JSON text messages. Client to server:
//
//	{"type":"navigate","path":"/import/logs"}
//
// Server to client:
//
//	{"type":"render","path":"/import/logs","html":"<div>...</div>"}
//	{"type":"title","title":"LogsViewer | Import Logs"}
//	{"type":"focus","id":"primary-app-container"}
//	{"type":"error","code":"E401","message":"Malformed frame"}
//
// # Endpoints
//
//	GET /*               server-side rendered page
//	GET /_nav/ws         live navigation session
//	GET /_nav/client.js  thin client
//	GET /healthz         liveness
//	GET /metrics         Prometheus scrape endpoint (when configured)
package server
