// Package app declares the LogsViewer pages: the route table, the page
// views and the shell that hosts them.
package app
