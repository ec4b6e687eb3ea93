// Package errors provides structured, coded errors for LogsViewer.
//
// Every error carries a code (e.g. "E200") that maps to a registered
// template with a short message, a longer explanation and a category.
// Callers add context with WithDetail, WithSuggestion and Wrap:
//
//	err := errors.New("E200").
//	    WithDetail(`path "/nodes" is declared twice`).
//	    WithSuggestion("Remove one declaration or allow first-match precedence")
//
//	fmt.Println(err.Format())
//
// Errors compare by code with the standard library's errors.Is, so a
// caller can test for a failure class without string matching:
//
//	if stderrors.Is(err, errors.New("E200")) { ... }
//
// # Categories
//
//   - config: configuration file problems
//   - routing: route table declaration problems
//   - navigation: navigation requests that cannot be honoured
//   - protocol: live navigation channel problems
//   - cli: command line usage
package errors
