// Package nav applies the side effects of a committed navigation.
//
// After every navigation the document title is set to the route's title,
// and shortly afterwards keyboard focus moves to the primary content
// container so assistive technology announces the new page. A Pipeline
// holds at most one pending focus move: a new navigation, a not-found
// navigation or Close cancels it.
//
// The pipeline never reads the document; it only writes through the
// Document interface. Timers are created through a Scheduler so that hosts
// can run the callback on their own event loop.
package nav
