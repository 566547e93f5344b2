// Package console composes the page catalog, the selection and the per-page
// input and solve state into the shell a host renders.
//
// A Shell is not safe for concurrent use; hosts drive it from a single
// goroutine (the Bubble Tea update loop, or a CLI command). Asynchronous
// hosts install a Dispatcher that executes runs elsewhere and applies the
// result back on that goroutine.
package console
