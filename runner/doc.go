// Package runner drives searches off the caller's goroutine.
//
// The search engine itself is synchronous. Go hands a single search to a
// worker goroutine and delivers its outcome on a channel; Compare fans a
// grid out to several algorithms with a bounded errgroup. Each search works
// on its own clone of the grid, so callers may keep editing the original.
package runner
