//go:build !debug

// Package debug holds the build-tag-gated assertion and logging hooks.
// Outside the debug tag every hook compiles to a no-op, so invariant
// checks on hot paths cost nothing in a release build.
package debug

const Enabled = false

// Log records a trace line under the debug tag; a no-op here.
func Log([]any, string, string, ...any) {}

// Assert checks an internal invariant under the debug tag; a no-op here.
func Assert(bool, string, ...any) {}
