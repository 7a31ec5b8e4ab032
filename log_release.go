//go:build !debug

package overlay2d

// logDebugf is a no-op outside debug builds, so call sites never need a
// build-tag check of their own.
func logDebugf(format string, v ...interface{}) {}
