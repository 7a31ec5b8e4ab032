//go:build debug

package overlay2d

import (
	"log"
	"os"
)

// Debug logger instance, compiled in only under the debug build tag.
// BuildGraph and ExtractShapes use this to trace edge, node, link and shape
// counts without paying for it in normal builds.
var logger = log.New(os.Stderr, "[overlay2d DEBUG] ", log.LstdFlags)

// logDebugf logs a debug message when built with -tags debug.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
