// Package spritepack converts raster images to PNG sprite sheets and packs
// loose per-sprite PNGs into texture atlases with a JSON manifest describing
// where each sprite ended up.
package spritepack

import (
	"strings"

	"github.com/samson/spritepack/internal/logging"
)

// SetLogLevel changes the log level to the given name,
// one of "debug", "info", "warning" or "error".
// Any other value disables logging.
func SetLogLevel(level string) {
	var lvl logging.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = logging.LevelDebug
	case "info":
		lvl = logging.LevelInfo
	case "warning":
		lvl = logging.LevelWarning
	case "error":
		lvl = logging.LevelError
	default:
		lvl = logging.LevelNone
	}
	logging.SetLevel(lvl)
}
