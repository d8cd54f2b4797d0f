// Package sysutil holds small process-level helpers shared by the server
// entrypoint.
package sysutil

import (
	"strings"

	"github.com/rs/zerolog"
)

// SetLogLevel configures the global zerolog level from a config string and
// returns the level that was applied. Accepted values (case-insensitive):
// trace, debug, info, warn/warning, error, fatal, panic. Anything else,
// including the empty string, falls back to info.
func SetLogLevel(lvl string) zerolog.Level {
	var level zerolog.Level
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn", "warning":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	case "fatal":
		level = zerolog.FatalLevel
	case "panic":
		level = zerolog.PanicLevel
	default:
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	return level
}
