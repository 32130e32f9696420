// Package logging configures the global zerolog logger for the binaries.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLevel is used when LOG_LEVEL is unset or unparsable.
const DefaultLevel = zerolog.DebugLevel

// ParseLevel maps a LOG_LEVEL value onto a zerolog level.
func ParseLevel(s string) zerolog.Level {
	if strings.TrimSpace(s) == "" {
		return DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return DefaultLevel
	}
	return lvl
}

// SetLevelFromEnv sets the global level from LOG_LEVEL.
func SetLevelFromEnv() {
	zerolog.SetGlobalLevel(ParseLevel(os.Getenv("LOG_LEVEL")))
}

// Console points the global logger at a human-readable writer and applies
// LOG_LEVEL.
func Console(out io.Writer) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out})
	SetLevelFromEnv()
}
