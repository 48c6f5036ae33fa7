package touchscript

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// scriptLog derives from the global logger on each call so a logger
// installed after start up still receives the module's lines.
func scriptLog() *zerolog.Logger {
	l := log.With().Str("module", "touchscript").Logger()
	return &l
}
