package slider

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// sliderLog returns the module logger built from the current global logger.
func sliderLog() zerolog.Logger {
	return log.With().Str("module", "slider").Logger()
}
