package observability

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/shad0w-jo4n/libcpp-gc/internal/logging"
)

// InitLogger configures the global logger for a binary. Level, timestamp,
// and color honor the LIBGC_LOG_* environment overrides.
func InitLogger(app string) zerolog.Logger {
	logging.ConfigureRuntime()
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().Timestamp().Str("app", app).Logger()
	log.Logger = logger
	return logger
}
