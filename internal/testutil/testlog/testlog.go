package testlog

import (
	"testing"

	"github.com/rs/zerolog/log"

	"github.com/shad0w-jo4n/libcpp-gc/internal/logging"
)

func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	log.Debug().Str("test", t.Name()).Msg("test_start")
}
