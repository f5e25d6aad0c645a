package relay

import (
	"github.com/rs/zerolog/log"
)

// detach runs a best-effort side call on its own goroutine. The main flow
// never waits on it; failures are logged and swallowed.
func detach(name string, fn func() error) {
	go func() {
		if err := fn(); err != nil {
			log.Debug().Err(err).Str("call", name).Msg("Best-effort side call failed")
		}
	}()
}
