package runner

import (
	"context"
	"os"
	"os/signal"

	"github.com/projectdiscovery/gologger"
)

// WithInterrupt returns a context cancelled by the first interrupt signal.
// Later interrupts are swallowed so the scan can still save its results.
func WithInterrupt(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		select {
		case <-c:
			gologger.Info().Msg("CTRL+C pressed: finishing in-flight requests")
			cancel()
		case <-ctx.Done():
			signal.Stop(c)
			return
		}
		for range c {
			gologger.Warning().Msg("Already stopping, waiting for in-flight requests")
		}
	}()
	return ctx, cancel
}
