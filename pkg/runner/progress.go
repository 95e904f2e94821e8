package runner

import (
	"fmt"
	"strings"
	"time"

	"github.com/projectdiscovery/clistats"
	"github.com/projectdiscovery/gologger"
	"github.com/wjlin0/dirScan/pkg/result"
)

const bufferSize = 128

// reportProgress logs a progress line every interval until stop is closed.
// It only reads the scan state.
func reportProgress(state *result.ScanState, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			gologger.Info().Msg(formatProgress(state, state.Elapsed()))
		}
	}
}

func formatProgress(state *result.ScanState, elapsed time.Duration) string {
	builder := &strings.Builder{}
	builder.Grow(bufferSize)

	scanned := state.Scanned()
	builder.WriteRune('[')
	builder.WriteString(clistats.FmtDuration(elapsed))
	builder.WriteRune(']')

	builder.WriteString(" | Progress: ")
	builder.WriteString(clistats.String(uint64(scanned)))
	builder.WriteRune('/')
	builder.WriteString(clistats.String(uint64(state.Total())))
	builder.WriteString(fmt.Sprintf(" (%.2f%%)", state.Percent()))

	builder.WriteString(" | RPS: ")
	rps := uint64(0)
	if seconds := elapsed.Seconds(); seconds > 0 {
		rps = uint64(float64(scanned) / seconds)
	}
	builder.WriteString(clistats.String(rps))

	builder.WriteString(" | Found: ")
	builder.WriteString(clistats.String(uint64(state.Len())))
	return builder.String()
}
