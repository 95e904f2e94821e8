package scanner

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/projectdiscovery/gologger"
	"github.com/remeh/sizedwaitgroup"
	"github.com/wjlin0/dirScan/pkg/result"
)

// Prober probes a single candidate. *Scanner is the production Prober.
type Prober interface {
	Probe(candidate string) result.Outcome
}

// WorkerOptions size one worker unit.
type WorkerOptions struct {
	Concurrency int
	ChunkSize   int
	ChunkPause  time.Duration
	// OnOutcome, when set, is called after every outcome has been recorded.
	OnOutcome func(outcome result.Outcome)
}

// Worker drains one shard of candidates with at most Concurrency probes in
// flight, chunk by chunk.
type Worker struct {
	id      int
	prober  Prober
	state   *result.ScanState
	options WorkerOptions
}

func NewWorker(id int, prober Prober, state *result.ScanState, options WorkerOptions) *Worker {
	if options.Concurrency <= 0 {
		options.Concurrency = 1
	}
	if options.ChunkSize <= 0 {
		options.ChunkSize = 1000
	}
	return &Worker{id: id, prober: prober, state: state, options: options}
}

// Run probes every candidate of shard until the shard is drained or ctx is
// cancelled. After cancellation no new probe starts; probes already running
// finish and are recorded before Run returns.
func (w *Worker) Run(ctx context.Context, shard []string) error {
	wg := sizedwaitgroup.New(w.options.Concurrency)
	defer wg.Wait()

	for start := 0; start < len(shard); start += w.options.ChunkSize {
		end := start + w.options.ChunkSize
		if end > len(shard) {
			end = len(shard)
		}
		for _, candidate := range shard[start:end] {
			if err := wg.AddWithContext(ctx); err != nil {
				gologger.Debug().Msgf("Worker %d stopped: %s", w.id, err)
				return nil
			}
			// the permit may have been granted after cancellation
			if ctx.Err() != nil {
				wg.Done()
				return nil
			}
			go func(candidate string) {
				defer wg.Done()
				w.handle(candidate)
			}(candidate)
		}
		wg.Wait()

		if end < len(shard) && w.options.ChunkPause > 0 {
			timer := time.NewTimer(w.options.ChunkPause)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil
			case <-timer.C:
			}
		}
	}
	return nil
}

func (w *Worker) handle(candidate string) {
	outcome := w.probe(candidate)
	w.state.Record(outcome)
	if w.options.OnOutcome != nil {
		w.options.OnOutcome(outcome)
	}
}

func (w *Worker) probe(candidate string) (outcome result.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = result.NewError(candidate, candidate, result.Other, errors.Errorf("probe panicked: %v", r))
		}
	}()
	return w.prober.Probe(candidate)
}
