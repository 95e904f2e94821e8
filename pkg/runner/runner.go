package runner

import (
	"context"
	"os"
	"sort"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/projectdiscovery/gologger"
	"github.com/wjlin0/dirScan/pkg/input"
	"github.com/wjlin0/dirScan/pkg/output"
	"github.com/wjlin0/dirScan/pkg/result"
	"github.com/wjlin0/dirScan/pkg/scanner"
	"github.com/wjlin0/dirScan/pkg/types"
	"golang.org/x/sync/errgroup"
)

// Runner orchestrates one scan: it partitions the candidates, runs the
// worker units and the progress reporter, and saves the discoveries.
type Runner struct {
	options       *types.Options
	scanner       *scanner.Scanner
	outputWriter  *output.OutputWriter
	state         *result.ScanState
	statsInterval time.Duration
	resultFile    string
}

func NewRunner(options *types.Options) (*Runner, error) {
	runner := &Runner{
		options:       options,
		statsInterval: time.Duration(options.StatsInterval) * time.Second,
	}
	if runner.statsInterval <= 0 {
		runner.statsInterval = defaultStatsInterval * time.Second
	}
	runner.loadInputs()

	var err error
	if runner.scanner, err = scanner.NewScanner(options); err != nil {
		return nil, errors.Wrap(err, "could not create scanner")
	}
	if runner.outputWriter, err = output.NewOutputWriter(os.Stdout); err != nil {
		runner.scanner.Close()
		return nil, errors.Wrap(err, "could not create output writer")
	}
	return runner, nil
}

func (r *Runner) loadInputs() {
	candidates := append(r.options.Candidates, input.LoadList("wordlist", r.options.Wordlist)...)
	if r.options.Stdin {
		items, err := input.ReadFrom(os.Stdin)
		if err != nil {
			gologger.Error().Msgf("Could not read candidates from stdin: %s", err)
		}
		candidates = append(candidates, items...)
	}
	r.options.Candidates = candidates

	r.options.Proxies = append(r.options.Proxies, input.LoadList("proxy list", r.options.ProxyList)...)
	r.options.Proxies = append(r.options.Proxies, r.options.Proxy...)
	r.options.UserAgents = append(r.options.UserAgents, input.LoadList("user-agent list", r.options.UserAgentList)...)
	r.options.UserAgents = append(r.options.UserAgents, r.options.UserAgent...)
}

// Run scans every candidate, or until ctx is cancelled. Whatever was found
// is summarised and written to the result file in both cases.
func (r *Runner) Run(ctx context.Context) error {
	candidates := r.options.Candidates
	r.state = result.NewScanState(len(candidates))
	workers := WorkerCount(r.options)
	shards := input.Partition(candidates, workers)

	gologger.Info().Msgf("Target: %s", r.options.URL)
	gologger.Info().Msgf("Loaded %d candidates, %d workers x %d concurrency, profile %s",
		len(candidates), workers, r.options.Concurrency, r.options.Profile)
	if r.options.HasProxies() {
		gologger.Info().Msgf("Rotating through %d proxies", r.scanner.Identities().Routes())
	}
	statuses := r.scanner.Policy().Statuses()
	sort.Ints(statuses)
	gologger.Verbose().Msgf("Matching status codes %v", statuses)

	stop := make(chan struct{})
	reporterDone := make(chan struct{})
	go func() {
		defer close(reporterDone)
		reportProgress(r.state, r.statsInterval, stop)
	}()

	defer func() {
		close(stop)
		<-reporterDone
		if ctx.Err() != nil {
			gologger.Warning().Msgf("Scan interrupted, saving partial results")
		}
		r.printSummary()
		r.writeResults()
	}()

	var group errgroup.Group
	for id, shard := range shards {
		shard := shard
		worker := scanner.NewWorker(id, r.scanner, r.state, scanner.WorkerOptions{
			Concurrency: r.options.Concurrency,
			ChunkSize:   r.options.ChunkSize,
			ChunkPause:  time.Duration(r.options.ChunkPause) * time.Millisecond,
			OnOutcome:   r.outcomeHandler(id),
		})
		group.Go(func() error {
			return worker.Run(ctx, shard)
		})
	}
	return group.Wait()
}

func (r *Runner) outcomeHandler(worker int) func(outcome result.Outcome) {
	return func(outcome result.Outcome) {
		switch outcome.Kind {
		case result.Hit:
			r.outputWriter.WriteEvent(output.NewResultEvent(outcome, worker), r.options.JSON, r.options.NoColor)
		case result.Miss:
			gologger.Verbose().Msgf("%s", outcome)
		case result.Error:
			gologger.Debug().Msgf("%s", outcome)
		}
	}
}

func (r *Runner) printSummary() {
	au := aurora.NewAurora(!r.options.NoColor)
	discoveries := r.state.Discoveries()

	gologger.Info().Msgf("Scan finished in %s: %s discovered, %d/%d scanned, %d hits",
		r.state.Elapsed().Round(time.Millisecond), au.Green(len(discoveries)).Bold(),
		r.state.Scanned(), r.state.Total(), r.state.Hits())
	for _, url := range discoveries {
		gologger.Info().Msgf("%s", au.Green(url))
	}
}

func (r *Runner) writeResults() {
	filename, err := output.WriteResults(r.options.Output, r.state.Discoveries())
	if err != nil {
		gologger.Error().Msgf("Could not save results: %s", err)
		return
	}
	r.resultFile = filename
	gologger.Info().Msgf("Results saved to %s", filename)
}

// State returns the state of the last Run.
func (r *Runner) State() *result.ScanState {
	return r.state
}

// ResultFile is the file the last Run wrote, empty if writing failed.
func (r *Runner) ResultFile() string {
	return r.resultFile
}

func (r *Runner) Close() {
	if r.scanner != nil {
		r.scanner.Close()
	}
	if r.outputWriter != nil {
		r.outputWriter.Close()
	}
}
