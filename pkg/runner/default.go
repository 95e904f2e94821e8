package runner

import (
	"runtime"

	"github.com/wjlin0/dirScan/pkg/output"
	"github.com/wjlin0/dirScan/pkg/types"
)

const (
	defaultWordlist      = "dirWebList.txt"
	defaultConcurrency   = 50
	defaultTimeout       = 10
	defaultJitterMin     = 100
	defaultJitterMax     = 300
	defaultChunkSize     = 1000
	defaultChunkPause    = 1000
	defaultRateBackoff   = 2000
	defaultStatsInterval = 5
)

// DefaultOptions fills every option left unset from profile, then from the
// package defaults.
func DefaultOptions(options *types.Options, profile *Profile) {
	if profile == nil {
		profile = &Profile{}
	}
	if options.Profile == "" {
		options.Profile = defaultProfile
	}
	if options.Wordlist == "" && !options.Stdin {
		options.Wordlist = defaultWordlist
	}
	if options.Output == "" {
		options.Output = output.DefaultResultFile
	}

	options.Concurrency = firstPositive(options.Concurrency, profile.Concurrency, defaultConcurrency)
	options.Timeout = firstPositive(options.Timeout, profile.Timeout, defaultTimeout)
	options.ChunkSize = firstPositive(options.ChunkSize, profile.ChunkSize, defaultChunkSize)
	options.StatsInterval = firstPositive(options.StatsInterval, profile.StatsInterval, defaultStatsInterval)
	if options.Workers <= 0 {
		options.Workers = profile.Workers
	}
	if options.MaxWorkers <= 0 {
		options.MaxWorkers = profile.MaxWorkers
	}

	jitterMinSet, jitterMaxSet := options.JitterMin >= 0, options.JitterMax >= 0
	if !jitterMinSet {
		options.JitterMin = intOr(profile.JitterMin, defaultJitterMin)
	}
	if !jitterMaxSet {
		options.JitterMax = intOr(profile.JitterMax, defaultJitterMax)
	}
	// a single explicit jitter bound moves the profile's other bound
	if jitterMinSet && !jitterMaxSet && options.JitterMax < options.JitterMin {
		options.JitterMax = options.JitterMin
	}
	if jitterMaxSet && !jitterMinSet && options.JitterMin > options.JitterMax {
		options.JitterMin = options.JitterMax
	}
	if options.ChunkPause < 0 {
		options.ChunkPause = intOr(profile.ChunkPause, defaultChunkPause)
	}
	if options.RateBackoff < 0 {
		options.RateBackoff = intOr(profile.RateBackoff, defaultRateBackoff)
	}

	options.Redirects = options.Redirects || profile.Redirects
	if profile.Soft404 != nil && !*profile.Soft404 && len(options.Soft404Keywords) == 0 {
		options.DisableSoft404 = true
	}
}

// WorkerCount is the number of worker units for a scan: the configured
// count or one per CPU, capped by MaxWorkers.
func WorkerCount(options *types.Options) int {
	workers := options.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if options.MaxWorkers > 0 && workers > options.MaxWorkers {
		workers = options.MaxWorkers
	}
	if workers <= 0 {
		workers = 1
	}
	return workers
}

func firstPositive(values ...int) int {
	for _, value := range values {
		if value > 0 {
			return value
		}
	}
	return 0
}

// intOr returns the profile value when the profile sets it, zero included.
func intOr(value *int, fallback int) int {
	if value != nil && *value >= 0 {
		return *value
	}
	return fallback
}
