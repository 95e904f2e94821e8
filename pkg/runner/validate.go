package runner

import (
	"github.com/pkg/errors"
	"github.com/wjlin0/dirScan/pkg/types"
	"github.com/wjlin0/dirScan/pkg/util"
)

// ValidateOptions rejects option combinations the scan cannot run with.
func ValidateOptions(options *types.Options) error {
	if _, err := util.ParseBaseURL(options.URL); err != nil {
		return err
	}
	if options.Verbose && options.Silent {
		return errors.New("both verbose and silent mode specified")
	}
	if options.Concurrency <= 0 {
		return errors.Errorf("invalid concurrency %d", options.Concurrency)
	}
	if options.Timeout <= 0 {
		return errors.Errorf("invalid timeout %d", options.Timeout)
	}
	if options.ChunkSize <= 0 {
		return errors.Errorf("invalid chunk size %d", options.ChunkSize)
	}
	if options.JitterMin < 0 || options.JitterMax < 0 {
		return errors.New("jitter cannot be negative")
	}
	if options.JitterMin > options.JitterMax {
		return errors.Errorf("jitter-min %d is greater than jitter-max %d", options.JitterMin, options.JitterMax)
	}
	if options.ChunkPause < 0 || options.RateBackoff < 0 {
		return errors.New("pauses cannot be negative")
	}
	if options.RateLimit < 0 {
		return errors.Errorf("invalid rate limit %d", options.RateLimit)
	}
	if options.Workers < 0 || options.MaxWorkers < 0 {
		return errors.New("worker counts cannot be negative")
	}
	if options.StatsInterval <= 0 {
		return errors.Errorf("invalid stats interval %d", options.StatsInterval)
	}
	for _, raw := range options.Proxy {
		if _, err := util.ParseProxy(raw); err != nil {
			return err
		}
	}
	if options.ProxyAuth != "" {
		if _, _, ok := util.ParseProxyAuth(options.ProxyAuth); !ok {
			return errors.Errorf("invalid proxy auth %s, expected username:password", options.ProxyAuth)
		}
	}
	return nil
}
