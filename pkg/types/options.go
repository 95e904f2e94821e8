package types

import (
	"github.com/projectdiscovery/goflags"
)

type Options struct {
	URL             string              `json:"url"`
	Wordlist        string              `json:"wordlist"`
	Stdin           bool                `json:"stdin"`
	ProxyList       string              `json:"proxy-list"`
	Proxy           goflags.StringSlice `json:"proxy"`
	ProxyAuth       string              `json:"proxy-auth"`
	UserAgentList   string              `json:"ua-list"`
	UserAgent       goflags.StringSlice `json:"user-agent"`
	Header          goflags.StringSlice `json:"header"`
	Cookie          string              `json:"cookie"`
	Authorization   string              `json:"authorization"`
	Concurrency     int                 `json:"concurrency"`
	Workers         int                 `json:"workers"`
	MaxWorkers      int                 `json:"max-workers"`
	Timeout         int                 `json:"timeout"`
	RateLimit       int                 `json:"rate-limit"`
	JitterMin       int                 `json:"jitter-min"`
	JitterMax       int                 `json:"jitter-max"`
	ChunkSize       int                 `json:"chunk-size"`
	ChunkPause      int                 `json:"chunk-pause"`
	RateBackoff     int                 `json:"rate-backoff"`
	Redirects       bool                `json:"redirects"`
	MatchStatus     goflags.StringSlice `json:"match-status"`
	DisableSoft404  bool                `json:"disable-soft404"`
	Soft404Keywords goflags.StringSlice `json:"soft404-keywords"`
	Profile         string              `json:"profile"`
	ProfileFile     string              `json:"profile-file"`
	Output          string              `json:"output"`
	StatsInterval   int                 `json:"stats-interval"`
	JSON            bool                `json:"json"`
	Silent          bool                `json:"silent"`
	NoColor         bool                `json:"no-color"`
	Verbose         bool                `json:"verbose"`
	Debug           bool                `json:"debug"`
	Version         bool                `json:"version"`

	// Candidates, Proxies and UserAgents are filled by the runner from the
	// wordlist, stdin and list files before the scan starts.
	Candidates []string `json:"-"`
	Proxies    []string `json:"-"`
	UserAgents []string `json:"-"`
}

// Unset marks an integer option the profile should fill. Zero is a valid
// jitter, so those options start from Unset instead.
const Unset = -1

func (o *Options) HasProxies() bool {
	return len(o.Proxies) > 0
}

func (o *Options) SoftNotFoundEnabled() bool {
	return !o.DisableSoft404
}
