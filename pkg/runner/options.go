package runner

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/formatter"
	"github.com/projectdiscovery/gologger/levels"
	fileutil "github.com/projectdiscovery/utils/file"
	"github.com/wjlin0/dirScan/pkg/types"
)

func ParserOptions() *types.Options {
	options := &types.Options{}

	set := goflags.NewFlagSet()
	set.SetDescription(fmt.Sprintf("dirScan %s concurrent web directory scanner", Version))
	set.CreateGroup("Input", "Input",
		set.StringVarP(&options.URL, "url", "u", "", "base url to scan (also accepted as the first argument)"),
		set.StringVarP(&options.Wordlist, "wordlist", "w", "", fmt.Sprintf("candidate path list (default %s)", defaultWordlist)),
		set.BoolVar(&options.Stdin, "stdin", false, "read additional candidates from stdin"),
	)
	set.CreateGroup("Identity", "Identity",
		set.StringVarP(&options.ProxyList, "proxy-list", "pl", "", "file with one proxy per line (http, https, socks5)"),
		set.StringSliceVarP(&options.Proxy, "proxy", "p", nil, "proxies to rotate through (comma separated)", goflags.CommaSeparatedStringSliceOptions),
		set.StringVar(&options.ProxyAuth, "proxy-auth", "", "proxy credentials username:password"),
		set.StringVar(&options.UserAgentList, "ua-list", "", "file with one user agent per line"),
		set.StringSliceVarP(&options.UserAgent, "user-agent", "ua", nil, "user agents to rotate through", goflags.StringSliceOptions),
		set.StringSliceVarP(&options.Header, "header", "H", nil, "custom header 'Name: Value' (file or repeated flag)", goflags.FileStringSliceOptions),
		set.StringVar(&options.Cookie, "cookie", "", "cookie header value"),
		set.StringVarP(&options.Authorization, "authorization", "auth", "", "authorization header value"),
	)
	set.CreateGroup("Rate", "Rate",
		set.StringVar(&options.Profile, "profile", defaultProfile, "scan profile (default, fast, stealth, careful)"),
		set.StringVar(&options.ProfileFile, "profile-file", "", "yaml file with extra scan profiles"),
		set.IntVarP(&options.Concurrency, "concurrency", "c", 0, "in-flight probes per worker"),
		set.IntVarP(&options.Workers, "workers", "W", 0, "worker units (default one per cpu)"),
		set.IntVar(&options.MaxWorkers, "max-workers", 0, "upper bound for worker units"),
		set.IntVar(&options.Timeout, "timeout", 0, "request timeout in seconds"),
		set.IntVarP(&options.RateLimit, "rate-limit", "rl", 0, "maximum requests per second (0 = unlimited)"),
		set.IntVar(&options.JitterMin, "jitter-min", types.Unset, "minimum delay before each request in ms"),
		set.IntVar(&options.JitterMax, "jitter-max", types.Unset, "maximum delay before each request in ms"),
		set.IntVar(&options.ChunkSize, "chunk-size", 0, "candidates per chunk"),
		set.IntVar(&options.ChunkPause, "chunk-pause", types.Unset, "pause between chunks in ms"),
		set.IntVar(&options.RateBackoff, "rate-backoff", types.Unset, "sleep after a 429 response in ms"),
	)
	set.CreateGroup("Matcher", "Matcher",
		set.BoolVar(&options.Redirects, "redirects", false, "report 301, 302 and 307 responses and stop following redirects"),
		set.StringSliceVarP(&options.MatchStatus, "match-status", "mc", nil, "interesting status codes (supports 2xx, 300-399)", goflags.FileNormalizedStringSliceOptions),
		set.BoolVar(&options.DisableSoft404, "disable-soft404", false, "do not check 200 bodies for not found markers"),
		set.StringSliceVar(&options.Soft404Keywords, "soft404-keywords", nil, "markers of a soft 404 body (default 404, not found)", goflags.CommaSeparatedStringSliceOptions),
	)
	set.CreateGroup("Output", "Output",
		set.StringVarP(&options.Output, "output", "o", "", "result file base name"),
		set.IntVar(&options.StatsInterval, "stats-interval", 0, "seconds between progress lines"),
		set.BoolVar(&options.JSON, "json", false, "print discoveries as json lines"),
		set.BoolVar(&options.Silent, "silent", false, "print discoveries only"),
		set.BoolVarP(&options.NoColor, "no-color", "nc", false, "disable colored output"),
		set.BoolVarP(&options.Verbose, "verbose", "v", false, "also log misses"),
		set.BoolVar(&options.Debug, "debug", false, "also log probe errors"),
		set.BoolVar(&options.Version, "version", false, "print version and exit"),
	)

	set.SetConfigFilePath(DefaultDirScanConfig)

	if err := set.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not parse flags: %s", err)
	}

	// config output
	ConfigureOutput(options)

	if options.Version {
		gologger.Info().Msgf("dirScan v%s", Version)
		os.Exit(0)
	}

	// show banner
	if !options.Silent && !options.JSON {
		showBanner()
	}

	if options.URL == "" && set.CommandLine.NArg() > 0 {
		options.URL = set.CommandLine.Arg(0)
	}
	if options.URL == "" {
		if options.Stdin || fileutil.HasStdin() {
			gologger.Fatal().Msgf("No base url given, use -u when piping candidates")
		}
		options.URL = promptBaseURL()
	}

	profiles, err := LoadProfiles(options.ProfileFile)
	if err != nil {
		gologger.Fatal().Msgf("Could not load profiles: %s", err)
	}
	profile, ok := profiles[options.Profile]
	if !ok {
		gologger.Fatal().Msgf("Unknown profile %s, available: %s", options.Profile, strings.Join(ProfileNames(profiles), ", "))
	}

	// set default options
	DefaultOptions(options, profile)

	// validate options
	if err := ValidateOptions(options); err != nil {
		gologger.Fatal().Msgf("Options validation error: %s", err)
	}

	return options
}

func ConfigureOutput(options *types.Options) {
	gologger.DefaultLogger.SetFormatter(newTimestampFormatter(formatter.NewCLI(options.NoColor)))
	if options.Silent || options.JSON {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	}
	if options.Debug {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelDebug)
	}
	if options.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	if options.NoColor {
		color.NoColor = true
	}
}

func promptBaseURL() string {
	fmt.Fprint(os.Stderr, "Enter the base URL: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		gologger.Fatal().Msgf("Could not read base url: %s", err)
	}
	return strings.TrimSpace(line)
}
