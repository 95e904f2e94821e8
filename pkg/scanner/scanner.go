package scanner

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/ratelimit"
	"github.com/projectdiscovery/retryablehttp-go"
	"github.com/wjlin0/dirScan/pkg/result"
	"github.com/wjlin0/dirScan/pkg/types"
	"github.com/wjlin0/dirScan/pkg/util"
)

const maxBodySize = 4 << 20

var defaultHeaders = map[string]string{
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.5",
	"Connection":      "keep-alive",
}

// Scanner probes candidates against one base URL. It is safe for concurrent
// use; all of its fields are read-only once NewScanner returns.
type Scanner struct {
	base        *url.URL
	options     *types.Options
	policy      *Policy
	identities  *IdentityPool
	rateLimiter *ratelimit.Limiter
	headers     map[string]string

	timeout     time.Duration
	jitterMin   time.Duration
	jitterMax   time.Duration
	rateBackoff time.Duration
}

func NewScanner(options *types.Options) (*Scanner, error) {
	base, err := util.ParseBaseURL(options.URL)
	if err != nil {
		return nil, err
	}

	var routes []*Route
	for _, raw := range options.Proxies {
		proxyURL, err := util.ParseProxy(raw)
		if err != nil {
			gologger.Warning().Msgf("Skipping proxy: %s", err)
			continue
		}
		client, err := newClient(options, proxyURL)
		if err != nil {
			gologger.Warning().Msgf("Skipping proxy %s: %s", proxyURL.Host, err)
			continue
		}
		routes = append(routes, &Route{Proxy: proxyURL.Redacted(), client: client})
	}
	if len(options.Proxies) > 0 && len(routes) == 0 {
		return nil, errors.New("no usable proxy in proxy list")
	}
	if len(routes) == 0 {
		client, err := newClient(options, nil)
		if err != nil {
			return nil, err
		}
		routes = append(routes, &Route{client: client})
	}

	headers := make(map[string]string, len(defaultHeaders))
	for k, v := range defaultHeaders {
		headers[k] = v
	}
	for k, v := range util.ParseHeaders(options.Header) {
		headers[k] = v
	}
	if options.Cookie != "" {
		headers["Cookie"] = options.Cookie
	}
	if options.Authorization != "" {
		headers["Authorization"] = options.Authorization
	}

	scanner := &Scanner{
		base:        base,
		options:     options,
		policy:      NewPolicy(options),
		identities:  NewIdentityPool(options.UserAgents, routes),
		headers:     headers,
		timeout:     time.Duration(options.Timeout) * time.Second,
		jitterMin:   time.Duration(options.JitterMin) * time.Millisecond,
		jitterMax:   time.Duration(options.JitterMax) * time.Millisecond,
		rateBackoff: time.Duration(options.RateBackoff) * time.Millisecond,
	}
	if options.RateLimit > 0 {
		scanner.rateLimiter = ratelimit.New(context.Background(), uint(options.RateLimit), time.Second)
	}
	return scanner, nil
}

func (scanner *Scanner) Close() {
	if scanner.rateLimiter != nil {
		scanner.rateLimiter.Stop()
	}
}

func (scanner *Scanner) Policy() *Policy {
	return scanner.policy
}

func (scanner *Scanner) Identities() *IdentityPool {
	return scanner.identities
}

// TargetURL resolves candidate against the base URL the way a browser
// resolves a relative link.
func (scanner *Scanner) TargetURL(candidate string) (string, error) {
	candidate = strings.TrimSpace(candidate)
	ref, err := url.Parse(candidate)
	if err != nil {
		// wordlists carry literal percent signs such as "100%"
		if ref, err = url.Parse(escapeStrayPercent(candidate)); err != nil {
			return "", errors.Wrapf(err, "invalid candidate %q", candidate)
		}
	}
	return scanner.base.ResolveReference(ref).String(), nil
}

// escapeStrayPercent rewrites every '%' that does not start a valid escape
// sequence as "%25".
func escapeStrayPercent(s string) string {
	builder := &strings.Builder{}
	builder.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && !(i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2])) {
			builder.WriteString("%25")
			continue
		}
		builder.WriteByte(s[i])
	}
	return builder.String()
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		return true
	}
	return false
}

// Probe issues one GET for candidate and classifies the response. Errors
// never escape: they come back as Error outcomes.
func (scanner *Scanner) Probe(candidate string) result.Outcome {
	target, err := scanner.TargetURL(candidate)
	if err != nil {
		return result.NewError(candidate, candidate, result.Other, err)
	}

	if scanner.jitterMax > 0 {
		time.Sleep(scanner.identities.Duration(scanner.jitterMin, scanner.jitterMax))
	}
	if scanner.rateLimiter != nil {
		scanner.rateLimiter.Take()
	}

	// in-flight requests are bounded by their own timeout, not by scan
	// cancellation
	ctx, cancel := context.WithTimeout(context.Background(), scanner.timeout)
	defer cancel()

	request, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return result.NewError(candidate, target, result.Other, err)
	}
	for k, v := range scanner.headers {
		request.Header.Set(k, v)
	}
	request.Header.Set("User-Agent", scanner.identities.UserAgent())

	route := scanner.identities.Route()
	resp, err := route.client.Do(request)
	if err != nil {
		kind := classifyError(err)
		if kind == result.RateLimited {
			scanner.backoff(target)
		}
		return result.NewError(candidate, target, kind, err)
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	if resp.StatusCode == http.StatusTooManyRequests {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		scanner.backoff(target)
		return result.NewError(candidate, target, result.RateLimited, errors.New(http.StatusText(resp.StatusCode)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil && scanner.policy.NeedsBody(resp.StatusCode) {
		return result.NewError(candidate, target, classifyError(err), err)
	}
	if scanner.policy.Classify(resp.StatusCode, body) {
		return result.NewHit(candidate, target, resp.StatusCode, len(body))
	}
	return result.NewMiss(candidate, target, resp.StatusCode, len(body))
}

func (scanner *Scanner) backoff(target string) {
	gologger.Warning().Msgf("Rate limited on %s, backing off %s", target, scanner.rateBackoff)
	if scanner.rateBackoff > 0 {
		time.Sleep(scanner.rateBackoff)
	}
}
