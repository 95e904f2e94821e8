package util

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
	stringsutil "github.com/projectdiscovery/utils/strings"
)

// ParseHeaders turns "Name: Value" lines into a header map. Lines without
// a colon are skipped.
func ParseHeaders(lines []string) map[string]string {
	headers := make(map[string]string)
	for _, line := range lines {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		headers[name] = strings.TrimSpace(value)
	}
	return headers
}

// ParseProxyAuth splits "username:password".
func ParseProxyAuth(auth string) (string, string, bool) {
	parts := strings.SplitN(auth, ":", 2)
	if len(parts) != 2 || parts[0] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// ParseProxy parses a proxy entry. Entries without a scheme are treated as
// http proxies, socks5h is accepted as an alias of socks5.
func ParseProxy(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("empty proxy")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	proxyURL, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid proxy %s", raw)
	}
	if proxyURL.Host == "" {
		return nil, errors.Errorf("invalid proxy %s: missing host", raw)
	}
	switch strings.ToLower(proxyURL.Scheme) {
	case "http", "https", "socks5":
		proxyURL.Scheme = strings.ToLower(proxyURL.Scheme)
	case "socks5h":
		proxyURL.Scheme = "socks5"
	default:
		return nil, errors.Errorf("unsupported proxy scheme %s", proxyURL.Scheme)
	}
	return proxyURL, nil
}

// ParseBaseURL validates the scan base. Only http and https origins are
// accepted.
func ParseBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("no base url given")
	}
	if !stringsutil.HasPrefixAny(strings.ToLower(raw), "http://", "https://") {
		return nil, errors.Errorf("base url %s must start with http:// or https://", raw)
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base url %s", raw)
	}
	if base.Host == "" {
		return nil, errors.Errorf("base url %s has no host", raw)
	}
	return base, nil
}
