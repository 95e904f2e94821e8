package scanner

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/retryablehttp-go"
	"github.com/wjlin0/dirScan/pkg/types"
	"github.com/wjlin0/dirScan/pkg/util"
	"golang.org/x/net/proxy"
)

// newClient builds the http client used for one route. A nil proxyURL means
// a direct connection honouring the environment proxy settings.
func newClient(options *types.Options, proxyURL *url.URL) (*retryablehttp.Client, error) {
	timeout := time.Duration(options.Timeout) * time.Second
	dialer := &net.Dialer{
		Timeout:   timeout,
		KeepAlive: 30 * time.Second,
	}
	transport := &http.Transport{
		DialContext:         dialer.DialContext,
		MaxIdleConns:        options.Concurrency,
		MaxIdleConnsPerHost: options.Concurrency,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: timeout,
		Proxy:               http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: true,
			MinVersion:         tls.VersionTLS10,
		},
	}
	if proxyURL != nil {
		if err := applyProxy(transport, dialer, proxyURL, options.ProxyAuth); err != nil {
			return nil, err
		}
	}

	httpClient := &http.Client{
		Timeout:       timeout,
		CheckRedirect: getCheckRedirectFunc(options.Redirects),
		Transport:     transport,
	}

	clientOptions := retryablehttp.DefaultOptionsSingle
	clientOptions.RetryMax = 0
	clientOptions.Timeout = timeout
	clientOptions.KillIdleConn = false
	clientOptions.CheckRetry = noRetry
	return retryablehttp.NewWithHTTPClient(httpClient, clientOptions), nil
}

func applyProxy(transport *http.Transport, forward *net.Dialer, proxyURL *url.URL, auth string) error {
	if proxyURL.User == nil && auth != "" {
		username, password, ok := util.ParseProxyAuth(auth)
		if !ok {
			gologger.Error().Msgf("Could not parse proxy auth %s", auth)
		} else {
			proxyURL.User = url.UserPassword(username, password)
		}
	}
	switch proxyURL.Scheme {
	case "http", "https":
		transport.Proxy = http.ProxyURL(proxyURL)
	case "socks5":
		socksDialer, err := proxy.FromURL(proxyURL, forward)
		if err != nil {
			return errors.Wrapf(err, "could not create socks5 dialer for %s", proxyURL.Host)
		}
		transport.Proxy = nil
		if contextDialer, ok := socksDialer.(proxy.ContextDialer); ok {
			transport.DialContext = contextDialer.DialContext
		} else {
			transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
				return socksDialer.Dial(network, addr)
			}
		}
	default:
		return errors.Errorf("unsupported proxy scheme %s", proxyURL.Scheme)
	}
	return nil
}

// getCheckRedirectFunc stops at the first response in redirect mode so the
// 3xx status itself is classified.
func getCheckRedirectFunc(keepRedirects bool) func(req *http.Request, via []*http.Request) error {
	if keepRedirects {
		return func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}
	return nil
}

// noRetry hands every response and error straight back to the caller.
func noRetry(_ context.Context, _ *http.Response, err error) (bool, error) {
	return false, err
}
