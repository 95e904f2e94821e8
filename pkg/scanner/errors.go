package scanner

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"net"
	"strings"

	"github.com/pkg/errors"
	stringsutil "github.com/projectdiscovery/utils/strings"
	"github.com/wjlin0/dirScan/pkg/result"
)

// classifyError maps a transport error onto the probe error taxonomy. The
// http client does not always keep the error chain intact, so the message is
// checked as a fallback.
func classifyError(err error) result.ErrorKind {
	if err == nil {
		return result.NoError
	}
	msg := strings.ToLower(err.Error())
	if stringsutil.ContainsAny(msg, "too many requests") {
		return result.RateLimited
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return result.Timeout
	}
	if stringsutil.ContainsAny(msg, "timeout", "deadline exceeded") {
		return result.Timeout
	}

	var (
		dnsErr    *net.DNSError
		opErr     *net.OpError
		recordErr tls.RecordHeaderError
		unknownCA x509.UnknownAuthorityError
		hostErr   x509.HostnameError
	)
	switch {
	case errors.As(err, &dnsErr), errors.As(err, &opErr), errors.As(err, &recordErr),
		errors.As(err, &unknownCA), errors.As(err, &hostErr):
		return result.ConnectionFailed
	case stringsutil.ContainsAny(msg, "connection refused", "connection reset", "no such host",
		"tls:", "x509:", "eof", "dial tcp", "proxyconnect", "socks", "network is unreachable",
		"broken pipe", "server misbehaving"):
		return result.ConnectionFailed
	}
	return result.Other
}
