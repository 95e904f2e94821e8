package result

import (
	"fmt"
)

// Kind tags a probe outcome.
type Kind int

const (
	Miss Kind = iota
	Hit
	Error
)

func (k Kind) String() string {
	switch k {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	default:
		return "error"
	}
}

// ErrorKind is the failure category of an Error outcome.
type ErrorKind int

const (
	NoError ErrorKind = iota
	Timeout
	ConnectionFailed
	RateLimited
	Other
)

func (e ErrorKind) String() string {
	switch e {
	case NoError:
		return ""
	case Timeout:
		return "timeout"
	case ConnectionFailed:
		return "connection-failed"
	case RateLimited:
		return "rate-limited"
	default:
		return "other"
	}
}

// Outcome is the result of probing one candidate.
type Outcome struct {
	Kind          Kind      `json:"kind"`
	Candidate     string    `json:"candidate"`
	URL           string    `json:"url,omitempty"`
	Status        int       `json:"status,omitempty"`
	ContentLength int       `json:"content-length,omitempty"`
	ErrorKind     ErrorKind `json:"error-kind,omitempty"`
	Cause         error     `json:"-"`
}

func NewHit(candidate, url string, status, length int) Outcome {
	return Outcome{Kind: Hit, Candidate: candidate, URL: url, Status: status, ContentLength: length}
}

func NewMiss(candidate, url string, status, length int) Outcome {
	return Outcome{Kind: Miss, Candidate: candidate, URL: url, Status: status, ContentLength: length}
}

func NewError(candidate, url string, kind ErrorKind, cause error) Outcome {
	if kind == NoError {
		kind = Other
	}
	return Outcome{Kind: Error, Candidate: candidate, URL: url, ErrorKind: kind, Cause: cause}
}

func (o Outcome) IsHit() bool {
	return o.Kind == Hit
}

func (o Outcome) String() string {
	switch o.Kind {
	case Error:
		if o.Cause != nil {
			return fmt.Sprintf("%s [%s] %s", o.URL, o.ErrorKind, o.Cause)
		}
		return fmt.Sprintf("%s [%s]", o.URL, o.ErrorKind)
	default:
		return fmt.Sprintf("%s [%d]", o.URL, o.Status)
	}
}
