package scanner

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	sliceutil "github.com/projectdiscovery/utils/slice"
	stringsutil "github.com/projectdiscovery/utils/strings"
	"github.com/wjlin0/dirScan/pkg/types"
)

var (
	defaultStatuses       = []int{http.StatusOK}
	redirectStatuses      = []int{http.StatusMovedPermanently, http.StatusFound, http.StatusTemporaryRedirect}
	DefaultSoft404Markers = []string{"404", "not found"}
)

// Policy decides whether a response is a Hit.
type Policy struct {
	statuses map[int]struct{}
	soft404  bool
	markers  []string
}

func NewPolicy(options *types.Options) *Policy {
	statuses := defaultStatuses
	if len(options.MatchStatus) > 0 {
		statuses = ParseStatusCodes(options.MatchStatus)
	}
	if options.Redirects {
		statuses = append(append([]int{}, statuses...), redirectStatuses...)
	}
	markers := DefaultSoft404Markers
	if len(options.Soft404Keywords) > 0 {
		markers = nil
		for _, keyword := range options.Soft404Keywords {
			if keyword = strings.ToLower(strings.TrimSpace(keyword)); keyword != "" {
				markers = append(markers, keyword)
			}
		}
	}
	policy := &Policy{
		statuses: make(map[int]struct{}),
		soft404:  options.SoftNotFoundEnabled() && len(markers) > 0,
		markers:  markers,
	}
	for _, status := range statuses {
		policy.statuses[status] = struct{}{}
	}
	return policy
}

func (p *Policy) Interesting(status int) bool {
	_, ok := p.statuses[status]
	return ok
}

// NeedsBody reports whether Classify looks at the body for this status.
func (p *Policy) NeedsBody(status int) bool {
	return p.soft404 && status == http.StatusOK
}

// Classify reports a Hit for an interesting status, unless a 200 body reads
// like a "not found" page.
func (p *Policy) Classify(status int, body []byte) bool {
	if !p.Interesting(status) {
		return false
	}
	if p.NeedsBody(status) {
		return !stringsutil.ContainsAny(string(bytes.ToLower(body)), p.markers...)
	}
	return true
}

// Statuses returns the interesting statuses, unordered.
func (p *Policy) Statuses() []int {
	statuses := make([]int, 0, len(p.statuses))
	for status := range p.statuses {
		statuses = append(statuses, status)
	}
	return statuses
}

// ParseStatusCodes expands status expressions such as 200, 5xx and 300-399.
// Malformed entries are ignored.
func ParseStatusCodes(statusSlice []string) []int {
	var statusIntSlice []int

	for _, status := range statusSlice {
		status = strings.ToLower(strings.TrimSpace(status))
		if status == "" {
			continue
		}
		if strings.Contains(status, "-") && !strings.Contains(status, "xx") {
			split := strings.Split(status, "-")
			if len(split) != 2 {
				continue
			}
			minStatus, err := strconv.Atoi(strings.TrimSpace(split[0]))
			if err != nil {
				continue
			}
			maxStatus, err := strconv.Atoi(strings.TrimSpace(split[1]))
			if err != nil {
				continue
			}
			if minStatus > maxStatus {
				minStatus, maxStatus = maxStatus, minStatus
			}
			if minStatus < 100 || maxStatus > 999 {
				continue
			}
			for i := minStatus; i <= maxStatus; i++ {
				statusIntSlice = append(statusIntSlice, i)
			}
			continue
		}
		if strings.HasSuffix(status, "xx") && len(status) == 3 {
			if class, _ := strconv.Atoi(status[:1]); class != 0 {
				for i := class * 100; i < class*100+100; i++ {
					statusIntSlice = append(statusIntSlice, i)
				}
			}
			continue
		}
		if code, _ := strconv.Atoi(status); code >= 100 && code <= 999 {
			statusIntSlice = append(statusIntSlice, code)
		}
	}
	return sliceutil.Dedupe(statusIntSlice)
}
