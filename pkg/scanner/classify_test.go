package scanner

import (
	"sort"
	"testing"

	"github.com/projectdiscovery/goflags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wjlin0/dirScan/pkg/types"
)

func TestPolicy_Classify(t *testing.T) {
	policy := NewPolicy(&types.Options{})

	tests := []struct {
		name   string
		status int
		body   string
		hit    bool
	}{
		{name: "plain 200", status: 200, body: "Welcome admin", hit: true},
		{name: "soft 404 keyword", status: 200, body: "<h1>Page NOT FOUND</h1>", hit: false},
		{name: "soft 404 code in body", status: 200, body: "error 404", hit: false},
		{name: "real 404", status: 404, body: "", hit: false},
		{name: "redirect without redirect mode", status: 301, body: "", hit: false},
		{name: "server error", status: 500, body: "", hit: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.hit, policy.Classify(tt.status, []byte(tt.body)))
			// deterministic
			assert.Equal(t, tt.hit, policy.Classify(tt.status, []byte(tt.body)))
		})
	}
}

func TestPolicy_Redirects(t *testing.T) {
	policy := NewPolicy(&types.Options{Redirects: true})
	for _, status := range []int{200, 301, 302, 307} {
		assert.True(t, policy.Interesting(status), status)
	}
	assert.False(t, policy.Interesting(308))
	// a redirect body is never checked for soft 404 markers
	assert.True(t, policy.Classify(302, []byte("not found")))
}

func TestPolicy_DisableSoft404(t *testing.T) {
	policy := NewPolicy(&types.Options{DisableSoft404: true})
	assert.True(t, policy.Classify(200, []byte("Page Not Found")))
	assert.False(t, policy.NeedsBody(200))
}

func TestPolicy_CustomKeywords(t *testing.T) {
	policy := NewPolicy(&types.Options{Soft404Keywords: goflags.StringSlice{" Nothing Here "}})
	assert.False(t, policy.Classify(200, []byte("nothing here, sorry")))
	assert.True(t, policy.Classify(200, []byte("404 not found")))
}

func TestPolicy_MatchStatus(t *testing.T) {
	policy := NewPolicy(&types.Options{MatchStatus: goflags.StringSlice{"2xx", "403"}})
	statuses := policy.Statuses()
	sort.Ints(statuses)
	require.Len(t, statuses, 101)
	assert.Equal(t, 200, statuses[0])
	assert.Equal(t, 403, statuses[100])
	assert.True(t, policy.Classify(403, []byte("forbidden")))
}

func TestParseStatusCodes(t *testing.T) {
	assert.Equal(t, []int{200}, ParseStatusCodes([]string{"200", "200"}))
	assert.Equal(t, []int{301, 302, 303}, ParseStatusCodes([]string{"303-301"}))
	assert.Len(t, ParseStatusCodes([]string{"5xx"}), 100)
	assert.Empty(t, ParseStatusCodes([]string{"abc", "1-2", "xx", "99", "1000", ""}))
}
