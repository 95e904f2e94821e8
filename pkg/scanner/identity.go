package scanner

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/corpix/uarand"
	"github.com/projectdiscovery/retryablehttp-go"
)

// Route is one way out to the target: a direct client or a client bound to
// a single proxy.
type Route struct {
	Proxy  string
	client *retryablehttp.Client
}

// IdentityPool rotates request identities. User agents are picked at random,
// routes round-robin. Both lists are fixed after construction.
type IdentityPool struct {
	userAgents []string
	routes     []*Route
	cursor     atomic.Uint64

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewIdentityPool(userAgents []string, routes []*Route) *IdentityPool {
	return &IdentityPool{
		userAgents: userAgents,
		routes:     routes,
		rnd:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// UserAgent returns a user agent from the configured list, or a random
// browser user agent when the list is empty.
func (p *IdentityPool) UserAgent() string {
	if len(p.userAgents) == 0 {
		return uarand.GetRandom()
	}
	return p.userAgents[p.intn(len(p.userAgents))]
}

// Route returns the next route in rotation.
func (p *IdentityPool) Route() *Route {
	switch len(p.routes) {
	case 0:
		return nil
	case 1:
		return p.routes[0]
	}
	n := p.cursor.Add(1) - 1
	return p.routes[n%uint64(len(p.routes))]
}

func (p *IdentityPool) Routes() int {
	return len(p.routes)
}

// Duration returns a uniform random duration in [min, max].
func (p *IdentityPool) Duration(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(p.int63n(int64(max-min)+1))
}

func (p *IdentityPool) intn(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rnd.Intn(n)
}

func (p *IdentityPool) int63n(n int64) int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rnd.Int63n(n)
}
