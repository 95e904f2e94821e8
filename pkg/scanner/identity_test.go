package scanner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIdentityPool_RouteRoundRobin(t *testing.T) {
	routes := []*Route{{Proxy: "a"}, {Proxy: "b"}, {Proxy: "c"}}
	pool := NewIdentityPool(nil, routes)

	var got []string
	for i := 0; i < 6; i++ {
		got = append(got, pool.Route().Proxy)
	}
	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c"}, got)
}

func TestIdentityPool_UserAgent(t *testing.T) {
	pool := NewIdentityPool([]string{"ua-1", "ua-2"}, nil)
	for i := 0; i < 20; i++ {
		assert.Contains(t, []string{"ua-1", "ua-2"}, pool.UserAgent())
	}

	random := NewIdentityPool(nil, nil)
	assert.NotEmpty(t, random.UserAgent())
}

func TestIdentityPool_Duration(t *testing.T) {
	pool := NewIdentityPool(nil, nil)
	min, max := 100*time.Millisecond, 300*time.Millisecond
	for i := 0; i < 100; i++ {
		d := pool.Duration(min, max)
		assert.GreaterOrEqual(t, d, min)
		assert.LessOrEqual(t, d, max)
	}
	assert.Equal(t, min, pool.Duration(min, min))
}
