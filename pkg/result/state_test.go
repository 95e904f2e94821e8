package result

import (
	"fmt"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanState_Record(t *testing.T) {
	state := NewScanState(4)

	require.True(t, state.Record(NewHit("admin", "http://example.com/admin", 200, 10)))
	require.False(t, state.Record(NewMiss("login", "http://example.com/login", 404, 0)))
	require.False(t, state.Record(NewError("x", "http://example.com/x", Timeout, errors.New("deadline"))))
	// same url again: counted as a hit, stored once
	require.False(t, state.Record(NewHit("admin", "http://example.com/admin", 200, 10)))

	assert.Equal(t, int64(4), state.Scanned())
	assert.Equal(t, int64(4), state.Total())
	assert.Equal(t, int64(2), state.Hits())
	assert.Equal(t, []string{"http://example.com/admin"}, state.Discoveries())
	assert.True(t, state.Done())
	assert.Equal(t, float64(100), state.Percent())
}

func TestScanState_EmptyPercent(t *testing.T) {
	state := NewScanState(0)
	assert.Equal(t, float64(0), state.Percent())
	assert.True(t, state.Done())
	assert.Empty(t, state.Discoveries())
}

func TestScanState_Concurrent(t *testing.T) {
	const workers, perWorker = 8, 500
	state := NewScanState(workers * perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if i%10 == 0 {
					state.Record(NewHit("p", fmt.Sprintf("http://example.com/%d/%d", w, i), 200, 0))
					continue
				}
				state.Record(NewMiss("p", "http://example.com/miss", 404, 0))
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, int64(workers*perWorker), state.Scanned())
	assert.Equal(t, int64(workers*perWorker/10), state.Hits())
	assert.Len(t, state.Discoveries(), workers*perWorker/10)
	assert.LessOrEqual(t, int64(state.Len()), state.Scanned())
}

func TestScanState_DiscoveriesIsCopy(t *testing.T) {
	state := NewScanState(1)
	state.Add("http://example.com/a")
	list := state.Discoveries()
	list[0] = "changed"
	assert.Equal(t, "http://example.com/a", state.Discoveries()[0])
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "http://example.com/a [200]", NewHit("a", "http://example.com/a", 200, 0).String())
	out := NewError("a", "http://example.com/a", NoError, nil)
	assert.Equal(t, Other, out.ErrorKind)
	assert.Equal(t, "http://example.com/a [other]", out.String())
}
