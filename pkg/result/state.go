package result

import (
	"sync"
	"sync/atomic"
	"time"
)

// ScanState is the store shared by every worker of one scan. Counters are
// lock-free; the discovery list is guarded by the embedded mutex.
type ScanState struct {
	sync.RWMutex

	scanned atomic.Int64
	hits    atomic.Int64
	total   int64

	discoveries []string
	seen        map[string]struct{}
	startedAt   time.Time
}

func NewScanState(total int) *ScanState {
	if total < 0 {
		total = 0
	}
	return &ScanState{
		total:     int64(total),
		seen:      make(map[string]struct{}),
		startedAt: time.Now(),
	}
}

// Record applies one probe outcome. Hits are stored before scanned moves so
// a reader never sees more discoveries than scanned candidates.
func (s *ScanState) Record(outcome Outcome) bool {
	added := false
	if outcome.IsHit() {
		s.hits.Add(1)
		added = s.Add(outcome.URL)
	}
	s.IncScanned()
	return added
}

// Add appends url to the discovery list unless it is already there.
func (s *ScanState) Add(url string) bool {
	s.Lock()
	defer s.Unlock()
	if _, ok := s.seen[url]; ok {
		return false
	}
	s.seen[url] = struct{}{}
	s.discoveries = append(s.discoveries, url)
	return true
}

func (s *ScanState) IncScanned() {
	s.scanned.Add(1)
}

func (s *ScanState) Scanned() int64 {
	return s.scanned.Load()
}

func (s *ScanState) Total() int64 {
	return s.total
}

func (s *ScanState) Hits() int64 {
	return s.hits.Load()
}

// Discoveries returns a copy of the discovery list in insertion order.
func (s *ScanState) Discoveries() []string {
	s.RLock()
	defer s.RUnlock()
	out := make([]string, len(s.discoveries))
	copy(out, s.discoveries)
	return out
}

func (s *ScanState) Len() int {
	s.RLock()
	defer s.RUnlock()
	return len(s.discoveries)
}

// Percent is scanned/total as a percentage, 0 for an empty scan.
func (s *ScanState) Percent() float64 {
	if s.total == 0 {
		return 0
	}
	return float64(s.Scanned()) * 100 / float64(s.total)
}

func (s *ScanState) Done() bool {
	return s.Scanned() >= s.total
}

func (s *ScanState) Elapsed() time.Duration {
	return time.Since(s.startedAt)
}
