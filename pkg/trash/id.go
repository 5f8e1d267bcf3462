package trash

import (
	"sync"
	"time"
)

// IDLayout is the time layout of a timestamp id
const IDLayout = "20060102150405"

// IDSource produces timestamp ids from a clock
type IDSource struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

// NewIDSource creates an id source. A nil clock means time.Now.
func NewIDSource(now func() time.Time) *IDSource {
	if now == nil {
		now = time.Now
	}
	return &IDSource{now: now}
}

// Next returns the id for the current instant. When the clock steps back the
// previous id is repeated.
func (s *IDSource) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.now().Local()
	if t.Before(s.last) {
		t = s.last
	}
	s.last = t
	return t.Format(IDLayout)
}

// ParseID converts an id back to a local time
func ParseID(id string) (time.Time, error) {
	return time.ParseInLocation(IDLayout, id, time.Local)
}
