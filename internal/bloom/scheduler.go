package bloom

import "sync"

// Scheduler defers a tick to the next display refresh.
type Scheduler interface {
	ScheduleNext(tick func())
	Cancel()
}

// FrameScheduler holds at most one pending tick. The display loop calls Fire
// once per refresh.
type FrameScheduler struct {
	mu      sync.Mutex
	pending func()
}

func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

func (s *FrameScheduler) ScheduleNext(tick func()) {
	s.mu.Lock()
	s.pending = tick
	s.mu.Unlock()
}

func (s *FrameScheduler) Cancel() {
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()
}

// Pending reports whether a tick is waiting for the next refresh.
func (s *FrameScheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// Fire runs the pending tick, if any. The tick runs without the lock held so
// it can schedule its successor.
func (s *FrameScheduler) Fire() bool {
	s.mu.Lock()
	tick := s.pending
	s.pending = nil
	s.mu.Unlock()

	if tick == nil {
		return false
	}
	tick()
	return true
}
