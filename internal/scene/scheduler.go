package scene

import "sort"

// Scheduler runs delayed single-shot actions on simulation ticks.
//
// Each key holds at most one pending action: arming a key that is already
// pending replaces the old action, so a self-rescheduling timer can never
// fan out into several chains.
type Scheduler struct {
	now     int
	pending map[string]task
	seq     int
}

type task struct {
	due int
	seq int
	fn  func()
}

// NewScheduler creates an empty scheduler at tick 0.
func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[string]task)}
}

// After arms key to run fn once, ticks ticks from now. Values below one are
// treated as one so an action never runs inside the tick that armed it.
func (s *Scheduler) After(key string, ticks int, fn func()) {
	if ticks < 1 {
		ticks = 1
	}
	s.seq++
	s.pending[key] = task{due: s.now + ticks, seq: s.seq, fn: fn}
}

// Cancel drops the pending action for key. Reports whether one existed.
func (s *Scheduler) Cancel(key string) bool {
	_, ok := s.pending[key]
	delete(s.pending, key)
	return ok
}

// Len returns the number of armed actions.
func (s *Scheduler) Len() int {
	return len(s.pending)
}

// Now returns the current tick.
func (s *Scheduler) Now() int {
	return s.now
}

// Clear drops every pending action and rewinds the clock.
func (s *Scheduler) Clear() {
	clear(s.pending)
	s.now = 0
}

// Advance moves the clock one tick and runs every action that became due,
// in the order they were armed. Actions may re-arm their own key.
func (s *Scheduler) Advance() int {
	s.now++

	type due struct {
		key string
		task
	}
	var ready []due
	for k, t := range s.pending {
		if t.due <= s.now {
			ready = append(ready, due{key: k, task: t})
		}
	}
	sort.Slice(ready, func(i, j int) bool { return ready[i].seq < ready[j].seq })

	for _, d := range ready {
		// Skip if an earlier action replaced or cancelled this one.
		if cur, ok := s.pending[d.key]; !ok || cur.seq != d.seq {
			continue
		}
		delete(s.pending, d.key)
		d.fn()
	}
	return len(ready)
}
