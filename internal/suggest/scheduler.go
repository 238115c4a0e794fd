// ABOUTME: Debounced query scheduler: coalesces rapid input into one delayed lookup
// ABOUTME: Timers are sequence numbers so the driver can use tea.Tick without cancellation

package suggest

import (
	"strings"
	"time"
)

// DefaultDelay is the quiet period before a lookup is dispatched.
const DefaultDelay = 200 * time.Millisecond

// Directive tells the driver what to do after a Notify.
type Directive struct {
	// Clear asks for the suggestion list to be cleared now; no timer is armed.
	Clear bool
	// Seq identifies the armed timer; pass it back to Fire when it elapses.
	Seq uint64
	// Delay is how long to wait before calling Fire.
	Delay time.Duration
}

// Scheduler records the latest query and decides which timer fire, if any,
// dispatches a lookup. It does not own a clock.
type Scheduler struct {
	delay  time.Duration
	seq    uint64
	latest string
	fired  bool
}

// NewScheduler returns a scheduler with the given delay; delay <= 0 uses
// DefaultDelay.
func NewScheduler(delay time.Duration) *Scheduler {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Scheduler{delay: delay}
}

// Notify records query as the latest input and re-arms the timer. Every call
// supersedes all earlier timers. An empty query clears immediately.
func (s *Scheduler) Notify(query string) Directive {
	s.seq++
	s.latest = strings.TrimSpace(query)
	s.fired = false
	if s.latest == "" {
		return Directive{Clear: true, Seq: s.seq}
	}
	return Directive{Seq: s.seq, Delay: s.delay}
}

// Fire is called when the timer identified by seq elapses. It returns the
// query to look up only for the most recent timer, and only once.
func (s *Scheduler) Fire(seq uint64) (string, bool) {
	if seq != s.seq || s.fired || s.latest == "" {
		return "", false
	}
	s.fired = true
	return s.latest, true
}

// IsCurrent reports whether results for query may still be applied.
func (s *Scheduler) IsCurrent(query string) bool {
	return s.latest != "" && query == s.latest
}

// Invalidate drops the pending timer and marks every in-flight lookup stale.
// Used when the list is dismissed or the input is submitted.
func (s *Scheduler) Invalidate() {
	s.seq++
	s.latest = ""
	s.fired = false
}

// Latest returns the most recently notified query, trimmed.
func (s *Scheduler) Latest() string {
	return s.latest
}

// Delay returns the debounce delay.
func (s *Scheduler) Delay() time.Duration {
	return s.delay
}

// Apply installs items into l if query is still current. Stale results leave
// l untouched and yield a None event.
func Apply(s *Scheduler, l *List, query string, items []Suggestion) Event {
	if !s.IsCurrent(query) {
		return Event{Kind: None, Index: -1}
	}
	return l.Replace(items)
}
