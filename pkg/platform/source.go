package platform

// EventSource supplies hardware events. NextEvent blocks until an event is
// available and returns false once the source is exhausted or closed.
type EventSource interface {
	NextEvent() (Event, bool)
}

// SourceFunc adapts a function to EventSource.
type SourceFunc func() (Event, bool)

// NextEvent calls f.
func (f SourceFunc) NextEvent() (Event, bool) { return f() }

// Scripted replays a fixed list of events, then reports exhaustion.
type Scripted struct {
	events []Event
	next   int
}

// NewScripted returns a source that yields events in order.
func NewScripted(events ...Event) *Scripted {
	return &Scripted{events: events}
}

// NextEvent returns the next scripted event.
func (s *Scripted) NextEvent() (Event, bool) {
	if s.next >= len(s.events) {
		return Event{}, false
	}
	ev := s.events[s.next]
	s.next++
	return ev, true
}

// Push appends events to the end of the script.
func (s *Scripted) Push(events ...Event) {
	s.events = append(s.events, events...)
}

// Remaining returns the number of events not yet delivered.
func (s *Scripted) Remaining() int {
	return len(s.events) - s.next
}
