package input

import "sync"

// EventKind discriminates queued pointer events
type EventKind int

const (
	EventPointerMove EventKind = iota
	EventWheel
	EventResize
)

// Event is one queued pointer/wheel/resize event. Fields are interpreted per
// kind: pointer moves carry deltas in pixels, wheel events the scroll delta in
// Y, resizes the new framebuffer size in X/Y.
type Event struct {
	Kind EventKind
	X    float64
	Y    float64
}

// Queue collects GLFW callback events so the frame driver can drain them once
// at the start of each tick. Applying events in arrival order makes input
// handling deterministic within a frame regardless of callback timing.
type Queue struct {
	mu     sync.Mutex
	events []Event

	// pointer tracking for delta computation
	haveLast     bool
	lastX, lastY float64
}

// NewQueue creates an empty event queue
func NewQueue() *Queue {
	return &Queue{events: make([]Event, 0, 64)}
}

// PushPointer records a pointer position sample, queueing the delta from the
// previous sample. The first sample after ResetPointer establishes the
// reference and queues nothing (avoids the large jump when dragging starts).
func (q *Queue) PushPointer(x, y float64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.haveLast {
		q.haveLast = true
		q.lastX, q.lastY = x, y
		return
	}
	q.events = append(q.events, Event{Kind: EventPointerMove, X: x - q.lastX, Y: y - q.lastY})
	q.lastX, q.lastY = x, y
}

// ResetPointer forgets the last pointer sample so the next one queues no delta
func (q *Queue) ResetPointer() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.haveLast = false
}

// PushWheel records a scroll event
func (q *Queue) PushWheel(deltaY float64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, Event{Kind: EventWheel, Y: deltaY})
}

// PushResize records a framebuffer resize
func (q *Queue) PushResize(width, height int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, Event{Kind: EventResize, X: float64(width), Y: float64(height)})
}

// Drain calls fn for every queued event in arrival order and clears the queue
func (q *Queue) Drain(fn func(Event)) {
	q.mu.Lock()
	pending := q.events
	q.events = make([]Event, 0, cap(pending))
	q.mu.Unlock()

	for _, ev := range pending {
		fn(ev)
	}
}

// Len returns the number of queued events
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
