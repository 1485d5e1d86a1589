// Package frame provides a display-refresh callback queue in the style of
// requestAnimationFrame. Hosts call Flush once per refresh.
package frame

// Handle identifies a requested callback. The zero Handle is never issued.
type Handle uint64

// Scheduler requests and cancels per-frame callbacks.
type Scheduler interface {
	Request(fn func()) Handle
	Cancel(h Handle)
}

type entry struct {
	handle Handle
	fn     func()
}

// Queue is a Scheduler driven by explicit Flush calls.
// It is not safe for concurrent use.
type Queue struct {
	last     Handle
	pending  []entry
	inflight []entry
	canceled map[Handle]struct{}
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{canceled: make(map[Handle]struct{})}
}

// Request schedules fn for the next Flush.
func (q *Queue) Request(fn func()) Handle {
	q.last++
	q.pending = append(q.pending, entry{handle: q.last, fn: fn})
	return q.last
}

// Cancel drops a pending callback. Unknown or already-run handles are ignored.
func (q *Queue) Cancel(h Handle) {
	if contains(q.pending, h) || contains(q.inflight, h) {
		q.canceled[h] = struct{}{}
	}
}

func contains(entries []entry, h Handle) bool {
	for _, e := range entries {
		if e.handle == h {
			return true
		}
	}
	return false
}

// Flush runs the callbacks that were pending when it was called and returns
// how many ran. Callbacks requested during the flush wait for the next one.
func (q *Queue) Flush() int {
	batch := q.pending
	q.pending = nil
	q.inflight = batch
	defer func() { q.inflight = nil }()

	ran := 0
	for _, e := range batch {
		if _, dropped := q.canceled[e.handle]; dropped {
			delete(q.canceled, e.handle)
			continue
		}
		e.fn()
		ran++
	}
	return ran
}

// Pending reports callbacks waiting for the next Flush, excluding canceled ones.
func (q *Queue) Pending() int {
	n := 0
	for _, e := range q.pending {
		if _, dropped := q.canceled[e.handle]; !dropped {
			n++
		}
	}
	return n
}
