package window

// TickQueue is a single-threaded Scheduler. Callbacks registered with
// AfterNextLayout run on the next call to Tick; callbacks registered while a
// tick is running wait for the tick after that.
//
// The zero value is ready to use. A TickQueue is not safe for concurrent use.
type TickQueue struct {
	queue []func()
}

var _ Scheduler = (*TickQueue)(nil)

// AfterNextLayout queues f for the next tick.
func (q *TickQueue) AfterNextLayout(f func()) {
	if f == nil {
		return
	}
	q.queue = append(q.queue, f)
}

// Tick runs the callbacks queued before this call and returns how many ran.
func (q *TickQueue) Tick() int {
	batch := q.queue
	q.queue = nil
	for _, f := range batch {
		f()
	}
	return len(batch)
}

// Pending returns the number of callbacks waiting for the next tick.
func (q *TickQueue) Pending() int {
	return len(q.queue)
}
