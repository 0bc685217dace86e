package core

// TaskQueue is a capacity-one run queue for the deferred controller
// exchange. Interrupt handlers Spawn into it; the idle loop consumes it
// at base priority. Only one instance is ever outstanding in this design,
// so a second Spawn before the first ran is a design violation and faults
// rather than silently dropping.
type TaskQueue struct {
	pending chan struct{}
}

// NewTaskQueue creates an empty queue.
func NewTaskQueue() *TaskQueue {
	return &TaskQueue{pending: make(chan struct{}, 1)}
}

// Spawn enqueues one execution. Never blocks; safe from interrupt
// context.
func (q *TaskQueue) Spawn() {
	select {
	case q.pending <- struct{}{}:
	default:
		Fault("controller task already queued")
	}
}

// TryTake consumes one queued execution if present. Never blocks.
func (q *TaskQueue) TryTake() bool {
	select {
	case <-q.pending:
		return true
	default:
		return false
	}
}

// Pending exposes the queue for select-based consumers.
func (q *TaskQueue) Pending() <-chan struct{} {
	return q.pending
}
