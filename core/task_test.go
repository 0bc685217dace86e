package core

import "testing"

func TestTaskQueueSpawnTake(t *testing.T) {
	q := NewTaskQueue()

	if q.TryTake() {
		t.Error("empty queue yielded a task")
	}

	q.Spawn()
	if !q.TryTake() {
		t.Error("queued task not taken")
	}
	if q.TryTake() {
		t.Error("task taken twice")
	}
}

// N spawns (each consumed before the next) run exactly N times.
func TestTaskQueueOnePerSpawn(t *testing.T) {
	q := NewTaskQueue()

	runs := 0
	for i := 0; i < 5; i++ {
		q.Spawn()
		for q.TryTake() {
			runs++
		}
	}
	if runs != 5 {
		t.Errorf("ran %d times, want 5", runs)
	}
}

// Double-enqueue is a design violation: assert, don't drop.
func TestTaskQueueDoubleSpawnFaults(t *testing.T) {
	q := NewTaskQueue()
	q.Spawn()

	defer func() {
		if recover() == nil {
			t.Error("double spawn did not fault")
		}
	}()
	q.Spawn()
}

func TestTaskQueuePendingChannel(t *testing.T) {
	q := NewTaskQueue()
	q.Spawn()

	select {
	case <-q.Pending():
	default:
		t.Error("Pending channel empty after Spawn")
	}
}
