package look

import (
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MotionQueue collects pointer deltas between ticks in arrival order.
type MotionQueue struct {
	mu      sync.Mutex
	samples []rl.Vector2
}

func (q *MotionQueue) Push(delta rl.Vector2) {
	if delta.X == 0 && delta.Y == 0 {
		return
	}
	q.mu.Lock()
	q.samples = append(q.samples, delta)
	q.mu.Unlock()
}

// Drain returns every queued sample and empties the queue.
func (q *MotionQueue) Drain() []rl.Vector2 {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.samples
	q.samples = nil
	return out
}

func (q *MotionQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.samples)
}
