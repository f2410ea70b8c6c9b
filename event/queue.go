package event

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-towers/parameter"
)

// Inbox is a lock-free MPSC ring buffer for raw input collected between frames
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK (input goroutines)
//   - Drain: Single consumer (frame loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
type Inbox struct {
	events    [parameter.InboxSize]Event
	published [parameter.InboxSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                    // Read index
	tail      atomic.Uint64                    // Write index
}

func NewInbox() *Inbox {
	return &Inbox{}
}

// Push adds event using lock-free CAS with published flags pattern
func (q *Inbox) Push(ev Event) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.InboxMask

			q.events[idx] = ev
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread events
			currentHead := q.head.Load()
			if nextTail-currentHead > parameter.InboxSize {
				q.head.CompareAndSwap(currentHead, nextTail-parameter.InboxSize)
			}
			return
		}
	}
}

// Drain appends all pending events to dst in FIFO order and advances head
// Stops early at a slot whose writer has not finished; the rest arrive next frame
func (q *Inbox) Drain(dst []Event) []Event {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return dst
		}

		available := currentTail - currentHead
		if available > parameter.InboxSize {
			available = parameter.InboxSize
			currentHead = currentTail - parameter.InboxSize
		}

		start := len(dst)
		for i := uint64(0); i < available; i++ {
			idx := (currentHead + i) & parameter.InboxMask

			if !q.published[idx].Load() {
				break // Writer incomplete
			}

			dst = append(dst, q.events[idx])
			q.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(dst)-start)
		if q.head.CompareAndSwap(currentHead, newHead) {
			return dst
		}
		dst = dst[:start]
	}
}

// Len returns approximate pending event count
func (q *Inbox) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > parameter.InboxSize {
		return parameter.InboxSize
	}
	return diff
}
