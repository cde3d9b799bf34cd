package orders

import "errors"

// ErrEmptyQueue is returned by Dequeue when nothing is pending.
var ErrEmptyQueue = errors.New("order queue is empty")

// Queue is a strict FIFO of pending orders backed by a slice with a moving
// head. It is not safe for concurrent use.
type Queue struct {
	items []*Order
	head  int
}

func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends order at the back.
func (q *Queue) Enqueue(order *Order) {
	q.items = append(q.items, order)
}

// Dequeue removes and returns the oldest order.
func (q *Queue) Dequeue() (*Order, error) {
	if q.Len() == 0 {
		return nil, ErrEmptyQueue
	}
	order := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	q.compact()
	return order, nil
}

// Peek returns the oldest order without removing it.
func (q *Queue) Peek() (*Order, bool) {
	if q.Len() == 0 {
		return nil, false
	}
	return q.items[q.head], true
}

func (q *Queue) Len() int {
	return len(q.items) - q.head
}

// Clear drops every pending order.
func (q *Queue) Clear() {
	q.items = nil
	q.head = 0
}

// compact releases the consumed prefix once it dominates the backing slice.
func (q *Queue) compact() {
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
		return
	}
	if q.head > 32 && q.head*2 >= len(q.items) {
		remaining := copy(q.items, q.items[q.head:])
		for i := remaining; i < len(q.items); i++ {
			q.items[i] = nil
		}
		q.items = q.items[:remaining]
		q.head = 0
	}
}
