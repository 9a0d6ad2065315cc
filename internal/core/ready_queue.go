package core

import "container/heap"

// ReadyHeap is the set of eligible processes ordered by a scheduling key.
// Ties are broken by arrival time and then by input order, so the order is
// total and does not depend on sort stability.
//
// The key of a process must not change while it is in the heap.
type ReadyHeap struct {
	items readyHeap
}

// NewReadyHeap creates a heap where the process with the smallest key is served first.
func NewReadyHeap(key func(*Process) int) *ReadyHeap {
	h := &ReadyHeap{items: readyHeap{key: key}}
	heap.Init(&h.items)
	return h
}

func (h *ReadyHeap) Push(p *Process) {
	heap.Push(&h.items, p)
}

// Pop removes and returns the next process, nil when empty.
func (h *ReadyHeap) Pop() *Process {
	if h.items.Len() == 0 {
		return nil
	}
	return heap.Pop(&h.items).(*Process)
}

func (h *ReadyHeap) Len() int {
	return h.items.Len()
}

type readyHeap struct {
	processes []*Process
	key       func(*Process) int
}

func (h readyHeap) Len() int { return len(h.processes) }

func (h readyHeap) Less(i, j int) bool {
	a, b := h.processes[i], h.processes[j]
	if ka, kb := h.key(a), h.key(b); ka != kb {
		return ka < kb
	}
	if a.Spec.ArrivalTime != b.Spec.ArrivalTime {
		return a.Spec.ArrivalTime < b.Spec.ArrivalTime
	}
	return a.Index < b.Index
}

func (h readyHeap) Swap(i, j int) {
	h.processes[i], h.processes[j] = h.processes[j], h.processes[i]
}

func (h *readyHeap) Push(x interface{}) {
	h.processes = append(h.processes, x.(*Process))
}

func (h *readyHeap) Pop() interface{} {
	old := h.processes
	n := len(old)
	p := old[n-1]
	old[n-1] = nil
	h.processes = old[:n-1]
	return p
}

// FIFOQueue is a first-in first-out ready queue.
type FIFOQueue struct {
	processes []*Process
}

func NewFIFOQueue() *FIFOQueue {
	return &FIFOQueue{processes: make([]*Process, 0)}
}

func (q *FIFOQueue) PushBack(p *Process) {
	q.processes = append(q.processes, p)
}

// PopFront removes and returns the oldest process, nil when empty.
func (q *FIFOQueue) PopFront() *Process {
	if len(q.processes) == 0 {
		return nil
	}
	p := q.processes[0]
	q.processes[0] = nil
	q.processes = q.processes[1:]
	return p
}

func (q *FIFOQueue) Len() int {
	return len(q.processes)
}

// ArrivalFeed releases processes in arrival order as the clock passes their arrival time.
type ArrivalFeed struct {
	pending []*Process
	next    int
}

// NewArrivalFeed expects processes already ordered by arrival time.
func NewArrivalFeed(byArrival []*Process) *ArrivalFeed {
	return &ArrivalFeed{pending: byArrival}
}

// AdmitUntil hands every process with arrival time <= t to admit, in arrival order.
func (f *ArrivalFeed) AdmitUntil(t int, admit func(*Process)) {
	for f.next < len(f.pending) && f.pending[f.next].Spec.ArrivalTime <= t {
		admit(f.pending[f.next])
		f.next++
	}
}

// NextArrival returns the arrival time of the next process not yet admitted.
func (f *ArrivalFeed) NextArrival() (int, bool) {
	if f.next >= len(f.pending) {
		return 0, false
	}
	return f.pending[f.next].Spec.ArrivalTime, true
}
