package schedulers

import (
	"container/heap"

	"cpu-scheduler/internal/core"
)

// roundRobinEntry is a process waiting for the CPU with the burst it still needs.
type roundRobinEntry struct {
	process   core.Process
	remaining int
}

// processQueue is the FIFO ready queue used by round robin.
type processQueue struct {
	queue []*roundRobinEntry
}

func newProcessQueue() *processQueue {
	return &processQueue{queue: make([]*roundRobinEntry, 0)}
}

func (p *processQueue) AddToEnd(entry *roundRobinEntry) {
	p.queue = append(p.queue, entry)
}

func (p *processQueue) RemoveFromTop() (*roundRobinEntry, bool) {
	if len(p.queue) > 0 {
		item := p.queue[0]
		p.queue[0] = nil
		p.queue = p.queue[1:]
		return item, true
	}
	return nil, false
}

func (p *processQueue) Len() int { return len(p.queue) }

// shortestJobQueue is a min-heap of arrived processes ordered by burst,
// then arrival, then input position.
type shortestJobQueue []arrivalEntry

func (q shortestJobQueue) Len() int { return len(q) }
func (q shortestJobQueue) Less(i, j int) bool {
	a, b := q[i], q[j]
	if a.process.BurstTime != b.process.BurstTime {
		return a.process.BurstTime < b.process.BurstTime
	}
	if a.process.ArrivalTime != b.process.ArrivalTime {
		return a.process.ArrivalTime < b.process.ArrivalTime
	}
	return a.index < b.index
}
func (q shortestJobQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *shortestJobQueue) Push(x interface{}) {
	*q = append(*q, x.(arrivalEntry))
}

func (q *shortestJobQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[0 : n-1]
	return item
}

func (q *shortestJobQueue) AddJob(entry arrivalEntry) {
	heap.Push(q, entry)
}

func (q *shortestJobQueue) NextJob() arrivalEntry {
	return heap.Pop(q).(arrivalEntry)
}
