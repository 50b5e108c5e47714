package resolver

import "container/heap"

// Post-process callbacks run in priority order, lowest first, per
// spec.md §9's explicit naming instruction. Identifier/member-access
// binding must happen before the structural passes that depend on it
// (base_functions, linearized_base_contracts); used-event/used-error
// collection runs last since it depends on call-site bindings already
// being in place.
const (
	PriorityIdentifiers = -1
	PriorityStructural  = 0
	PriorityUsedEvents  = 1
)

// Callback is one unit of post-process work: bind an identifier,
// compute a structural link, collect a used-event set, and so on.
type Callback func() error

type queueItem struct {
	priority int
	seq      int // insertion order, for stable ordering within a priority
	fn       Callback
}

type callbackHeap []queueItem

func (h callbackHeap) Len() int { return len(h) }
func (h callbackHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}
func (h callbackHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *callbackHeap) Push(x any) {
	*h = append(*h, x.(queueItem))
}

func (h *callbackHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// PostProcessQueue accumulates callbacks registered during CU ingest
// and drains them in priority order once the whole batch has been
// indexed, matching spec.md §4.3/§4.4's two-phase construction rule:
// IR nodes are built first, then bound.
type PostProcessQueue struct {
	items callbackHeap
	seq   int
}

// NewPostProcessQueue returns an empty queue ready to accept
// registrations.
func NewPostProcessQueue() *PostProcessQueue {
	q := &PostProcessQueue{}
	heap.Init(&q.items)
	return q
}

// Register schedules fn to run at priority once Run is called.
func (q *PostProcessQueue) Register(priority int, fn Callback) {
	q.seq++
	heap.Push(&q.items, queueItem{priority: priority, seq: q.seq, fn: fn})
}

// Run drains every registered callback in priority order, returning
// the first error encountered. Callbacks already popped before the
// failing one have run to completion; Run does not roll them back.
func (q *PostProcessQueue) Run() error {
	for q.items.Len() > 0 {
		item := heap.Pop(&q.items).(queueItem)
		if err := item.fn(); err != nil {
			return err
		}
	}
	return nil
}

// Pending reports how many callbacks remain queued.
func (q *PostProcessQueue) Pending() int {
	return q.items.Len()
}
