package search

// openQueue is the A* frontier ordered by f, then h, then insertion order.
type openQueue []*record

func (queue openQueue) Len() int { return len(queue) }

func (queue openQueue) Less(i, j int) bool {
	a, b := queue[i], queue[j]
	if a.f() != b.f() {
		return a.f() < b.f()
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

func (queue openQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].index = i
	queue[j].index = j
}

func (queue *openQueue) Push(x any) {
	rec := x.(*record)
	rec.index = len(*queue)
	*queue = append(*queue, rec)
}

func (queue *openQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	rec := oldQueue[n-1]
	oldQueue[n-1] = nil
	rec.index = -1
	*queue = oldQueue[:n-1]
	return rec
}
