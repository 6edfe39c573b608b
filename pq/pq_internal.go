package pq

// parent returns the index of the parent of the entry at index i, which must not be the root.
func parent(i int) int {
	return (i - 1) / 2
}

// less reports whether the entry at index i has a lower priority than the entry at index j.
func (p *PriorityQueue[V, P]) less(i, j int) bool {
	return p.heap.Get(i).Priority < p.heap.Get(j).Priority
}

func (p *PriorityQueue[V, P]) swap(i, j int) {
	a, b := p.heap.Get(i), p.heap.Get(j)

	p.heap.Set(i, b)
	p.heap.Set(j, a)
}

// siftUp moves the entry at index i towards the root until its parent has a lower or equal priority.
func (p *PriorityQueue[V, P]) siftUp(i int) {
	for i > 0 {
		par := parent(i)
		if !p.less(i, par) {
			return
		}

		p.swap(i, par)
		i = par
	}
}

// siftDown moves the entry at index i towards the leaves until neither of its children have a lower priority.
//
// NOTE: In a complete tree the last internal node may only have a left child, this may happen at any size/depth.
func (p *PriorityQueue[V, P]) siftDown(i int) {
	n := p.heap.Len()

	for {
		left := 2*i + 1
		if left >= n {
			return
		}

		// Prefer the left child when both children have the same priority
		child := left
		if right := left + 1; right < n && p.less(right, left) {
			child = right
		}

		if !p.less(child, i) {
			return
		}

		p.swap(i, child)
		i = child
	}
}
