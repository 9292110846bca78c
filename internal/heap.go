package internal

import "iter"

// PriorityHeap holds dirty computeds bucketed by height so they are
// recomputed after everything they depend on.
type PriorityHeap struct {
	min int
	max int

	nodes []*heapNode // [height]head

	lookup map[*Computed]*heapNode // for O(1) removal
}

type heapNode struct {
	node   *Computed
	height int

	next *heapNode
	prev *heapNode
}

func NewHeap() *PriorityHeap {
	return &PriorityHeap{
		nodes:  make([]*heapNode, 16),
		lookup: make(map[*Computed]*heapNode),
	}
}

func (h *PriorityHeap) Len() int {
	return len(h.lookup)
}

func (h *PriorityHeap) Contains(node *Computed) bool {
	_, ok := h.lookup[node]
	return ok
}

func (h *PriorityHeap) Insert(node *Computed) {
	if h.Contains(node) {
		return
	}

	height := node.Height()
	entry := &heapNode{node: node, height: height}
	h.lookup[node] = entry

	for height >= len(h.nodes) {
		h.nodes = append(h.nodes, make([]*heapNode, len(h.nodes))...)
	}

	if h.nodes[height] == nil {
		h.nodes[height] = entry
		entry.prev = entry // loop to self
		entry.next = nil
	} else {
		head := h.nodes[height]
		tail := head.prev

		tail.next = entry
		entry.prev = tail
		entry.next = nil
		head.prev = entry
	}

	if height > h.max {
		h.max = height
	}
}

func (h *PriorityHeap) InsertAll(nodes iter.Seq[*Computed]) {
	for node := range nodes {
		h.Insert(node)
	}
}

func (h *PriorityHeap) Remove(node *Computed) {
	entry, ok := h.lookup[node]
	if !ok {
		return
	}
	delete(h.lookup, node)

	height := entry.height

	// single node
	if entry.prev == entry {
		h.nodes[height] = nil
		entry.next = nil
		return
	}

	// multiple nodes
	head := h.nodes[height]
	if entry == head {
		h.nodes[height] = entry.next
	} else {
		entry.prev.next = entry.next
	}

	next := entry.next
	if next == nil {
		next = h.nodes[height]
	}
	next.prev = entry.prev

	entry.prev = entry
	entry.next = nil
}

// Drain processes each entry in topological order with the `process` function leaving the heap empty.
// Nodes inserted while draining are processed too, even below the current height.
func (h *PriorityHeap) Drain(process func(*Computed)) {
	for h.Len() > 0 {
		for h.min = 0; h.min <= h.max; h.min++ {
			entry := h.nodes[h.min]

			for entry != nil {
				h.Remove(entry.node)
				process(entry.node)
				entry = h.nodes[h.min]
			}
		}
	}

	h.min = 0
	h.max = 0
}

// Clear drops every entry without processing it.
func (h *PriorityHeap) Clear() {
	clear(h.nodes)
	clear(h.lookup)
	h.min = 0
	h.max = 0
}
