package trainer

import (
	"container/heap"

	"github.com/bytepair/internal/codec"
)

// candidate is one snapshot of a pair's count at the moment it was pushed.
// version ties a candidate to the generation of pairindex state it was
// computed from; it goes stale the instant that pair's count changes
// again, the same lazy-invalidation trick internal/tokenizer/core's
// encoder uses (there keyed by a linked-list slot's liveVersion, here
// keyed by the pair itself since pairs, not positions, are our keys).
type candidate struct {
	pair    codec.Pair
	count   uint32
	version uint64
}

// candidateHeap is a max-heap on count, ties broken by (Left, Right)
// ascending so that, given a deterministic pair-index iteration, the
// merge order is reproducible across runs.
type candidateHeap []candidate

func (h candidateHeap) Len() int { return len(h) }
func (h candidateHeap) Less(i, j int) bool {
	if h[i].count != h[j].count {
		return h[i].count > h[j].count
	}
	if h[i].pair.Left != h[j].pair.Left {
		return h[i].pair.Left < h[j].pair.Left
	}
	return h[i].pair.Right < h[j].pair.Right
}
func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap) Push(x any)   { *h = append(*h, x.(candidate)) }
func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// selector picks the next conflict-free batch of merges from a
// pairindex.Index. It keeps its own max-heap over pair counts plus a
// version counter per pair; Touch must be called after every pairindex
// mutation so stale heap entries can be recognized and dropped on pop
// rather than acted on.
type selector struct {
	h        candidateHeap
	versions map[codec.Pair]uint64
}

func newSelector() *selector {
	s := &selector{versions: make(map[codec.Pair]uint64)}
	heap.Init(&s.h)
	return s
}

// Touch records that p's count is now `count` (0 meaning the pair is gone)
// and, if still live, pushes a fresh candidate reflecting it.
func (s *selector) Touch(p codec.Pair, count uint32) {
	s.versions[p]++
	if count == 0 {
		return
	}
	heap.Push(&s.h, candidate{pair: p, count: count, version: s.versions[p]})
}

func (s *selector) isLive(c candidate) bool {
	return s.versions[c.pair] == c.version
}

// NextBatch pops every pair tied for the current maximum count, in
// ascending (Left, Right) order, and returns the conflict-free subset:
// pairs are emitted in order, skipping any candidate whose Left or Right
// token was already claimed earlier in this batch. Skipped candidates go
// back on the heap. It returns nil once the heap holds no live candidates.
func (s *selector) NextBatch() []codec.Pair {
	var tied []candidate
	maxCount := uint32(0)
	haveMax := false

	for s.h.Len() > 0 {
		c := heap.Pop(&s.h).(candidate)
		if !s.isLive(c) {
			continue
		}
		if !haveMax {
			maxCount = c.count
			haveMax = true
		} else if c.count != maxCount {
			// Not part of this tie; put it back for the next round.
			heap.Push(&s.h, c)
			break
		}
		tied = append(tied, c)
	}

	if !haveMax {
		return nil
	}

	used := make(map[codec.TokenID]bool, len(tied)*2)
	batch := make([]codec.Pair, 0, len(tied))
	for _, c := range tied {
		if used[c.pair.Left] || used[c.pair.Right] {
			// Skipped for this batch only: keep it queued for later rounds.
			heap.Push(&s.h, c)
			continue
		}
		used[c.pair.Left] = true
		used[c.pair.Right] = true
		batch = append(batch, c.pair)
	}
	return batch
}
