// Package utils implements the priority-queue machinery the reference
// encoder replays a merge list with: a bucket queue keyed by merge rank,
// since ranks are small dense integers and a real heap's log-factor buys
// nothing over direct bucket indexing.
package utils

import "sort"

// BucketQueue is a priority queue of MergeCand ordered by ascending Rank,
// ties broken by ascending Pos so the leftmost match always wins. Each
// rank's bucket is a sorted []MergeCand, using the same sort.Search
// insert-position idiom internal/wordset.Set uses for its sorted index
// sets; a bucket queue is just many small sorted sets, one per rank,
// popped lowest-rank-first.
type BucketQueue struct {
	buckets []bucket
	head    int
	count   int
}

type bucket struct {
	cands []MergeCand
}

// NewBucketQueue returns an empty queue sized to hold ranks 0..maxRank.
func NewBucketQueue(maxRank int) *BucketQueue {
	return &BucketQueue{buckets: make([]bucket, maxRank+1)}
}

// Len reports how many candidates are queued, live or stale.
func (bq *BucketQueue) Len() int {
	return bq.count
}

func (bq *BucketQueue) growTo(rank int) {
	if rank < len(bq.buckets) {
		return
	}
	grown := make([]bucket, rank+1)
	copy(grown, bq.buckets)
	bq.buckets = grown
}

// Push inserts c into its rank's bucket, keeping the bucket sorted by Pos.
func (bq *BucketQueue) Push(c MergeCand) {
	bq.growTo(c.Rank)
	b := &bq.buckets[c.Rank]
	i := sort.Search(len(b.cands), func(i int) bool { return b.cands[i].Pos >= c.Pos })
	b.cands = append(b.cands, MergeCand{})
	copy(b.cands[i+1:], b.cands[i:])
	b.cands[i] = c
	bq.count++
}

// Pop removes and returns the candidate with the lowest Rank, ties broken
// by ascending Pos. The second return is false once the queue is empty.
func (bq *BucketQueue) Pop() (MergeCand, bool) {
	for bq.head < len(bq.buckets) && len(bq.buckets[bq.head].cands) == 0 {
		bq.head++
	}
	if bq.head >= len(bq.buckets) {
		return MergeCand{}, false
	}

	b := &bq.buckets[bq.head]
	c := b.cands[0]
	b.cands = b.cands[1:]
	bq.count--
	return c, true
}
