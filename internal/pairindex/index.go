// Package pairindex maintains the two mutually consistent indexes the
// trainer needs: a global pair-frequency map and a reverse index from pair
// to the set of words containing it. The two pieces of per-pair state
// share one entry so they can never drift apart under a partial update.
package pairindex

import (
	"github.com/bytepair/internal/codec"
	"github.com/bytepair/internal/wordset"
)

// entry is the per-pair state: P[pair] and W[pair] fused into one record.
type entry struct {
	count uint32
	words *wordset.Set
}

// Index holds P and W together.
type Index struct {
	entries map[codec.Pair]*entry
}

// New returns an empty index.
func New() *Index {
	return &Index{entries: make(map[codec.Pair]*entry)}
}

// Count returns P[p], 0 if absent.
func (idx *Index) Count(p codec.Pair) uint32 {
	if e, ok := idx.entries[p]; ok {
		return e.count
	}
	return 0
}

// Words returns W[p], nil if absent. Callers must treat the returned set
// as read-only.
func (idx *Index) Words(p codec.Pair) *wordset.Set {
	if e, ok := idx.entries[p]; ok {
		return e.words
	}
	return nil
}

// Len reports how many distinct pairs currently have non-zero count.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Add records that pair p occurs in word wordIdx, contributing delta to
// P[p] (delta is occurrences(p, w) * count(w)). It is safe to call Add
// multiple times for the same (p, wordIdx); W only ever gains wordIdx
// once.
func (idx *Index) Add(p codec.Pair, wordIdx int32, delta uint32) {
	if delta == 0 {
		return
	}
	e, ok := idx.entries[p]
	if !ok {
		e = &entry{words: wordset.New()}
		idx.entries[p] = e
	}
	e.count += delta
	e.words.Add(wordIdx)
}

// Sub reduces P[p] by delta and, if wordGone is true, removes wordIdx from
// W[p] (the word no longer contains any occurrence of p). When P[p]
// reaches zero the entry is deleted entirely so consumers can rely on
// zero-count absence.
func (idx *Index) Sub(p codec.Pair, wordIdx int32, delta uint32, wordGone bool) {
	e, ok := idx.entries[p]
	if !ok {
		return
	}
	if delta > e.count {
		panic("pairindex: count underflow, trainer invariant violated")
	}
	e.count -= delta
	if wordGone {
		e.words.Remove(wordIdx)
	}
	if e.count == 0 {
		delete(idx.entries, p)
	}
}

// Delete removes p and its word set entirely, used when a merge consumes
// the chosen pair.
func (idx *Index) Delete(p codec.Pair) {
	delete(idx.entries, p)
}

// Each calls fn for every pair with non-zero count. fn must not mutate
// the index.
func (idx *Index) Each(fn func(p codec.Pair, count uint32)) {
	for p, e := range idx.entries {
		fn(p, e.count)
	}
}
