package core

import "github.com/bytepair/internal/codec"

// pairInfo is what a merge rule reduces to for encoding purposes: the
// rule's priority (lower rank wins, matching merge order) and the id the
// pair collapses to.
type pairInfo struct {
	rank int
	new  codec.TokenID
}

// pairLookup provides O(1) amortized lookup of pair info using a hybrid
// approach: a dense 2D array for pairs where both ids are small (the
// common case, since learned ids accumulate from 256 up), falling back
// to a map for pairs involving a high id.
type pairLookup struct {
	fast     [][]pairInfo
	fastSize int
	fastOK   [][]bool
	fallback map[codec.Pair]pairInfo
}

const pairLookupFastSize = 2048

// newPairLookup builds a lookup table from an ordered merge list. Rule i
// has rank i; rank order is what the encoder replays.
func newPairLookup(merges []codec.MergeRule) *pairLookup {
	size := pairLookupFastSize

	fast := make([][]pairInfo, size)
	fastOK := make([][]bool, size)
	for i := range fast {
		fast[i] = make([]pairInfo, size)
		fastOK[i] = make([]bool, size)
	}

	pl := &pairLookup{
		fast:     fast,
		fastSize: size,
		fastOK:   fastOK,
		fallback: make(map[codec.Pair]pairInfo),
	}

	for rank, m := range merges {
		info := pairInfo{rank: rank, new: m.New}
		l, r := int(m.Pair.Left), int(m.Pair.Right)
		if l < size && r < size {
			pl.fast[l][r] = info
			pl.fastOK[l][r] = true
		} else {
			pl.fallback[m.Pair] = info
		}
	}

	return pl
}

func (pl *pairLookup) lookup(a, b codec.TokenID) (pairInfo, bool) {
	ai, bi := int(a), int(b)
	if ai < pl.fastSize && bi < pl.fastSize {
		if pl.fastOK[ai][bi] {
			return pl.fast[ai][bi], true
		}
		return pairInfo{}, false
	}
	info, ok := pl.fallback[codec.Pair{Left: a, Right: b}]
	return info, ok
}
