package trainer

import (
	"github.com/bytepair/internal/codec"
	"github.com/bytepair/internal/pairindex"
)

// fillIndex performs the initial pair-stat fill: for every word and every
// adjacent pair inside it, P[p] += k*count(w) and W[p] gains the word's
// index.
func fillIndex(words []codec.Word, idx *pairindex.Index, touch func(codec.Pair, uint32)) {
	for wi := range words {
		w := &words[wi]
		perWord := countPairs(w.Tokens)
		for p, k := range perWord {
			idx.Add(p, int32(wi), uint32(k)*w.Count)
			touch(p, idx.Count(p))
		}
	}
}

func countPairs(tokens []codec.TokenID) map[codec.Pair]int {
	counts := make(map[codec.Pair]int)
	for i := 0; i+1 < len(tokens); i++ {
		counts[codec.Pair{Left: tokens[i], Right: tokens[i+1]}]++
	}
	return counts
}

func occurrences(tokens []codec.TokenID, p codec.Pair) int {
	n := 0
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i] == p.Left && tokens[i+1] == p.Right {
			n++
		}
	}
	return n
}

// applyMerge rewrites every word containing q = (a,b), replacing each
// non-overlapping left-to-right occurrence with newID, and commits the
// resulting per-word pair deltas back into idx.
func applyMerge(words []codec.Word, idx *pairindex.Index, touch func(codec.Pair, uint32), q codec.Pair, newID codec.TokenID) {
	wordSet := idx.Words(q)
	if wordSet == nil {
		return
	}
	// Snapshot affected word indexes before lifting W[q] out: rewriting a
	// word does not touch other words' membership in W[q], but idx.Delete
	// below removes the whole entry, so the set must be copied first.
	affected := append([]int32(nil), wordSet.Items()...)

	idx.Delete(q)
	touch(q, 0)

	for _, wi := range affected {
		rewriteWord(&words[wi], wi, idx, touch, q, newID)
	}
}

// rewriteWord walks a single word left to right with a cursor,
// accumulating per-word pair deltas so the global index is updated exactly
// once per affected pair, with the correct net multiplicity, even when a
// pair is both created and destroyed within the same word.
func rewriteWord(w *codec.Word, wordIdx int32, idx *pairindex.Index, touch func(codec.Pair, uint32), q codec.Pair, newID codec.TokenID) {
	tokens := w.Tokens
	out := make([]codec.TokenID, 0, len(tokens))

	newDelta := make(map[codec.Pair]int)
	oldDelta := make(map[codec.Pair]int)

	i := 0
	for i < len(tokens) {
		if i+1 < len(tokens) && tokens[i] == q.Left && tokens[i+1] == q.Right {
			if len(out) > 0 {
				left := out[len(out)-1]
				oldDelta[codec.Pair{Left: left, Right: q.Left}]++
				newDelta[codec.Pair{Left: left, Right: newID}]++
			}
			if i+2 < len(tokens) {
				right := tokens[i+2]
				oldDelta[codec.Pair{Left: q.Right, Right: right}]++
				newDelta[codec.Pair{Left: newID, Right: right}]++
			}
			out = append(out, newID)
			i += 2
		} else {
			out = append(out, tokens[i])
			i++
		}
	}
	w.Tokens = out

	for p, k := range newDelta {
		idx.Add(p, wordIdx, uint32(k)*w.Count)
		touch(p, idx.Count(p))
	}
	for p, k := range oldDelta {
		wordGone := occurrences(out, p) == 0
		idx.Sub(p, wordIdx, uint32(k)*w.Count, wordGone)
		touch(p, idx.Count(p))
	}
}
