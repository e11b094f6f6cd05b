package core

import (
	"github.com/bytepair/internal/codec"
	"github.com/bytepair/internal/utils"
)

// EncodeReference applies the full merge list to input in priority order
// using a doubly linked
// list over token slots plus a bucket queue of merge candidates ordered
// by rank, so a rule earlier in the merge list always wins over one
// later even though both may be mergeable at the same scan position.
// This produces the identical result a naive "apply rule 1 everywhere,
// then rule 2 everywhere, ..." pass would, since merge rank is a total
// order and a merge never creates an opportunity for an earlier rule.
func (t *Tokenizer) EncodeReference(input []byte) []codec.TokenID {
	n := len(input)
	if n == 0 {
		return nil
	}

	scratch := t.acquireScratch(n)
	defer t.releaseScratch(scratch)

	tokens := scratch.tokens
	for i, b := range input {
		tokens[i] = codec.TokenID(b)
	}

	prev := scratch.prev
	next := scratch.next
	for i := 0; i < n; i++ {
		prev[i] = i - 1
		next[i] = i + 1
	}
	prev[0] = -1
	next[n-1] = -1

	liveVersion := scratch.live
	for i := 0; i < n; i++ {
		liveVersion[i] = 0
	}

	h := utils.NewBucketQueue(t.maxRank)

	pushIfMergeable := func(i int) {
		j := next[i]
		if i == -1 || j == -1 {
			return
		}
		a, b := tokens[i], tokens[j]
		if info, ok := t.lookup.lookup(a, b); ok {
			h.Push(utils.MergeCand{
				Rank:       info.rank,
				Pos:        i,
				LeftToken:  int(a),
				RightToken: int(b),
				VerL:       liveVersion[i],
				VerR:       liveVersion[j],
			})
		}
	}

	for i := 0; i != -1 && next[i] != -1; i = next[i] {
		pushIfMergeable(i)
	}

	head := 0

	for {
		c, ok := h.Pop()
		if !ok {
			break
		}
		i := c.Pos
		if i == -1 {
			continue
		}
		j := next[i]
		if j == -1 {
			continue
		}
		if liveVersion[i] != c.VerL || liveVersion[j] != c.VerR {
			continue
		}

		a, b := tokens[i], tokens[j]
		info, ok := t.lookup.lookup(a, b)
		if !ok || info.rank != c.Rank || int(a) != c.LeftToken || int(b) != c.RightToken {
			continue
		}

		tokens[i] = info.new

		nj := next[j]
		next[i] = nj
		if nj != -1 {
			prev[nj] = i
		}
		prev[j], next[j] = -1, -1

		liveVersion[i]++
		liveVersion[j]++

		if pi := prev[i]; pi != -1 {
			pushIfMergeable(pi)
		}
		pushIfMergeable(i)
	}

	out := make([]codec.TokenID, 0, n)
	for i := head; i != -1; i = next[i] {
		out = append(out, tokens[i])
	}
	return out
}

type encodeScratch struct {
	tokens []codec.TokenID
	prev   []int
	next   []int
	live   []int
}

func (t *Tokenizer) acquireScratch(n int) *encodeScratch {
	v := t.scratchPool.Get()
	var sc *encodeScratch
	if v == nil {
		sc = &encodeScratch{}
	} else {
		sc = v.(*encodeScratch)
	}
	sc.prepare(n)
	return sc
}

func (t *Tokenizer) releaseScratch(sc *encodeScratch) {
	t.scratchPool.Put(sc)
}

func (sc *encodeScratch) prepare(n int) {
	sc.tokens = ensureTokenCapacity(sc.tokens, n)
	sc.prev = ensureIntCapacity(sc.prev, n)
	sc.next = ensureIntCapacity(sc.next, n)
	sc.live = ensureIntCapacity(sc.live, n)
}

func ensureTokenCapacity(buf []codec.TokenID, n int) []codec.TokenID {
	if cap(buf) < n {
		return make([]codec.TokenID, n)
	}
	return buf[:n]
}

func ensureIntCapacity(buf []int, n int) []int {
	if cap(buf) < n {
		return make([]int, n)
	}
	return buf[:n]
}
