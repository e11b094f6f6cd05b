// Package trie implements a fast encoder: a byte-keyed prefix tree over
// the vocabulary, encoding by left-to-right longest match in a single
// pass instead of replaying the full merge list per byte range the way
// internal/tokenizer/core's reference encoder does.
package trie

import "github.com/bytepair/internal/codec"

type node struct {
	children [256]*node
	id       codec.TokenID
	hasID    bool
}

// Trie is a built, read-only longest-match encoder over a vocabulary.
type Trie struct {
	root *node
}

// Build compiles vocab into a trie. Every single byte 0..255 is an
// implicit leaf carrying its identity id, so longest match never fails
// to find a fallback. Build returns codec.VocabCollisionError if two
// different ids expand to the same byte sequence.
func Build(vocab codec.Vocab) (*Trie, error) {
	t := &Trie{root: &node{}}

	for b := 0; b < 256; b++ {
		if err := t.insert([]byte{byte(b)}, codec.TokenID(b)); err != nil {
			return nil, err
		}
	}
	for id, bytes := range vocab {
		if err := t.insert(bytes, id); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Trie) insert(bytes []byte, id codec.TokenID) error {
	n := t.root
	for _, b := range bytes {
		child := n.children[b]
		if child == nil {
			child = &node{}
			n.children[b] = child
		}
		n = child
	}
	if n.hasID && n.id != id {
		return &codec.VocabCollisionError{Bytes: bytes}
	}
	n.id = id
	n.hasID = true
	return nil
}

// Encode tokenizes input by repeated longest match: from position i,
// descend as deep as the trie allows, remembering the deepest position
// that carried a token id, emit that id, and restart just past it. The
// 256 single-byte entries guarantee a match always exists, so there is no
// separate no-match fallback branch.
func (t *Trie) Encode(input []byte) []codec.TokenID {
	out := make([]codec.TokenID, 0, len(input))

	i := 0
	for i < len(input) {
		n := t.root
		bestLen := 0
		var bestID codec.TokenID

		for j := i; j < len(input); j++ {
			child := n.children[input[j]]
			if child == nil {
				break
			}
			n = child
			if n.hasID {
				bestLen = j - i + 1
				bestID = n.id
			}
		}

		out = append(out, bestID)
		i += bestLen
	}
	return out
}
