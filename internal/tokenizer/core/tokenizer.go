// Package core implements the reference encoder and the decoder: the two
// operations that only need a trained merge list and vocabulary, no trie.
//
// Tokenizer holds immutable artifact data and is safe for concurrent use:
//   - Vocab[id] is the exact byte sequence for a learned token id.
//   - Merges is replayed in rank order: rule i always wins over rule j
//     for i < j, so a single priority pass over the input reproduces
//     exactly what repeated whole-corpus passes, one rule at a time,
//     would produce.
package core

import (
	"sync"

	"github.com/bytepair/internal/codec"
)

// Tokenizer wraps a trained merge list and vocabulary with the reference
// encoder and decoder operations.
type Tokenizer struct {
	merges []codec.MergeRule
	vocab  codec.Vocab

	lookup      *pairLookup
	maxRank     int
	scratchPool sync.Pool
}

// New wraps already-trained artifacts.
func New(art codec.Artifacts) *Tokenizer {
	t := &Tokenizer{
		merges:  art.Merges,
		vocab:   art.Vocab,
		lookup:  newPairLookup(art.Merges),
		maxRank: len(art.Merges) - 1,
	}
	if t.maxRank < 0 {
		t.maxRank = 0
	}
	return t
}

// Vocab returns the tokenizer's vocabulary.
func (t *Tokenizer) Vocab() codec.Vocab { return t.vocab }

// Merges returns the tokenizer's merge list.
func (t *Tokenizer) Merges() []codec.MergeRule { return t.merges }
