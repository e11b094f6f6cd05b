// Package corpus implements the byte-level word splitter that runs before
// BPE training. It groups a raw byte stream into word tokenizations
// delimited by a single separator byte (ASCII space by default), with
// multiplicities.
package corpus

import "github.com/bytepair/internal/codec"

// DefaultSplitByte is the separator used when the caller does not
// configure one: ASCII space.
const DefaultSplitByte byte = ' '

// Word is one distinct byte sequence produced by Split, together with how
// many times it occurred in the input.
type Word struct {
	Bytes []byte
	Count uint32
}

// Split walks b and groups it into words on splitByte, preserving each
// word's leading separator if one was present. Whenever the current byte
// equals splitByte and the buffer being built is non-empty, the buffer is
// flushed as one word and a new buffer starts with that separator byte
// included. The final non-empty buffer is flushed unconditionally.
//
// Duplicate byte sequences are aggregated by exact equality; the returned
// order reflects first occurrence, not input order of every occurrence.
func Split(b []byte, splitByte byte) []Word {
	if len(b) == 0 {
		return nil
	}

	order := make([]string, 0)
	counts := make(map[string]uint32)

	var buf []byte
	flush := func() {
		if len(buf) == 0 {
			return
		}
		key := string(buf)
		if _, ok := counts[key]; !ok {
			order = append(order, key)
		}
		counts[key]++
		buf = nil
	}

	for _, c := range b {
		if c == splitByte && len(buf) > 0 {
			flush()
		}
		buf = append(buf, c)
	}
	flush()

	words := make([]Word, 0, len(order))
	for _, key := range order {
		words = append(words, Word{Bytes: []byte(key), Count: counts[key]})
	}
	return words
}

// ToTokenWords widens each word's bytes into its initial one-token-per-byte
// tokenization, ready to seed the pair-stat index. byteToToken maps a raw
// byte value to its identity token id (ordinarily just byte->TokenID(byte),
// but kept as a table so a caller-supplied byte alphabet is possible).
func ToTokenWords(words []Word, byteToToken [256]codec.TokenID) []codec.Word {
	out := make([]codec.Word, len(words))
	for i, w := range words {
		tokens := make([]codec.TokenID, len(w.Bytes))
		for j, b := range w.Bytes {
			tokens[j] = byteToToken[b]
		}
		out[i] = codec.Word{Tokens: tokens, Count: w.Count}
	}
	return out
}

// IdentityByteToToken returns the trivial byte->token table, token id ==
// byte value, which is what training always uses (the learned id space
// starts at codec.FirstLearnedID).
func IdentityByteToToken() [256]codec.TokenID {
	var table [256]codec.TokenID
	for b := 0; b < 256; b++ {
		table[b] = codec.TokenID(b)
	}
	return table
}
