package core

import (
	"unicode/utf8"

	"github.com/bytepair/internal/codec"
)

// Decode expands tokens back to the bytes they represent. An id that is
// neither an identity byte nor present in the vocabulary is reported as
// codec.UnknownTokenError rather than causing
// a panic: unlike EncodeReference's scratch-pool bookkeeping, the token
// ids here may come from outside this package (a corrupt artifact file,
// a hand-edited token stream), so this is a boundary, not an internal
// invariant.
func (t *Tokenizer) Decode(tokens []codec.TokenID) ([]byte, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	total := 0
	for _, id := range tokens {
		b, ok := t.vocab.Bytes(id)
		if !ok {
			return nil, &codec.UnknownTokenError{ID: id}
		}
		total += len(b)
	}

	out := make([]byte, 0, total)
	for _, id := range tokens {
		b, _ := t.vocab.Bytes(id)
		out = append(out, b...)
	}
	return out, nil
}

// DecodeUTF8 decodes tokens and additionally validates that the result is
// well-formed UTF-8, returning codec.InvalidUTF8Error if not. Use this at
// any boundary that hands decoded output to something expecting text.
func (t *Tokenizer) DecodeUTF8(tokens []codec.TokenID) (string, error) {
	b, err := t.Decode(tokens)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", &codec.InvalidUTF8Error{Bytes: b}
	}
	return string(b), nil
}
