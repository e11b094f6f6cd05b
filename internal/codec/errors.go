package codec

import "fmt"

// UnknownTokenError is returned by the decoder when it is asked to expand
// a token id that is neither an identity byte nor present in the vocab.
type UnknownTokenError struct {
	ID TokenID
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("codec: unknown token %d", e.ID)
}

// InvalidUTF8Error is returned when decoding to text and the decoded bytes
// are not valid UTF-8. Raw-byte decoding never returns this error.
type InvalidUTF8Error struct {
	Bytes []byte
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("codec: decoded %d bytes are not valid utf-8", len(e.Bytes))
}

// VocabCollisionError is returned by the trie builder when two different
// token ids map to the identical byte sequence.
type VocabCollisionError struct {
	Bytes []byte
}

func (e *VocabCollisionError) Error() string {
	return fmt.Sprintf("codec: vocab collision on byte sequence %q", e.Bytes)
}

// BudgetExhaustedError is returned when training is asked for more merges
// than the 16-bit token id space can hold.
type BudgetExhaustedError struct {
	Requested int
}

func (e *BudgetExhaustedError) Error() string {
	return fmt.Sprintf("codec: requested %d merges exceeds the 16-bit id budget (max %d)", e.Requested, MaxTokenID-int(FirstLearnedID)+1)
}

// MaxMerges is the largest n_merges training will accept before ids would
// overflow 16 bits (65536 total ids, 256 reserved for raw bytes).
const MaxMerges = int(MaxTokenID) - int(FirstLearnedID) + 1
