package corpus

import (
	"bytes"
	"testing"
)

func TestSplitLeadingSeparator(t *testing.T) {
	// " hi hi" splits into two occurrences of the same word, both
	// starting with the space byte, aggregate count 2.
	words := Split([]byte(" hi hi"), ' ')

	if len(words) != 1 {
		t.Fatalf("got %d distinct words, want 1 (both occurrences are identical bytes): %+v", len(words), words)
	}
	if !bytes.Equal(words[0].Bytes, []byte(" hi")) {
		t.Fatalf("word bytes = %q, want %q", words[0].Bytes, " hi")
	}
	if words[0].Count != 2 {
		t.Fatalf("count = %d, want 2", words[0].Count)
	}
}

func TestSplitPreservesDistinctLeadingSpace(t *testing.T) {
	words := Split([]byte("hi hi"), ' ')
	if len(words) != 2 {
		t.Fatalf("got %d words, want 2: %+v", len(words), words)
	}

	byBytes := map[string]uint32{}
	for _, w := range words {
		byBytes[string(w.Bytes)] = w.Count
	}
	if byBytes["hi"] != 1 {
		t.Fatalf(`count("hi") = %d, want 1`, byBytes["hi"])
	}
	if byBytes[" hi"] != 1 {
		t.Fatalf(`count(" hi") = %d, want 1`, byBytes[" hi"])
	}
}

func TestSplitFourRepetitions(t *testing.T) {
	// "hi hi hi hi" aggregates to one bare "hi" (the leading occurrence)
	// and three " hi" occurrences sharing the separator-prefixed form.
	words := Split([]byte("hi hi hi hi"), ' ')

	byBytes := map[string]uint32{}
	for _, w := range words {
		byBytes[string(w.Bytes)] = w.Count
	}
	if byBytes["hi"] != 1 {
		t.Fatalf(`count("hi") = %d, want 1`, byBytes["hi"])
	}
	if byBytes[" hi"] != 3 {
		t.Fatalf(`count(" hi") = %d, want 3`, byBytes[" hi"])
	}
}

func TestSplitEmpty(t *testing.T) {
	if words := Split(nil, ' '); words != nil {
		t.Fatalf("Split(nil) = %+v, want nil", words)
	}
	if words := Split([]byte{}, ' '); words != nil {
		t.Fatalf("Split([]byte{}) = %+v, want nil", words)
	}
}

func TestSplitNoSeparator(t *testing.T) {
	words := Split([]byte("aaabdaaabac"), ' ')
	if len(words) != 1 {
		t.Fatalf("got %d words, want 1: %+v", len(words), words)
	}
	if string(words[0].Bytes) != "aaabdaaabac" {
		t.Fatalf("word bytes = %q", words[0].Bytes)
	}
	if words[0].Count != 1 {
		t.Fatalf("count = %d, want 1", words[0].Count)
	}
}

func TestToTokenWordsIdentity(t *testing.T) {
	words := Split([]byte("ab ab"), ' ')
	tw := ToTokenWords(words, IdentityByteToToken())

	for _, w := range tw {
		for i, tok := range w.Tokens {
			_ = i
			if int(tok) > 255 {
				t.Fatalf("identity token %d out of byte range", tok)
			}
		}
	}
}
