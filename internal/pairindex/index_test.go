package pairindex

import (
	"testing"

	"github.com/bytepair/internal/codec"
)

func TestAddAccumulatesAndTracksWords(t *testing.T) {
	idx := New()
	p := codec.Pair{Left: 1, Right: 2}

	idx.Add(p, 0, 3)
	idx.Add(p, 1, 2)

	if got, want := idx.Count(p), uint32(5); got != want {
		t.Fatalf("Count = %d, want %d", got, want)
	}
	words := idx.Words(p)
	if words.Len() != 2 || !words.Contains(0) || !words.Contains(1) {
		t.Fatalf("Words = %v, want {0,1}", words.Items())
	}
}

func TestSubDeletesAtZero(t *testing.T) {
	idx := New()
	p := codec.Pair{Left: 1, Right: 2}

	idx.Add(p, 0, 4)
	idx.Sub(p, 0, 4, true)

	if idx.Count(p) != 0 {
		t.Fatalf("Count after full Sub = %d, want 0", idx.Count(p))
	}
	if idx.Len() != 0 {
		t.Fatalf("Len after full Sub = %d, want 0 (zero-count entries must be absent)", idx.Len())
	}
	if idx.Words(p) != nil {
		t.Fatalf("Words after delete = %v, want nil", idx.Words(p))
	}
}

func TestSubPartialKeepsWord(t *testing.T) {
	idx := New()
	p := codec.Pair{Left: 1, Right: 2}

	idx.Add(p, 0, 3) // word 0 has 3 occurrences worth of count
	idx.Sub(p, 0, 1, false)

	if idx.Count(p) != 2 {
		t.Fatalf("Count = %d, want 2", idx.Count(p))
	}
	if !idx.Words(p).Contains(0) {
		t.Fatalf("word 0 should still be tracked, occurrences not yet zero")
	}
}

func TestDeleteRemovesMergedPair(t *testing.T) {
	idx := New()
	p := codec.Pair{Left: 1, Right: 2}
	idx.Add(p, 0, 1)
	idx.Delete(p)

	if idx.Count(p) != 0 {
		t.Fatalf("Count after Delete = %d, want 0", idx.Count(p))
	}
}
