package wordset

import "testing"

func TestAddContainsRemove(t *testing.T) {
	s := New()
	for _, idx := range []int32{5, 1, 3, 1, 9} {
		s.Add(idx)
	}

	if got, want := s.Len(), 4; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}

	for _, idx := range []int32{1, 3, 5, 9} {
		if !s.Contains(idx) {
			t.Fatalf("Contains(%d) = false, want true", idx)
		}
	}
	if s.Contains(2) {
		t.Fatalf("Contains(2) = true, want false")
	}

	s.Remove(3)
	if s.Contains(3) {
		t.Fatalf("Contains(3) after Remove = true, want false")
	}
	if got, want := s.Len(), 3; got != want {
		t.Fatalf("Len() after Remove = %d, want %d", got, want)
	}
}

func TestEachIsSorted(t *testing.T) {
	s := New()
	for _, idx := range []int32{7, 2, 9, 0, 4} {
		s.Add(idx)
	}

	var got []int32
	s.Each(func(idx int32) { got = append(got, idx) })

	want := []int32{0, 2, 4, 7, 9}
	if len(got) != len(want) {
		t.Fatalf("Each visited %d items, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Each()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestNilSet(t *testing.T) {
	var s *Set
	if s.Len() != 0 {
		t.Fatalf("nil Len() = %d, want 0", s.Len())
	}
	if s.Contains(1) {
		t.Fatalf("nil Contains = true, want false")
	}
	s.Each(func(int32) { t.Fatal("Each on nil set should not invoke fn") })
}
