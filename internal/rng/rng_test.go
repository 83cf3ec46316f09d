package rng

import "testing"

func TestPeriod(t *testing.T) {
	var r RNG
	first := make([]byte, Period)
	for i := range first {
		first[i] = r.Next()
	}

	if r.Index != 0 {
		t.Errorf("Index after %d calls = %d, expected 0", Period, r.Index)
	}
	if first[Period-1] != At(0) {
		t.Errorf("call %d = %d, expected table[0] = %d", Period, first[Period-1], At(0))
	}

	for i := range first {
		if got := r.Next(); got != first[i] {
			t.Fatalf("second cycle diverged at %d: got %d, expected %d", i, got, first[i])
		}
	}
}

func TestSameIndexSameSequence(t *testing.T) {
	a := RNG{Index: 77}
	b := RNG{Index: 77}
	for i := 0; i < 50; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences from the same index diverged at call %d", i)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	r := RNG{Index: 200}
	p := r.Peek()
	if r.Index != 200 {
		t.Errorf("Peek() moved the index to %d", r.Index)
	}
	if n := r.Next(); n != p {
		t.Errorf("Next() = %d, Peek() said %d", n, p)
	}
}

func TestIntn(t *testing.T) {
	var r RNG
	for i := 0; i < Period; i++ {
		if v := r.Intn(20); v < 0 || v >= 20 {
			t.Fatalf("Intn(20) = %d out of range", v)
		}
	}
	idx := r.Index
	if r.Intn(0) != 0 || r.Index != idx {
		t.Error("Intn(0) should return 0 without consuming")
	}
}

func TestTableStart(t *testing.T) {
	expected := []byte{0, 8, 109, 220, 222, 241, 149, 107, 75, 248, 254, 140, 16, 66, 74, 21}
	for i, want := range expected {
		if got := At(uint8(i)); got != want {
			t.Errorf("At(%d) = %d, expected %d", i, got, want)
		}
	}

	var r RNG
	for i, want := range expected[1:] {
		if got := r.Next(); got != want {
			t.Errorf("Next() call %d = %d, expected %d", i+1, got, want)
		}
	}
}
