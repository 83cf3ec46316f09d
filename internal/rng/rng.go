// Package rng provides the table-driven random number source.
//
// There is no seeding and no entropy: Next walks a fixed 256-byte table,
// so the only state is the index. The short period is deliberate and some
// visual patterns (overlapping particle bursts) depend on it.
package rng

// Period is the length of the table and therefore of every sequence.
const Period = 256

// RNG is a cursor into the table. The zero value starts at index 0.
type RNG struct {
	Index uint8
}

// Next advances the cursor and returns the byte it now points at.
func (r *RNG) Next() byte {
	r.Index++ // wraps at Period
	return table[r.Index]
}

// Intn returns Next() modulo n. n <= 0 yields 0 without consuming.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next()) % n
}

// Reset moves the cursor back to index 0.
func (r *RNG) Reset() {
	r.Index = 0
}

// Peek returns the byte the next call to Next would return.
func (r *RNG) Peek() byte {
	return table[r.Index+1]
}

// At returns the table entry at i.
func At(i uint8) byte {
	return table[i]
}
