// Package ident hands out unique numeric suffixes for control ids.
package ident

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrExhausted is returned when every value in the requested range is taken.
var ErrExhausted = errors.New("ident: no free id in range")

// maxProbes bounds the random probing before Allocate falls back to a linear
// scan of the range, so allocation always terminates.
const maxProbes = 16

// Pool records the integers already allocated. Ids are never released; the
// pool grows monotonically for the life of the session.
type Pool struct {
	used map[int]bool
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{used: make(map[int]bool)}
}

// Allocate returns an integer in [min,max] not yet handed out and records it.
// It probes randomly a bounded number of times, then scans the range in order;
// when the range is fully allocated it returns ErrExhausted.
func (p *Pool) Allocate(min, max int) (int, error) {
	if max < min {
		return 0, fmt.Errorf("ident: bad range [%d,%d]", min, max)
	}
	span := max - min + 1
	for i := 0; i < maxProbes; i++ {
		n := min + rand.Intn(span)
		if !p.used[n] {
			p.used[n] = true
			return n, nil
		}
	}
	for n := min; n <= max; n++ {
		if !p.used[n] {
			p.used[n] = true
			return n, nil
		}
	}
	return 0, ErrExhausted
}

// Len reports how many ids have been allocated so far.
func (p *Pool) Len() int {
	return len(p.used)
}
