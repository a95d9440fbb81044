// Copyright (c) 2026 The EpLibrary Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate_test

import (
	"math/rand/v2"
	"testing"

	"github.com/darongE/EpLibrary/delegate"
)

const propertyN = 200

// pool of named targets so identities are distinct and stable.
func p0(x int) int { return x }
func p1(x int) int { return x + 1 }
func p2(x int) int { return x + 2 }
func p3(x int) int { return x + 3 }
func p4(x int) int { return x + 4 }

var pool = []func(int) int{p0, p1, p2, p3, p4}

// TestPropertyInvokeReturnsLast: for any non-empty append sequence,
// Invoke returns exactly the last appended target's result.
func TestPropertyInvokeReturnsLast(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		d, err := delegate.New[int, int](delegate.NoLock)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		n := rng.IntN(10) + 1
		var last func(int) int
		for range n {
			last = pool[rng.IntN(len(pool))]
			d.Append(last)
		}
		arg := rng.IntN(1000)
		got, err := d.Invoke(arg)
		if err != nil {
			t.Fatalf("Invoke: %v", err)
		}
		if got != last(arg) {
			t.Fatalf("got %d, want %d (n=%d, arg=%d)", got, last(arg), n, arg)
		}
	}
}

// TestPropertyAppendPreservesOrder: At(i) agrees with the append order.
func TestPropertyAppendPreservesOrder(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		d, err := delegate.New[int, int](delegate.NoLock)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		n := rng.IntN(10) + 1
		appended := make([]func(int) int, 0, n)
		for range n {
			f := pool[rng.IntN(len(pool))]
			appended = append(appended, f)
			d.Append(f)
		}
		arg := rng.IntN(1000)
		for i, want := range appended {
			f, err := d.At(i)
			if err != nil {
				t.Fatalf("At(%d): %v", i, err)
			}
			if f(arg) != want(arg) {
				t.Fatalf("At(%d) disagrees with append order", i)
			}
		}
	}
}

// TestPropertyRemoveIsMultiset: after Remove(f), no occurrence of f
// remains and every other target count is unchanged.
func TestPropertyRemoveIsMultiset(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		d, err := delegate.New[int, int](delegate.NoLock)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		n := rng.IntN(12)
		counts := make(map[int]int)
		for range n {
			i := rng.IntN(len(pool))
			counts[i]++
			d.Append(pool[i])
		}
		victim := rng.IntN(len(pool))
		d.Remove(pool[victim])

		want := n - counts[victim]
		if d.Len() != want {
			t.Fatalf("len = %d, want %d (n=%d, victim count=%d)",
				d.Len(), want, n, counts[victim])
		}
	}
}

// TestPropertyCombineLength: len(a.CombineWith(b)) == len(a) + len(b),
// with both operands untouched.
func TestPropertyCombineLength(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a, err := delegate.New[int, int](delegate.NoLock)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		b, err := delegate.New[int, int](delegate.NoLock)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		na, nb := rng.IntN(8), rng.IntN(8)
		for range na {
			a.Append(pool[rng.IntN(len(pool))])
		}
		for range nb {
			b.Append(pool[rng.IntN(len(pool))])
		}

		sum := a.CombineWith(b)
		if sum.Len() != na+nb {
			t.Fatalf("len = %d, want %d", sum.Len(), na+nb)
		}
		if a.Len() != na || b.Len() != nb {
			t.Fatal("CombineWith mutated an operand")
		}
	}
}

// TestPropertySubtractInverse: d.Combine(f).Subtract(f) has d's length
// whenever f does not already occur in d.
func TestPropertySubtractInverse(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		d, err := delegate.New[int, int](delegate.NoLock)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		n := rng.IntN(8)
		for range n {
			// p4 is reserved as the foreign target
			d.Append(pool[rng.IntN(len(pool)-1)])
		}
		out := d.Combine(p4).Subtract(p4)
		if out.Len() != n {
			t.Fatalf("len = %d, want %d", out.Len(), n)
		}
	}
}
