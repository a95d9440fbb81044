// Copyright (c) 2026 The EpLibrary Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import (
	"reflect"
	"sync"
)

// target0 pairs an argument-less callable with its identity key and handle.
type target0[R any] struct {
	fn     func() R
	key    uintptr
	handle Handle
}

// Delegate0 is the void-argument variant of Delegate: an ordered
// multiset of callables func() R. The operation set, identity contract,
// and locking behavior match Delegate.
type Delegate0[R any] struct {
	mu      sync.Locker
	policy  Policy
	targets []target0[R]
	lastID  uint64
}

func funcKey0[R any](f func() R) uintptr {
	return reflect.ValueOf(f).Pointer()
}

// New0 returns an empty void-argument delegate using the given policy.
// Unknown policies are rejected with ErrUnknownPolicy.
func New0[R any](policy Policy) (*Delegate0[R], error) {
	mu, err := newLocker(policy)
	if err != nil {
		return nil, err
	}
	return &Delegate0[R]{mu: mu, policy: policy}, nil
}

// Of0 returns a void-argument delegate seeded with a single target.
func Of0[R any](f func() R, policy Policy) (*Delegate0[R], error) {
	d, err := New0[R](policy)
	if err != nil {
		return nil, err
	}
	d.Append(f)
	return d, nil
}

// Policy reports the lock policy the delegate was constructed with.
func (d *Delegate0[R]) Policy() Policy {
	return d.policy
}

// Clone returns an independent copy with a fresh locker derived from
// the same policy.
func (d *Delegate0[R]) Clone() *Delegate0[R] {
	mu, _ := newLocker(d.policy) // policy was validated at construction
	d.mu.Lock()
	targets := make([]target0[R], len(d.targets))
	copy(targets, d.targets)
	lastID := d.lastID
	d.mu.Unlock()
	return &Delegate0[R]{mu: mu, policy: d.policy, targets: targets, lastID: lastID}
}

// Assign replaces the entire sequence with the single target f.
func (d *Delegate0[R]) Assign(f func() R) Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.targets = nil
	return d.push(f)
}

// AssignFrom replaces the sequence with a copy of other's sequence.
// Assigning a delegate to itself is a no-op.
func (d *Delegate0[R]) AssignFrom(other *Delegate0[R]) {
	if d == other {
		return
	}
	fns := other.snapshot()
	d.mu.Lock()
	defer d.mu.Unlock()
	d.targets = nil
	for _, f := range fns {
		d.push(f)
	}
}

// Append pushes f to the end of the sequence and returns its handle.
func (d *Delegate0[R]) Append(f func() R) Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.push(f)
}

// AppendFrom pushes a copy of every target of other, preserving order.
func (d *Delegate0[R]) AppendFrom(other *Delegate0[R]) {
	fns := other.snapshot()
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, f := range fns {
		d.push(f)
	}
}

// Remove removes every occurrence whose identity equals f's.
func (d *Delegate0[R]) Remove(f func() R) {
	key := funcKey0(f)
	d.mu.Lock()
	defer d.mu.Unlock()
	d.removeKey(key)
}

// RemoveFrom removes, for every target of other, all matching
// occurrences from this sequence.
func (d *Delegate0[R]) RemoveFrom(other *Delegate0[R]) {
	keys := other.snapshotKeys()
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, key := range keys {
		d.removeKey(key)
	}
}

// RemoveHandle removes the single entry named by h.
func (d *Delegate0[R]) RemoveHandle(h Handle) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, t := range d.targets {
		if t.handle == h {
			copy(d.targets[i:], d.targets[i+1:])
			clear(d.targets[len(d.targets)-1:])
			d.targets = d.targets[:len(d.targets)-1]
			return true
		}
	}
	return false
}

// Clear drops every target.
func (d *Delegate0[R]) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.targets = nil
}

// Len reports the number of stored targets.
func (d *Delegate0[R]) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.targets)
}

// At returns the i-th target in insertion order.
func (d *Delegate0[R]) At(i int) (func() R, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i < 0 || i >= len(d.targets) {
		return nil, &RangeError{Index: i, Len: len(d.targets)}
	}
	return d.targets[i].fn, nil
}

// Handles returns the handles of the stored targets in insertion order.
func (d *Delegate0[R]) Handles() []Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	hs := make([]Handle, len(d.targets))
	for i, t := range d.targets {
		hs[i] = t.handle
	}
	return hs
}

// Invoke calls every stored target in insertion order and returns the
// result of the last one. An empty delegate reports ErrEmpty. The
// snapshot and panic semantics match Delegate.Invoke.
func (d *Delegate0[R]) Invoke() (R, error) {
	fns := d.snapshot()
	if len(fns) == 0 {
		var zero R
		return zero, ErrEmpty
	}
	for _, f := range fns[:len(fns)-1] {
		f()
	}
	return fns[len(fns)-1](), nil
}

func (d *Delegate0[R]) push(f func() R) Handle {
	d.lastID++
	h := Handle(d.lastID)
	d.targets = append(d.targets, target0[R]{fn: f, key: funcKey0(f), handle: h})
	return h
}

func (d *Delegate0[R]) removeKey(key uintptr) {
	kept := d.targets[:0]
	for _, t := range d.targets {
		if t.key != key {
			kept = append(kept, t)
		}
	}
	clear(d.targets[len(kept):])
	d.targets = kept
}

func (d *Delegate0[R]) snapshot() []func() R {
	d.mu.Lock()
	defer d.mu.Unlock()
	fns := make([]func() R, len(d.targets))
	for i, t := range d.targets {
		fns[i] = t.fn
	}
	return fns
}

func (d *Delegate0[R]) snapshotKeys() []uintptr {
	d.mu.Lock()
	defer d.mu.Unlock()
	keys := make([]uintptr, len(d.targets))
	for i, t := range d.targets {
		keys[i] = t.key
	}
	return keys
}
