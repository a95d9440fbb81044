// Copyright (c) 2026 The EpLibrary Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import (
	"reflect"
	"sync"
)

// Handle names one appended target. It is returned by Append and
// Assign and accepted by RemoveHandle for exact-entry removal, which
// is the only way to distinguish closures sharing a code pointer.
type Handle uint64

// target pairs a callable with its identity key and append handle.
type target[R, A any] struct {
	fn     func(A) R
	key    uintptr
	handle Handle
}

// Delegate is an ordered multiset of callables func(A) R invoked as one
// logical unit. Insertion order determines both execution order and
// which target's result an invocation returns. Duplicates are allowed.
//
// Structural operations are guarded by a locker owned exclusively by
// this instance, derived from the Policy passed at construction.
// See the package documentation for the identity and snapshot contracts.
type Delegate[R, A any] struct {
	mu      sync.Locker
	policy  Policy
	targets []target[R, A]
	lastID  uint64
}

// funcKey returns f's identity: the code pointer of the function value.
func funcKey[R, A any](f func(A) R) uintptr {
	return reflect.ValueOf(f).Pointer()
}

// New returns an empty delegate using the given lock policy.
// Unknown policies are rejected with ErrUnknownPolicy.
func New[R, A any](policy Policy) (*Delegate[R, A], error) {
	mu, err := newLocker(policy)
	if err != nil {
		return nil, err
	}
	return &Delegate[R, A]{mu: mu, policy: policy}, nil
}

// Of returns a delegate seeded with a single target.
func Of[R, A any](f func(A) R, policy Policy) (*Delegate[R, A], error) {
	d, err := New[R, A](policy)
	if err != nil {
		return nil, err
	}
	d.Append(f)
	return d, nil
}

// Policy reports the lock policy the delegate was constructed with.
func (d *Delegate[R, A]) Policy() Policy {
	return d.policy
}

// Clone returns an independent copy: the target sequence is copied by
// value and the locker is freshly derived from the same policy, never
// shared with the source. Subsequent mutation of either side does not
// affect the other.
func (d *Delegate[R, A]) Clone() *Delegate[R, A] {
	mu, _ := newLocker(d.policy) // policy was validated at construction
	d.mu.Lock()
	targets := make([]target[R, A], len(d.targets))
	copy(targets, d.targets)
	lastID := d.lastID
	d.mu.Unlock()
	return &Delegate[R, A]{mu: mu, policy: d.policy, targets: targets, lastID: lastID}
}

// Assign replaces the entire sequence with the single target f.
// The replacement is atomic with respect to concurrent structural
// operations on this instance.
func (d *Delegate[R, A]) Assign(f func(A) R) Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.targets = nil
	return d.push(f)
}

// AssignFrom replaces the sequence with a copy of other's sequence.
// Assigning a delegate to itself is a no-op.
func (d *Delegate[R, A]) AssignFrom(other *Delegate[R, A]) {
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
// Duplicates are allowed.
func (d *Delegate[R, A]) Append(f func(A) R) Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.push(f)
}

// AppendFrom pushes a copy of every target of other, preserving order.
// Appending a delegate to itself doubles its sequence.
func (d *Delegate[R, A]) AppendFrom(other *Delegate[R, A]) {
	fns := other.snapshot()
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, f := range fns {
		d.push(f)
	}
}

// Remove removes every occurrence whose identity equals f's.
// Removing an absent target is a no-op.
func (d *Delegate[R, A]) Remove(f func(A) R) {
	key := funcKey(f)
	d.mu.Lock()
	defer d.mu.Unlock()
	d.removeKey(key)
}

// RemoveFrom removes, for every target of other, all matching
// occurrences from this sequence. The keys are snapshotted from other
// first; no iterator into other is held while this sequence mutates.
func (d *Delegate[R, A]) RemoveFrom(other *Delegate[R, A]) {
	keys := other.snapshotKeys()
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, key := range keys {
		d.removeKey(key)
	}
}

// RemoveHandle removes the single entry named by h.
// It reports whether an entry was removed.
func (d *Delegate[R, A]) RemoveHandle(h Handle) bool {
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
func (d *Delegate[R, A]) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.targets = nil
}

// Len reports the number of stored targets.
func (d *Delegate[R, A]) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.targets)
}

// At returns the i-th target in insertion order.
// Out-of-range indices yield a *RangeError.
func (d *Delegate[R, A]) At(i int) (func(A) R, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i < 0 || i >= len(d.targets) {
		return nil, &RangeError{Index: i, Len: len(d.targets)}
	}
	return d.targets[i].fn, nil
}

// Handles returns the handles of the stored targets in insertion order.
func (d *Delegate[R, A]) Handles() []Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	hs := make([]Handle, len(d.targets))
	for i, t := range d.targets {
		hs[i] = t.handle
	}
	return hs
}

// Invoke calls every stored target in insertion order with arg and
// returns the result of the last one; earlier results are discarded.
// An empty delegate reports ErrEmpty. The sequence is snapshotted
// under the locker and the targets run after it is released, so a
// target may mutate this delegate, and concurrent mutation affects
// later invocations only. A panic in a target propagates to the
// caller and skips the remaining targets.
func (d *Delegate[R, A]) Invoke(arg A) (R, error) {
	fns := d.snapshot()
	if len(fns) == 0 {
		var zero R
		return zero, ErrEmpty
	}
	for _, f := range fns[:len(fns)-1] {
		f(arg)
	}
	return fns[len(fns)-1](arg), nil
}

// push appends f with a fresh handle. Callers hold the locker.
func (d *Delegate[R, A]) push(f func(A) R) Handle {
	d.lastID++
	h := Handle(d.lastID)
	d.targets = append(d.targets, target[R, A]{fn: f, key: funcKey(f), handle: h})
	return h
}

// removeKey filters out every target with the given identity key,
// preserving the order of the rest. Callers hold the locker.
func (d *Delegate[R, A]) removeKey(key uintptr) {
	kept := d.targets[:0]
	for _, t := range d.targets {
		if t.key != key {
			kept = append(kept, t)
		}
	}
	clear(d.targets[len(kept):]) // release dropped func values
	d.targets = kept
}

// snapshot copies the callables under the locker.
func (d *Delegate[R, A]) snapshot() []func(A) R {
	d.mu.Lock()
	defer d.mu.Unlock()
	fns := make([]func(A) R, len(d.targets))
	for i, t := range d.targets {
		fns[i] = t.fn
	}
	return fns
}

// snapshotKeys copies the identity keys under the locker.
func (d *Delegate[R, A]) snapshotKeys() []uintptr {
	d.mu.Lock()
	defer d.mu.Unlock()
	keys := make([]uintptr, len(d.targets))
	for i, t := range d.targets {
		keys[i] = t.key
	}
	return keys
}
