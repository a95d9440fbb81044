// Copyright (c) 2026 The EpLibrary Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package delegate provides a type-safe multicast delegate container in Go.
//
// The core type [Delegate] holds an ordered multiset of callables with the
// signature func(A) R and invokes them as one logical unit: every target is
// called in insertion order, and the invocation returns the result of the
// last target. [Delegate0] is the variant for argument-less callables
// (func() R).
//
// # Design Philosophy
//
// delegate provides:
//   - C#-event-like semantics: multiple subscribers, duplicates allowed,
//     last-return-value invocation
//   - Named methods instead of operator sugar: Assign, Append, Remove,
//     Combine, Subtract, Invoke, At
//   - A runtime-selected locking policy per instance, fixed at construction
//
// # Lock Policy
//
// Every delegate owns a private locker derived from the [Policy] passed to
// its constructor:
//
//   - [NoLock]: no synchronization, for single-threaded use
//   - [MutexLock]: sync.Mutex-backed
//   - [SpinLock]: fast intra-process spin locker
//
// The policy is fixed for the instance's lifetime. Clones derive a fresh
// locker from the same policy; a delegate never shares its locker. Unknown
// policy values are rejected at construction with [ErrUnknownPolicy].
//
// Mutating operations hold the locker for their full duration. Invoke
// snapshots the target sequence under the locker and calls the targets
// after releasing it, so a mutation racing an in-flight invocation affects
// later invocations only and a target may itself mutate the delegate.
//
// # Target Identity
//
// Go function values are not comparable, so removal matches targets by the
// function's code pointer. Two references to the same declared function or
// method expression share an identity; distinct closures produced by the
// same func literal also share one and are removed together. For per-entry
// removal, Append returns an opaque [Handle] accepted by
// [Delegate.RemoveHandle].
//
// # Construction
//
//   - [New]: empty delegate
//   - [Of]: delegate seeded with one target
//   - [Delegate.Clone]: independent copy with a fresh locker
//
// # Structural Operations
//
// Mutating (lock-guarded):
//
//   - [Delegate.Assign], [Delegate.AssignFrom]: replace the sequence
//   - [Delegate.Append], [Delegate.AppendFrom]: push to the end
//   - [Delegate.Remove], [Delegate.RemoveFrom]: remove all equal entries
//   - [Delegate.RemoveHandle]: remove the one entry named by a handle
//   - [Delegate.Clear]: drop every target
//
// Pure (return a new delegate):
//
//   - [Delegate.Combine], [Delegate.CombineWith]
//   - [Delegate.Subtract], [Delegate.SubtractWith]
//   - [Prepend]: callable on the left of a delegate
//   - [Join]: two callables into one delegate
//
// # Invocation
//
//   - [Delegate.Invoke]: call every target in order, return the last result.
//     An empty delegate reports [ErrEmpty]; a panic in a target propagates
//     to the caller and skips the remaining targets.
//   - [Delegate.At]: the i-th target, or a [*RangeError]
//
// # Example
//
//	d, err := delegate.New[int, int](delegate.NoLock)
//	if err != nil {
//		// unknown policy
//	}
//	d.Append(func(x int) int { return x + 1 })
//	d.Append(func(x int) int { return x * 10 })
//	got, err := d.Invoke(4) // both targets called; got == 40
package delegate
