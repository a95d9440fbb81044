// Copyright (c) 2026 The EpLibrary Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// Policy selects the concurrency primitive a delegate owns.
// The policy is chosen once at construction and fixed for the
// instance's lifetime. There is no package-level default; callers
// pass the policy explicitly.
type Policy int

const (
	// NoLock disables synchronization. For delegates confined to a
	// single goroutine.
	NoLock Policy = iota
	// MutexLock guards structural operations with a sync.Mutex.
	MutexLock
	// SpinLock guards structural operations with a fast intra-process
	// spin locker. Suited to short critical sections under low contention.
	SpinLock
)

// String returns a human-readable representation of the policy.
func (p Policy) String() string {
	switch p {
	case NoLock:
		return "nolock"
	case MutexLock:
		return "mutex"
	case SpinLock:
		return "spinlock"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// newLocker builds the locker instance for a policy.
// Unknown policy values are a configuration error, reported here so
// that no delegate can exist with an unusable locker.
func newLocker(p Policy) (sync.Locker, error) {
	switch p {
	case NoLock:
		return noLock{}, nil
	case MutexLock:
		return new(sync.Mutex), nil
	case SpinLock:
		return new(spinLock), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownPolicy, p)
	}
}

// noLock is the no-op locker behind NoLock.
type noLock struct{}

func (noLock) Lock()   {}
func (noLock) Unlock() {}

// spinLock is a minimal test-and-set spin locker.
// Waiters yield the processor between attempts instead of parking,
// trading CPU for latency on short critical sections.
type spinLock struct {
	state atomic.Uint32
}

func (l *spinLock) Lock() {
	for !l.state.CompareAndSwap(0, 1) {
		runtime.Gosched()
	}
}

func (l *spinLock) Unlock() {
	l.state.Store(0)
}
