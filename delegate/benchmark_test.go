// Copyright (c) 2026 The EpLibrary Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate_test

import (
	"testing"

	"github.com/darongE/EpLibrary/delegate"
)

// BenchmarkInvokeSingle measures invocation of a one-target delegate.
func BenchmarkInvokeSingle(b *testing.B) {
	d, _ := delegate.Of(addOne, delegate.NoLock)
	for b.Loop() {
		_, _ = d.Invoke(1)
	}
}

// BenchmarkInvokeTen measures invocation of a ten-target delegate.
func BenchmarkInvokeTen(b *testing.B) {
	d, _ := delegate.New[int, int](delegate.NoLock)
	for range 10 {
		d.Append(addOne)
	}
	for b.Loop() {
		_, _ = d.Invoke(1)
	}
}

// BenchmarkInvokeMutex measures the locked snapshot overhead.
func BenchmarkInvokeMutex(b *testing.B) {
	d, _ := delegate.Of(addOne, delegate.MutexLock)
	for b.Loop() {
		_, _ = d.Invoke(1)
	}
}

// BenchmarkInvokeSpin measures the spin-locked snapshot overhead.
func BenchmarkInvokeSpin(b *testing.B) {
	d, _ := delegate.Of(addOne, delegate.SpinLock)
	for b.Loop() {
		_, _ = d.Invoke(1)
	}
}

// BenchmarkAppendRemove measures a balanced append/remove cycle.
func BenchmarkAppendRemove(b *testing.B) {
	d, _ := delegate.Of(addOne, delegate.NoLock)
	for b.Loop() {
		d.Append(double)
		d.Remove(double)
	}
}

// BenchmarkClone measures copying a ten-target delegate.
func BenchmarkClone(b *testing.B) {
	d, _ := delegate.New[int, int](delegate.NoLock)
	for range 10 {
		d.Append(addOne)
	}
	for b.Loop() {
		_ = d.Clone()
	}
}
