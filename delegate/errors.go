// Copyright (c) 2026 The EpLibrary Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import (
	"errors"
	"fmt"
)

// ErrEmpty reports an invocation of a delegate holding no targets.
// There is no well-defined "last result" for an empty sequence.
var ErrEmpty = errors.New("delegate: invoke on empty delegate")

// ErrUnknownPolicy reports a constructor called with a Policy value
// outside the declared set.
var ErrUnknownPolicy = errors.New("delegate: unknown lock policy")

// RangeError reports an index outside the target sequence.
type RangeError struct {
	// Index is the requested position.
	Index int
	// Len is the sequence length at the time of the call.
	Len int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("delegate: index %d out of range [0, %d)", e.Index, e.Len)
}
