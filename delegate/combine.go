// Copyright (c) 2026 The EpLibrary Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

// Pure structural combinators. None of these mutate their receiver or
// arguments; each returns a new delegate carrying its receiver's policy.

// Combine returns a new delegate holding this delegate's targets
// followed by f.
func (d *Delegate[R, A]) Combine(f func(A) R) *Delegate[R, A] {
	out := d.Clone()
	out.Append(f)
	return out
}

// CombineWith returns a new delegate holding this delegate's targets
// followed by other's targets.
func (d *Delegate[R, A]) CombineWith(other *Delegate[R, A]) *Delegate[R, A] {
	out := d.Clone()
	out.AppendFrom(other)
	return out
}

// Subtract returns a new delegate with every occurrence of f removed.
func (d *Delegate[R, A]) Subtract(f func(A) R) *Delegate[R, A] {
	out := d.Clone()
	out.Remove(f)
	return out
}

// SubtractWith returns a new delegate with every occurrence of each of
// other's targets removed.
func (d *Delegate[R, A]) SubtractWith(other *Delegate[R, A]) *Delegate[R, A] {
	out := d.Clone()
	out.RemoveFrom(other)
	return out
}

// Prepend returns a new delegate holding f followed by d's targets,
// the callable-on-the-left composition. The result carries d's policy.
func Prepend[R, A any](f func(A) R, d *Delegate[R, A]) *Delegate[R, A] {
	out, _ := Of(f, d.policy) // d's policy was validated at its construction
	out.AppendFrom(d)
	return out
}

// Join returns a two-target delegate holding f then g.
func Join[R, A any](f, g func(A) R, policy Policy) (*Delegate[R, A], error) {
	out, err := Of(f, policy)
	if err != nil {
		return nil, err
	}
	out.Append(g)
	return out, nil
}

// Combine returns a new delegate holding this delegate's targets
// followed by f.
func (d *Delegate0[R]) Combine(f func() R) *Delegate0[R] {
	out := d.Clone()
	out.Append(f)
	return out
}

// CombineWith returns a new delegate holding this delegate's targets
// followed by other's targets.
func (d *Delegate0[R]) CombineWith(other *Delegate0[R]) *Delegate0[R] {
	out := d.Clone()
	out.AppendFrom(other)
	return out
}

// Subtract returns a new delegate with every occurrence of f removed.
func (d *Delegate0[R]) Subtract(f func() R) *Delegate0[R] {
	out := d.Clone()
	out.Remove(f)
	return out
}

// SubtractWith returns a new delegate with every occurrence of each of
// other's targets removed.
func (d *Delegate0[R]) SubtractWith(other *Delegate0[R]) *Delegate0[R] {
	out := d.Clone()
	out.RemoveFrom(other)
	return out
}

// Prepend0 returns a new delegate holding f followed by d's targets.
func Prepend0[R any](f func() R, d *Delegate0[R]) *Delegate0[R] {
	out, _ := Of0(f, d.policy)
	out.AppendFrom(d)
	return out
}

// Join0 returns a two-target void-argument delegate holding f then g.
func Join0[R any](f, g func() R, policy Policy) (*Delegate0[R], error) {
	out, err := Of0(f, policy)
	if err != nil {
		return nil, err
	}
	out.Append(g)
	return out, nil
}
