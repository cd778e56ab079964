// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

// invertDistinct sets v = x^-1 and returns v. v and x must not alias;
// Invert is the aliasing-safe public wrapper.
//
// By Fermat's little theorem, x^(p-1) = 1 (mod p) for x != 0, so x^(p-2)
// is the multiplicative inverse. p-2 = 2^255-21 has the binary expansion
// 1^250 0 1 0 1 1 (250 leading ones, then 0, 1, 0, 1, 1). The chain below
// alternates the accumulator between v and a scratch element t to avoid
// copying; it reproduces that exact bit pattern, not merely some
// square/multiply sequence that happens to reach the same exponent.
func invertDistinct(v, x *Element) *Element {
	var t Element

	// 1 1
	t.Square(x)
	v.Multiply(&t, x)

	// 1 x 248
	for i := 0; i < 248; i++ {
		t.Square(v)
		v.Multiply(&t, x)
	}

	// 0
	t.Square(v)

	// 1
	v.Square(&t)
	t.Multiply(v, x)

	// 0
	v.Square(&t)

	// 1
	t.Square(v)
	v.Multiply(&t, x)

	// 1
	t.Square(v)
	v.Multiply(&t, x)

	return v
}

// Invert sets v = x^-1 (mod p) and returns v. If x is zero, Invert sets
// v to zero: the Fermat chain evaluates to 0 at x=0, and the caller is
// responsible for ensuring x != 0 when a meaningful inverse is required.
func (v *Element) Invert(x *Element) *Element {
	var t Element
	invertDistinct(&t, x)
	return v.Set(&t)
}
