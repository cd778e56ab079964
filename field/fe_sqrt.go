// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

// exp2523 sets v = x^((p-5)/8) and returns v. (p-5)/8 = 2^252-3, a
// 252-bit number with binary expansion 1^250 0 1. The chain has the same
// alternating-accumulator shape as invertDistinct, for the same reason.
func exp2523(v, x *Element) *Element {
	var s Element

	// 1 1
	v.Square(x)
	s.Multiply(v, x)

	// 1 x 248
	for i := 0; i < 248; i++ {
		v.Square(&s)
		s.Multiply(v, x)
	}

	// 0
	v.Square(&s)

	// 1
	s.Square(v)
	v.Multiply(&s, x)

	return v
}

// Sqrt sets v to a square root of a (mod p) when a is a quadratic
// residue, and returns v. This is the Tonelli shortcut valid because
// p = 5 (mod 8): it does not itself determine whether a is a quadratic
// residue. If a is a residue, v*v == a (and so does (-v)*(-v)); if it is
// not, v*v != a (v is either 0 or satisfies v*v == -2a). Callers must
// square the result and compare it against a to tell the two cases apart.
func (v *Element) Sqrt(a *Element) *Element {
	var root, i, x, y Element

	// x = 2a
	x.MultiplySmall(a, 2)

	// root = (2a)^((p-5)/8)
	exp2523(&root, &x)

	// i = 2a*root^2 - 1
	y.Square(&root)
	i.Multiply(&x, &y)
	y.Load(1)
	i.Subtract(&i, &y)

	// v = a*root*i
	x.Multiply(&root, a)
	return v.Multiply(&x, &i)
}
