// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

// multiplyDistinct sets v = a * b and returns v. a, b and v must not
// alias; Multiply provides the aliasing-safe public wrapper.
//
// The product is computed by interleaving a 256x256-bit schoolbook
// multiply with the reduction identity 2^256 = 38 (mod p), so that only
// 32 bytes of output are ever materialized: for output byte i, the terms
// a[j]*b[i-j] for j <= i contribute directly, while the terms that would
// land at byte i+32 wrap around multiplied by 38.
func multiplyDistinct(v, a, b *Element) *Element {
	var r [elementSize]byte
	var c uint32

	for i := 0; i < elementSize; i++ {
		c >>= 8
		for j := 0; j <= i; j++ {
			c += uint32(a.b[j]) * uint32(b.b[i-j])
		}
		for j := i + 1; j < elementSize; j++ {
			c += uint32(a.b[j]) * uint32(b.b[i+elementSize-j]) * 38
		}
		r[i] = byte(c)
	}

	r[elementSize-1] &= 127
	c = (c >> 7) * 19
	for i := 0; i < elementSize; i++ {
		c += uint32(r[i])
		r[i] = byte(c)
		c >>= 8
	}

	v.b = r
	return v
}

// Multiply sets v = a * b and returns v.
func (v *Element) Multiply(a, b *Element) *Element {
	var t Element
	multiplyDistinct(&t, a, b)
	return v.Set(&t)
}

// Square sets v = a * a and returns v.
func (v *Element) Square(a *Element) *Element {
	return v.Multiply(a, a)
}

// MultiplySmall sets v = a * c and returns v, where c is a scalar assumed
// to be no greater than 2^24 (the regime in which the 32-bit carry
// accumulator cannot overflow). Behavior for larger c is undefined.
func (v *Element) MultiplySmall(a *Element, c uint32) *Element {
	var r [elementSize]byte
	var carry uint32

	for i := 0; i < elementSize; i++ {
		carry >>= 8
		carry += c * uint32(a.b[i])
		r[i] = byte(carry)
	}

	r[elementSize-1] &= 127
	carry >>= 7
	carry *= 19
	for i := 0; i < elementSize; i++ {
		carry += uint32(r[i])
		r[i] = byte(carry)
		carry >>= 8
	}

	v.b = r
	return v
}
