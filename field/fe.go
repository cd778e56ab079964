// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field implements arithmetic modulo 2^255-19, the prime field
// underlying Curve25519.
//
// Unlike most Go field-element packages, which carry values in a
// multi-limb radix optimized for 64-bit multiplication, Element stores
// its value exactly as the 32-byte little-endian encoding the caller
// will eventually see. Every method therefore works directly on bytes,
// carrying across them the way the reference C implementation this
// package is ported from does. This trades a bounded amount of
// performance for a representation that is bit-for-bit auditable against
// the original. A second multiplier, MultiplyHW, repacks the bytes into
// 17-bit limbs to model a hardware multiplier datapath.
package field

import "errors"

// elementSize is the length in bytes of the canonical encoding.
const elementSize = 32

// Element represents an element of the field GF(2^255-19).
//
// Unless stated otherwise, a freshly assigned Element is not necessarily
// reduced. Add, Subtract and Negate on reduced operands give values less
// than 2^255+19, below 2p; unreduced operands can give larger values.
// Normalize accepts any 256-bit value and returns the canonical
// representative in [0, p). All arguments and receivers are allowed to
// alias.
//
// The zero value is a valid, reduced zero element.
type Element struct {
	b [elementSize]byte
}

// Zero is the canonical encoding of the additive identity.
var Zero = new(Element)

// One is the canonical encoding of the multiplicative identity.
var One = new(Element).Load(1)

// Load sets v = c mod 2^32 and returns v. The result is reduced.
func (v *Element) Load(c uint32) *Element {
	v.b[0] = byte(c)
	v.b[1] = byte(c >> 8)
	v.b[2] = byte(c >> 16)
	v.b[3] = byte(c >> 24)
	for i := 4; i < elementSize; i++ {
		v.b[i] = 0
	}
	return v
}

// Set sets v = a and returns v.
func (v *Element) Set(a *Element) *Element {
	*v = *a
	return v
}

// SetBytes sets v to x, where x is a 32-byte little-endian encoding. If x
// is not of the right length, SetBytes returns nil and an error, and the
// receiver is unchanged.
//
// The value is accepted as-is, whether or not it is a canonical
// representative of its residue class; call Normalize to reduce it.
func (v *Element) SetBytes(x []byte) (*Element, error) {
	if len(x) != elementSize {
		return nil, errors.New("field: invalid field element input size")
	}
	copy(v.b[:], x)
	return v, nil
}

// Bytes returns the 32-byte little-endian encoding of v, exactly as
// stored: the caller must Normalize first to obtain the canonical
// representative.
func (v *Element) Bytes() []byte {
	var out [elementSize]byte
	out = v.b
	return out[:]
}

// Equal returns 1 if v and u hold the same 32 bytes, and 0 otherwise.
// This is a byte-equality test, constant-time in the length of the
// encoding: it is only a residue-equality test when both operands are
// reduced (spec invariant: callers must Normalize before comparing
// potentially unreduced values).
func (v *Element) Equal(u *Element) int {
	var sum byte
	for i := range v.b {
		sum |= v.b[i] ^ u.b[i]
	}
	sum |= sum >> 4
	sum |= sum >> 2
	sum |= sum >> 1
	return int((sum ^ 1) & 1)
}

// mask8Bits returns 0xff if cond is 1, and 0 if cond is 0. cond must be
// 0 or 1; any other value is undefined.
func mask8Bits(cond int) byte { return -byte(cond) }

// Select sets v to a if cond == 0, and to b if cond == 1, and returns v.
// cond must be 0 or 1. Select does no branching and no lookup indexed by
// cond: it XOR-masks the difference between a and b, so its access
// pattern is identical regardless of which operand is chosen.
func (v *Element) Select(a, b *Element, cond int) *Element {
	m := mask8Bits(cond)
	var out [elementSize]byte
	for i := range out {
		out[i] = a.b[i] ^ (m & (a.b[i] ^ b.b[i]))
	}
	v.b = out
	return v
}

// Normalize sets v to the unique representative of its residue class in
// [0, p), and returns v.
//
// The algorithm folds the value to below 2p using the identity
// 2^255 = 19 (mod p), then conditionally subtracts p once, selecting the
// subtracted value only when no borrow occurred.
func (v *Element) Normalize() *Element {
	var minusP [elementSize]byte
	in := v.b

	// Fold the top bit into the low bytes: 2^255 = 19 (mod p).
	c := uint16(in[elementSize-1]>>7) * 19
	in[elementSize-1] &= 127
	for i := 0; i < elementSize; i++ {
		c += uint16(in[i])
		in[i] = byte(c)
		c >>= 8
	}

	// The value is now < 2^255+18 < 2p. Tentatively subtract p by adding
	// 2^256-p = 2^255+19, tracked via the top-bit borrow.
	c = 19
	for i := 0; i+1 < elementSize; i++ {
		c += uint16(in[i])
		minusP[i] = byte(c)
		c >>= 8
	}
	c += uint16(in[elementSize-1]) + 0xff80 // -128, widened to uint16 arithmetic
	minusP[elementSize-1] = byte(c)

	// c's top bit is 0 exactly when the subtraction did not underflow,
	// i.e. when the folded value was >= p; Select keeps minusP in that
	// case and the folded value otherwise.
	keepFolded := int((c >> 15) & 1)
	v.b = in
	var reduced Element
	reduced.b = minusP
	return v.Select(&reduced, v, keepFolded)
}

// Add sets v = a + b and returns v. The result is not normalized: for
// reduced a and b it is below 2^255+19 (unreduced operands can push it
// higher), and a further Normalize is needed to obtain the canonical
// representative.
func (v *Element) Add(a, b *Element) *Element {
	var r [elementSize]byte
	var c uint16
	for i := 0; i < elementSize; i++ {
		c >>= 8
		c += uint16(a.b[i]) + uint16(b.b[i])
		r[i] = byte(c)
	}

	r[elementSize-1] &= 127
	c = (c >> 7) * 19
	for i := 0; i < elementSize; i++ {
		c += uint16(r[i])
		r[i] = byte(c)
		c >>= 8
	}

	v.b = r
	return v
}

// Subtract sets v = a - b and returns v. Computed as a + 2p - b so that
// no underflow occurs; the result is bounded the same way Add's is.
func (v *Element) Subtract(a, b *Element) *Element {
	var r [elementSize]byte
	c := uint32(218)
	for i := 0; i+1 < elementSize; i++ {
		c += 65280 + uint32(a.b[i]) - uint32(b.b[i])
		r[i] = byte(c)
		c >>= 8
	}
	c += uint32(a.b[elementSize-1]) - uint32(b.b[elementSize-1])
	r[elementSize-1] = byte(c) & 127
	c = (c >> 7) * 19

	for i := 0; i < elementSize; i++ {
		c += uint32(r[i])
		r[i] = byte(c)
		c >>= 8
	}

	v.b = r
	return v
}

// Negate sets v = -a and returns v. Implemented as Subtract from zero.
func (v *Element) Negate(a *Element) *Element {
	return v.Subtract(Zero, a)
}
