// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"testing"
	"testing/quick"

	fiat "github.com/mit-plv/fiat-crypto/fiat-go/64/curve25519"
)

// fiat-crypto's radix-51 limb representation is structurally incompatible
// with Element's byte-exact layout, so it cannot back the production
// Multiply/Add/Subtract/Negate directly (see the design notes on why it
// isn't wired into the production path). It is wired in here instead: an
// independent, formally-verified implementation of the same field that
// Add, Subtract, Negate and Multiply are cross-checked against.

func toFiat(e *Element) *fiat.TightFieldElement {
	var normalized Element
	normalized.Set(e).Normalize()

	var buf [elementSize]byte
	buf = normalized.b

	var limbs fiat.TightFieldElement
	fiat.FromBytes(&limbs, &buf)
	return &limbs
}

func fromFiat(limbs *fiat.TightFieldElement) Element {
	var buf [elementSize]byte
	fiat.ToBytes(&buf, limbs)

	var e Element
	e.SetBytes(buf[:])
	return e
}

func TestFiatCrossCheckAdd(t *testing.T) {
	f := func(a, b Element) bool {
		var want Element
		want.Add(&a, &b)
		want.Normalize()

		var sum fiat.TightFieldElement
		fiat.CarryAdd(&sum, toFiat(&a), toFiat(&b))
		got := fromFiat(&sum)

		return want.Equal(&got) == 1
	}
	if err := quick.Check(f, quickCheckConfig1024); err != nil {
		t.Error(err)
	}
}

func TestFiatCrossCheckSubtract(t *testing.T) {
	f := func(a, b Element) bool {
		var want Element
		want.Subtract(&a, &b)
		want.Normalize()

		var diff fiat.TightFieldElement
		fiat.CarrySub(&diff, toFiat(&a), toFiat(&b))
		got := fromFiat(&diff)

		return want.Equal(&got) == 1
	}
	if err := quick.Check(f, quickCheckConfig1024); err != nil {
		t.Error(err)
	}
}

func TestFiatCrossCheckNegate(t *testing.T) {
	f := func(a Element) bool {
		var want Element
		want.Negate(&a)
		want.Normalize()

		var neg fiat.TightFieldElement
		fiat.CarryOpp(&neg, toFiat(&a))
		got := fromFiat(&neg)

		return want.Equal(&got) == 1
	}
	if err := quick.Check(f, quickCheckConfig1024); err != nil {
		t.Error(err)
	}
}

func TestFiatCrossCheckMultiply(t *testing.T) {
	f := func(a, b Element) bool {
		var want Element
		want.Multiply(&a, &b)
		want.Normalize()

		aLimbs, bLimbs := toFiat(&a), toFiat(&b)
		var prod fiat.TightFieldElement
		fiat.CarryMul(&prod, (*fiat.LooseFieldElement)(aLimbs), (*fiat.LooseFieldElement)(bLimbs))
		got := fromFiat(&prod)

		return want.Equal(&got) == 1
	}
	if err := quick.Check(f, quickCheckConfig1024); err != nil {
		t.Error(err)
	}
}
