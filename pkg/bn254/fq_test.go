package bn254

import "testing"

func TestFqAddSubNeg(t *testing.T) {
	a := newFqFromCanonical(U256{7, 0, 0, 0})
	b := newFqFromCanonical(U256{3, 0, 0, 0})
	if !a.Add(b).Equal(newFqFromCanonical(U256{10, 0, 0, 0})) {
		t.Fatal("Add mismatch")
	}
	if !a.Sub(b).Equal(newFqFromCanonical(U256{4, 0, 0, 0})) {
		t.Fatal("Sub mismatch")
	}
	if !a.Add(a.Neg()).IsZero() {
		t.Fatal("a + (-a) should be zero")
	}
}

func TestFqMulSqr(t *testing.T) {
	a := newFqFromCanonical(U256{6, 0, 0, 0})
	b := newFqFromCanonical(U256{7, 0, 0, 0})
	if !a.Mul(b).Equal(newFqFromCanonical(U256{42, 0, 0, 0})) {
		t.Fatal("Mul mismatch")
	}
	if !a.Sqr().Equal(newFqFromCanonical(U256{36, 0, 0, 0})) {
		t.Fatal("Sqr mismatch")
	}
}

// TestFqInversionOfTwo checks Fq inversion of the literal value 2,
// down to the canonical byte encoding of the product.
func TestFqInversionOfTwo(t *testing.T) {
	two := newFqFromCanonical(U256{2, 0, 0, 0})
	inv := two.Inv()
	if !two.Mul(inv).Equal(FqOne) {
		t.Fatal("2 * 2^-1 != 1")
	}
	var wantOne [32]byte
	wantOne[31] = 1
	if two.Mul(inv).Bytes() != wantOne {
		t.Fatal("2 * 2^-1 should encode as 0x00..01")
	}
}

func TestFqInversionIsInvolution(t *testing.T) {
	a := newFqFromCanonical(U256{123456789, 0, 0, 0})
	if !a.Inv().Inv().Equal(a) {
		t.Fatal("(a^-1)^-1 != a")
	}
}

func TestFqInvZeroIsZero(t *testing.T) {
	if !FqZero.Inv().IsZero() {
		t.Fatal("0^-1 should be defined as 0 by this package's convention")
	}
}

func TestFqSqrtRoundTrip(t *testing.T) {
	a := newFqFromCanonical(U256{15, 0, 0, 0})
	sq := a.Sqr()
	root, ok := sq.Sqrt()
	if !ok {
		t.Fatal("sqrt of a square must succeed")
	}
	if !root.Sqr().Equal(sq) {
		t.Fatal("sqrt candidate does not square back to input")
	}
}

func TestFqSqrtOfZero(t *testing.T) {
	root, ok := FqZero.Sqrt()
	if !ok || !root.IsZero() {
		t.Fatal("sqrt(0) should be 0")
	}
}

func TestFqBytesRoundTrip(t *testing.T) {
	x := U256{0xdeadbeef, 1, 2, 3}
	fq, err := FqFromBytes(func() []byte {
		b := x.Bytes32()
		return b[:]
	}())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := fq.Bytes()
	if out != x.Bytes32() {
		t.Fatal("round trip mismatch")
	}
}

func TestFqFromBytesRejectsNonCanonical(t *testing.T) {
	b := fqParams.modulus.Bytes32() // exactly q, not a valid element
	if _, err := FqFromBytes(b[:]); err == nil {
		t.Fatal("expected error decoding q itself")
	}
}
