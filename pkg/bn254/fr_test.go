package bn254

import "testing"

func mustFr(v uint64) Fr { return newFrFromCanonical(U256{v, 0, 0, 0}) }

func TestFrAddSubNeg(t *testing.T) {
	a, b := mustFr(7), mustFr(3)
	if !a.Add(b).Equal(mustFr(10)) {
		t.Fatal("Add mismatch")
	}
	if !a.Sub(b).Equal(mustFr(4)) {
		t.Fatal("Sub mismatch")
	}
	if !a.Add(a.Neg()).IsZero() {
		t.Fatal("a + (-a) should be zero")
	}
}

func TestFrMulSqr(t *testing.T) {
	a, b := mustFr(6), mustFr(7)
	if !a.Mul(b).Equal(mustFr(42)) {
		t.Fatal("Mul mismatch")
	}
	if !a.Sqr().Equal(mustFr(36)) {
		t.Fatal("Sqr mismatch")
	}
}

func TestFrInvRoundTrip(t *testing.T) {
	a := mustFr(123456789)
	if !a.Mul(a.Inv()).Equal(FrOne) {
		t.Fatal("a * a^-1 != 1")
	}
}

func TestFrInvZeroIsZero(t *testing.T) {
	if !FrZero.Inv().IsZero() {
		t.Fatal("0^-1 should be defined as 0 by this package's convention")
	}
}

func TestFrBytesRoundTrip(t *testing.T) {
	x := U256{0xdeadbeef, 1, 2, 3}
	b := x.Bytes32()
	fr, err := FrFromBytes(b[:])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fr.Bytes() != b {
		t.Fatal("round trip mismatch")
	}
}

// TestFrInterpretReducesWideValues checks the 64-byte reduction used
// for hash-to-scalar: r itself reduces to zero, r+1 to one.
func TestFrInterpretReducesWideValues(t *testing.T) {
	var buf [64]byte
	rb := frParams.modulus.Bytes32()
	copy(buf[32:], rb[:])
	fr, err := FrInterpret(buf[:])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fr.IsZero() {
		t.Fatal("interpret(r) should reduce to zero")
	}
	buf[63]++
	fr, err = FrInterpret(buf[:])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fr.Equal(FrOne) {
		t.Fatal("interpret(r+1) should reduce to one")
	}
}

func TestFrInterpretRejectsWrongLength(t *testing.T) {
	if _, err := FrInterpret(make([]byte, 32)); err == nil {
		t.Fatal("expected error for 32-byte input")
	}
}

func TestFrCanonicalU256RoundTrip(t *testing.T) {
	x := U256{42, 0, 0, 0}
	fr := newFrFromCanonical(x)
	if fr.CanonicalU256() != x {
		t.Fatal("CanonicalU256 should invert newFrFromCanonical")
	}
}
