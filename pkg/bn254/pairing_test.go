package bn254

import "testing"

func TestPairDegenerateInputsYieldOne(t *testing.T) {
	if !Pair(G1Infinity, G2Generator).Equal(Fq12One) {
		t.Fatal("e(infinity, Q) should be 1")
	}
	if !Pair(G1Generator, G2Infinity).Equal(Fq12One) {
		t.Fatal("e(P, infinity) should be 1")
	}
}

func TestPairNonDegenerate(t *testing.T) {
	e := Pair(G1Generator, G2Generator)
	if e.Equal(Fq12One) {
		t.Fatal("e(G1,G2) should not be 1 for a non-degenerate pairing")
	}
}

// TestPairBilinearity checks e([2]P, [3]Q) == e(P,Q)^6.
func TestPairBilinearity(t *testing.T) {
	p2 := G1Generator.Double()
	q3 := G2Generator.ScalarMul(newFrFromCanonical(U256{3, 0, 0, 0}))
	lhs := Pair(p2, q3)
	base := Pair(G1Generator, G2Generator)
	rhs := base.Exp(U256{6, 0, 0, 0})
	if !lhs.Equal(rhs) {
		t.Fatal("e([2]P,[3]Q) != e(P,Q)^6")
	}
}

func TestPairLinearityInFirstArgument(t *testing.T) {
	p2 := G1Generator.Add(G1Generator)
	lhs := Pair(p2, G2Generator)
	base := Pair(G1Generator, G2Generator)
	rhs := base.Mul(base)
	if !lhs.Equal(rhs) {
		t.Fatal("e(P+P,Q) != e(P,Q)^2")
	}
}

func TestEIP197PairingCheckEmptyInputIsTrue(t *testing.T) {
	ok, err := EIP197PairingCheck(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("empty pairing check input should report true")
	}
}

// TestEIP197PairingCheckNegation checks e(P,Q) * e(-P,Q) == 1.
func TestEIP197PairingCheckNegation(t *testing.T) {
	ok, err := PairingCheck([]G1{G1Generator, G1Generator.Neg()}, []G2{G2Generator, G2Generator})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("e(P,Q)*e(-P,Q) should equal 1")
	}
}

// TestMultiPairMatchesProductOfPairs: the shared-squaring batch loop
// must agree with multiplying individually computed pairings (final
// exponentiation is a power map, so it distributes over the product).
func TestMultiPairMatchesProductOfPairs(t *testing.T) {
	p2 := G1Generator.ScalarMul(newFrFromCanonical(U256{5, 0, 0, 0}))
	q2 := G2Generator.ScalarMul(newFrFromCanonical(U256{7, 0, 0, 0}))
	batch, err := MultiPair([]G1{G1Generator, p2}, []G2{G2Generator, q2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Pair(G1Generator, G2Generator).Mul(Pair(p2, q2))
	if !batch.Equal(want) {
		t.Fatal("batched pairing diverged from the product of single pairings")
	}
}

// TestFinalExpHardPartMatchesLiteralExponent cross-checks the base-q
// decomposition of the hard part against raising to the literal
// 761-bit exponent (q^4-q^2+1)/r.
func TestFinalExpHardPartMatchesLiteralExponent(t *testing.T) {
	qa, ok := G2Generator.ToAffine()
	if !ok {
		t.Fatal("generator must convert to affine")
	}
	pa, ok := G1Generator.ToAffine()
	if !ok {
		t.Fatal("generator must convert to affine")
	}
	f := qa.Precompute().MillerLoop(pa)

	f1 := f.Conj().Mul(f.Inv())
	fe := f1.FrobeniusMap(2).Mul(f1)
	want := fe.ExpBytes(finalExpHardExp)

	if !finalExponentiation(f).Equal(want) {
		t.Fatal("decomposed hard part diverged from the literal exponent")
	}
}

// TestFinalExponentiationOrder: anything that survives final
// exponentiation lands in the order-r subgroup of Fq12.
func TestFinalExponentiationOrder(t *testing.T) {
	e := Pair(G1Generator, G2Generator)
	if !e.Exp(frParams.modulus).Equal(Fq12One) {
		t.Fatal("pairing output raised to r should be 1")
	}
}

func TestFrobeniusMapMatchesSquaredApplication(t *testing.T) {
	f := Pair(G1Generator, G2Generator)
	if !f.FrobeniusMap(1).FrobeniusMap(1).Equal(f.FrobeniusMap(2)) {
		t.Fatal("Frobenius applied twice should match the q^2 table")
	}
}

func TestMultiPairRejectsTooManyPairs(t *testing.T) {
	ps := make([]G1, maxPairs+1)
	qs := make([]G2, maxPairs+1)
	for i := range ps {
		ps[i] = G1Generator
		qs[i] = G2Generator
	}
	_, err := MultiPair(ps, qs)
	if err == nil {
		t.Fatal("expected ErrTooManyPairs")
	}
	bnErr, ok := err.(*Error)
	if !ok || bnErr.Kind != TooManyPairs {
		t.Fatalf("expected TooManyPairs kind, got %v", err)
	}
}

func TestMultiPairRejectsMismatchedLengths(t *testing.T) {
	_, err := MultiPair([]G1{G1Generator}, []G2{G2Generator, G2Generator})
	if err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}
