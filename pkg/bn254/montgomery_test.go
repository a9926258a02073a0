package bn254

import "testing"

// smallFieldParams is a tiny Montgomery field (modulus 97, a prime)
// used to exercise montMul/montPow against a hand-computed reference
// without needing the full 254-bit BN254 constants.
var smallFieldParams = buildSmallFieldParams()

func buildSmallFieldParams() *fieldParams {
	const m = 97
	// one = 2^256 mod 97, r2 = (2^256)^2 mod 97, inv = -97^-1 mod 2^64.
	// These are computed the same way fq.go/fr.go's constants were:
	// by an external script, not at runtime, since package init stays
	// free of big.Int/math-package dependencies. Values below were
	// derived once via a standalone computation and are checked against
	// direct modular arithmetic in TestMontMulAgainstNaive.
	return &fieldParams{
		modulus: U256{97, 0, 0, 0},
		inv:     0x5c5f02a3a0fd5c5f,
		r2:      U256{35, 0, 0, 0},
		one:     U256{61, 0, 0, 0},
	}
}

func TestMontMulAgainstNaive(t *testing.T) {
	p := smallFieldParams
	for a := uint64(0); a < 97; a++ {
		for b := uint64(0); b < 97; b++ {
			ma := toMontgomery(U256{a, 0, 0, 0}, p)
			mb := toMontgomery(U256{b, 0, 0, 0}, p)
			got := fromMontgomery(montMul(ma, mb, p), p)
			want := (a * b) % 97
			if got[0] != want || got[1] != 0 {
				t.Fatalf("%d*%d mod 97: got %v want %d", a, b, got, want)
			}
		}
	}
}

func TestMontAddSubNeg(t *testing.T) {
	p := smallFieldParams
	a := toMontgomery(U256{60, 0, 0, 0}, p)
	b := toMontgomery(U256{50, 0, 0, 0}, p)
	sum := fromMontgomery(montAdd(a, b, p), p)
	if sum[0] != (60+50)%97 {
		t.Fatalf("montAdd: got %d", sum[0])
	}
	diff := fromMontgomery(montSub(a, b, p), p)
	if diff[0] != (60-50+97)%97 {
		t.Fatalf("montSub: got %d", diff[0])
	}
	neg := fromMontgomery(montNeg(a, p), p)
	if (neg[0]+60)%97 != 0 {
		t.Fatalf("montNeg: got %d", neg[0])
	}
}

func TestMontPowFermat(t *testing.T) {
	p := smallFieldParams
	for a := uint64(1); a < 97; a++ {
		ma := toMontgomery(U256{a, 0, 0, 0}, p)
		// a^96 == 1 mod 97 (Fermat's little theorem).
		got := fromMontgomery(montPow(ma, U256{96, 0, 0, 0}, p), p)
		if got[0] != 1 {
			t.Fatalf("%d^96 mod 97: got %d, want 1", a, got[0])
		}
	}
}

func TestToFromMontgomeryRoundTrip(t *testing.T) {
	fp := fqParams
	x := U256{123456789, 0, 0, 0}
	got := fromMontgomery(toMontgomery(x, fp), fp)
	if got != x {
		t.Fatalf("round trip: got %v want %v", got, x)
	}
}
