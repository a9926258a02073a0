package bn254

import "testing"

func TestG1GeneratorOnCurve(t *testing.T) {
	if !G1Generator.IsOnCurve() {
		t.Fatal("generator must be on curve")
	}
}

func TestG1InfinityIsIdentity(t *testing.T) {
	g := G1Generator
	if !g.Add(G1Infinity).Equal(g) {
		t.Fatal("g + infinity != g")
	}
	if !G1Infinity.Add(g).Equal(g) {
		t.Fatal("infinity + g != g")
	}
}

func TestG1AddInverse(t *testing.T) {
	g := G1Generator
	if !g.Add(g.Neg()).Equal(G1Infinity) {
		t.Fatal("g + (-g) != infinity")
	}
}

// TestG1GeneratorDoubling checks that doubling the generator matches
// adding it to itself and that 2G - G lands back on G.
func TestG1GeneratorDoubling(t *testing.T) {
	g := G1Generator
	doubled := g.Double()
	viaAdd := g.Add(g)
	if !doubled.Equal(viaAdd) {
		t.Fatal("Double(g) != g+g")
	}
	if !doubled.IsOnCurve() {
		t.Fatal("doubled point must be on curve")
	}
	if !doubled.Add(g.Neg()).Equal(g) {
		t.Fatal("2g - g != g")
	}
}

// TestG1GeneratorOrder checks that [r]G1 == infinity. Fr values are
// always reduced mod r, so the literal integer r itself (not an Fr)
// has to drive the double-and-add loop directly.
func TestG1GeneratorOrder(t *testing.T) {
	result := G1Infinity
	g := G1Generator
	scalar := frParams.modulus
	n := scalar.BitLen()
	for i := n - 1; i >= 0; i-- {
		result = result.Double()
		if scalar.Bit(i) == 1 {
			result = result.Add(g)
		}
	}
	if !result.IsInfinity() {
		t.Fatal("[r]G1 should be the point at infinity")
	}
}

func TestG1AddMixedMatchesAdd(t *testing.T) {
	g := G1Generator.Double()
	a, ok := G1Generator.ToAffine()
	if !ok {
		t.Fatal("generator must convert to affine")
	}
	if !g.AddMixed(a).Equal(g.Add(G1Generator)) {
		t.Fatal("AddMixed should match Add against the lifted point")
	}
}

func TestG1ScalarMulMatchesRepeatedAdd(t *testing.T) {
	g := G1Generator
	five := newFrFromCanonical(U256{5, 0, 0, 0})
	got := g.ScalarMul(five)
	want := g.Add(g).Add(g).Add(g).Add(g)
	if !got.Equal(want) {
		t.Fatal("ScalarMul(5) != g+g+g+g+g")
	}
}

func TestG1CompressedDecodeTagSelectsRoot(t *testing.T) {
	x := FqOne // x=1: 1^3+3=4, sqrt(4) = 2 or -2
	y, ok := x.Sqr().Mul(x).Add(curveB).Sqrt()
	if !ok {
		t.Fatal("x=1 must have a square root on the curve")
	}
	evenY, oddY := y, y
	if fqParity(evenY) == 1 {
		evenY, oddY = y.Neg(), y
	} else {
		oddY = y.Neg()
	}

	var enc [G1CompressedSize]byte
	enc[0] = 0x02
	xb := x.Bytes()
	copy(enc[1:33], xb[:])
	p, err := DecodeG1Compressed(enc[:])
	if err != nil {
		t.Fatalf("decode tag 0x02: %v", err)
	}
	a, _ := p.ToAffine()
	if !a.Y.Equal(evenY) {
		t.Fatal("tag 0x02 should select the even-y root")
	}
	if !a.Y.Equal(newFqFromCanonical(U256{2, 0, 0, 0})) {
		t.Fatal("tag 0x02 with x=1 should decode to the generator (1,2)")
	}

	enc[0] = 0x03
	p, err = DecodeG1Compressed(enc[:])
	if err != nil {
		t.Fatalf("decode tag 0x03: %v", err)
	}
	a, _ = p.ToAffine()
	if !a.Y.Equal(oddY) {
		t.Fatal("tag 0x03 should select the odd-y root")
	}
}

func TestG1CompressedRoundTrip(t *testing.T) {
	g := G1Generator.Double().Double()
	enc, err := EncodeG1Compressed(g)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeG1Compressed(enc[:])
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Equal(g) {
		t.Fatal("compressed round trip mismatch")
	}
}

func TestG1UncompressedRoundTripIncludingInfinity(t *testing.T) {
	for _, p := range []G1{G1Generator, G1Generator.Double(), G1Infinity} {
		enc := EncodeG1Uncompressed(p)
		got, err := DecodeG1Uncompressed(enc[:])
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !got.Equal(p) {
			t.Fatal("uncompressed round trip mismatch")
		}
	}
}
