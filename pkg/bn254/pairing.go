package bn254

// The optimal ate pairing over BN254: a Miller loop driven by the NAF
// expansion of 6u+2 (u the BN curve parameter), two Frobenius-twist
// correction steps, and a final exponentiation split into an easy
// part (Frobenius/conjugate/inverse only) and a hard part (raising to
// (q^4-q^2+1)/r). The Miller loop accumulator is kept in affine form
// rather than the more common Jacobian twist-point accumulator: this
// trades an Fq2 inversion per step for a much simpler line-function
// derivation.

// bnU is the BN254 curve parameter u, with 6u+2 the Miller loop
// length.
const bnU uint64 = 4965661367192848881

// sixuPlus2NAF is the non-adjacent-form signed-binary expansion of
// 6u+2, most significant digit first. The top digit (always 1) seeds
// the loop's initial accumulator T=Q and is not iterated over again;
// Precompute and the Miller loops walk the remaining digits.
var sixuPlus2NAF = [66]int8{
	1, 0, -1, 0, 1, 0, 0, 0, -1, 0, -1, 0, 0, 0, -1, 0, 1, 0, -1, 0,
	0, -1, 0, 0, 0, 0, 0, 1, 0, 0, -1, 0, 1, 0, 0, -1, 0, 0, 0, 0,
	-1, 0, 1, 0, 0, 0, -1, 0, -1, 0, 0, 1, 0, 0, 0, -1, 0, 0, -1, 0,
	1, 0, 1, 0, 0, 0,
}

// The five gamma coefficients for the q-power (k=1), q^2-power (k=2),
// and q^3-power (k=3) Frobenius maps on Fq12, each xi^(k*(q^?-1)/6)
// for k=1..5. frobGamma2's entries have a zero imaginary component,
// since Frobenius^2 fixes Fq2 pointwise.
var (
	frobGamma1 = [5]Fq2{
		{A0: newFqFromCanonical(U256{0xd60b35dadcc9e470, 0x5c521e08292f2176, 0xe8b99fdd76e68b60, 0x1284b71c2865a7df}), A1: newFqFromCanonical(U256{0xca5cf05f80f362ac, 0x747992778eeec7e5, 0xa6327cfe12150b8e, 0x246996f3b4fae7e6})},
		{A0: newFqFromCanonical(U256{0x99e39557176f553d, 0xb78cc310c2c3330c, 0x4c0bec3cf559b143, 0x2fb347984f7911f7}), A1: newFqFromCanonical(U256{0x1665d51c640fcba2, 0x32ae2a1d0b7c9dce, 0x4ba4cc8bd75a0794, 0x16c9e55061ebae20})},
		{A0: newFqFromCanonical(U256{0xdc54014671a0135a, 0xdbaae0eda9c95998, 0xdc5ec698b6e2f9b9, 0x063cf305489af5dc}), A1: newFqFromCanonical(U256{0x82d37f632623b0e3, 0x21807dc98fa25bd2, 0x0704b5a7ec796f2b, 0x07c03cbcac41049a})},
		{A0: newFqFromCanonical(U256{0x848a1f55921ea762, 0xd33365f7be94ec72, 0x80f3c0b75a181e84, 0x05b54f5e64eea801}), A1: newFqFromCanonical(U256{0xc13b4711cd2b8126, 0x3685d2ea1bdec763, 0x9f3a80b03b0b1c92, 0x2c145edbe7fd8aee})},
		{A0: newFqFromCanonical(U256{0x2ea2c810eab7692f, 0x425c459b55aa1bd3, 0xe93a3661a4353ff4, 0x0183c1e74f798649}), A1: newFqFromCanonical(U256{0x24c6b8ee6e0c2c4b, 0xb080cb99678e2ac0, 0xa27fb246c7729f7d, 0x12acf2ca76fd0675})},
	}
	frobGamma2 = [5]Fq2{
		{A0: newFqFromCanonical(U256{0xe4bd44e5607cfd49, 0xc28f069fbb966e3d, 0x5e6dd9e7e0acccb0, 0x30644e72e131a029}), A1: FqZero},
		{A0: newFqFromCanonical(U256{0xe4bd44e5607cfd48, 0xc28f069fbb966e3d, 0x5e6dd9e7e0acccb0, 0x30644e72e131a029}), A1: FqZero},
		{A0: newFqFromCanonical(U256{0x3c208c16d87cfd46, 0x97816a916871ca8d, 0xb85045b68181585d, 0x30644e72e131a029}), A1: FqZero},
		{A0: newFqFromCanonical(U256{0x5763473177fffffe, 0xd4f263f1acdb5c4f, 0x59e26bcea0d48bac, 0x0000000000000000}), A1: FqZero},
		{A0: newFqFromCanonical(U256{0x5763473177ffffff, 0xd4f263f1acdb5c4f, 0x59e26bcea0d48bac, 0x0000000000000000}), A1: FqZero},
	}
	frobGamma3 = [5]Fq2{
		{A0: newFqFromCanonical(U256{0xe86f7d391ed4a67f, 0x894cb38dbe55d24a, 0xefe9608cd0acaa90, 0x19dc81cfcc82e4bb}), A1: newFqFromCanonical(U256{0x7694aa2bf4c0c101, 0x7f03a5e397d439ec, 0x06cbeee33576139d, 0x00abf8b60be77d73})},
		{A0: newFqFromCanonical(U256{0x7b746ee87bdcfb6d, 0x805ffd3d5d6942d3, 0xbaff1c77959f25ac, 0x0856e078b755ef0a}), A1: newFqFromCanonical(U256{0x380cab2baaa586de, 0x0fdf31bf98ff2631, 0xa9f30e6dec26094f, 0x04f1de41b3d1766f})},
		{A0: newFqFromCanonical(U256{0x5fcc8ad066dce9ed, 0xbbd689a3bea870f4, 0xdbf17f1dca9e5ea3, 0x2a275b6d9896aa4c}), A1: newFqFromCanonical(U256{0xb94d0cb3b2594c64, 0x7600ecc7d8cf6eba, 0xb14b900e9507e932, 0x28a411b634f09b8f})},
		{A0: newFqFromCanonical(U256{0x0e1a92bc3ccbf066, 0xe633094575b06bcb, 0x19bee0f7b5b2444e, 0x0bc58c6611c08dab}), A1: newFqFromCanonical(U256{0x5fe3ed9d730c239f, 0xa44a9e08737f96e5, 0xfeb0f6ef0cd21d04, 0x23d5e999e1910a12})},
		{A0: newFqFromCanonical(U256{0xebde847076261b43, 0x2ed68098967c84a5, 0x711699fa3b4d3f69, 0x13c49044952c0905}), A1: newFqFromCanonical(U256{0x1f25041384282499, 0x3e2ddaea20028021, 0x9fb1b2282a48633d, 0x16db366a59b1dd0b})},
	}
)

// finalExpHardExp is (q^4-q^2+1)/r as a literal 761-bit integer. The
// hard part below evaluates this exponent through its base-q
// decomposition instead of bit by bit; the literal is kept as the
// reference the decomposition is tested against.
var finalExpHardExp = []byte{
	0x01, 0xba, 0xaa, 0x71, 0x0b, 0x07, 0x59, 0xad, 0x33, 0x1e, 0xc1, 0x51,
	0x83, 0x17, 0x7f, 0xaf, 0x6c, 0x0e, 0xb5, 0x22, 0xd5, 0xb1, 0x22, 0x78,
	0x4e, 0x52, 0x9a, 0x58, 0x61, 0x87, 0x6f, 0x6b, 0x3b, 0x1b, 0x13, 0x55,
	0xd1, 0x89, 0x22, 0x7d, 0x79, 0x58, 0x1e, 0x16, 0xf3, 0xfd, 0x90, 0xc6,
	0x6b, 0x88, 0x7d, 0x56, 0xd5, 0x09, 0x5f, 0x23, 0xaa, 0xa4, 0x41, 0xe3,
	0x95, 0x4b, 0xcf, 0x8a, 0xdc, 0xc7, 0xb4, 0x4c, 0x87, 0xcd, 0xba, 0xcf,
	0xf1, 0x15, 0x4e, 0x7e, 0x1d, 0xa0, 0x14, 0xfd, 0x5a, 0xbf, 0x5c, 0xc4,
	0xf4, 0x9c, 0x36, 0xd4, 0xe8, 0x1b, 0xb4, 0x82, 0xcc, 0xdf, 0x42, 0xb1,
}

// lineCoeffs hold one Miller-loop step's line, reduced to what doesn't
// depend on the G1 evaluation point: the slope lambda and the constant
// term c = lambda*xT - yT. Untwisting maps the twist point (xT,yT) to
// (xT*w^2, yT*w^3) on the curve over Fq12 and scales the slope by w,
// so the line evaluated at P = (xP,yP) is
//
//	yP - lambda*w*xP + c*w^3
//
// occupying three of the twelve tower slots: the constant (C0.C0), the
// w coefficient (C1.C0), and the v*w coefficient (C1.C1).
type lineCoeffs struct {
	lambda Fq2
	c      Fq2
}

// eval lifts the line into its sparse Fq12 form at the G1 point p.
func (l lineCoeffs) eval(p AffineG1) Fq12 {
	return Fq12{
		C0: Fq6{C0: Fq2{A0: p.Y, A1: FqZero}, C1: Fq2Zero, C2: Fq2Zero},
		C1: Fq6{C0: l.lambda.MulByFq(p.X).Neg(), C1: l.c, C2: Fq2Zero},
	}
}

// coeffsDouble computes the tangent line at T and doubles T.
func coeffsDouble(t AffineG2) (lineCoeffs, AffineG2) {
	xt, yt := t.X, t.Y
	threeXt2 := xt.Sqr().MulByFq(FqOne.Double().Add(FqOne)) // 3*xt^2
	lambda := threeXt2.Mul(yt.Double().Inv())

	xNew := lambda.Sqr().Sub(xt.Double())
	yNew := lambda.Mul(xt.Sub(xNew)).Sub(yt)

	return lineCoeffs{lambda: lambda, c: lambda.Mul(xt).Sub(yt)}, AffineG2{X: xNew, Y: yNew}
}

// coeffsAdd computes the chord line through T and q and adds q into T.
func coeffsAdd(t, q AffineG2) (lineCoeffs, AffineG2) {
	xt, yt := t.X, t.Y
	lambda := q.Y.Sub(yt).Mul(q.X.Sub(xt).Inv())

	xNew := lambda.Sqr().Sub(xt).Sub(q.X)
	yNew := lambda.Mul(xt.Sub(xNew)).Sub(yt)

	return lineCoeffs{lambda: lambda, c: lambda.Mul(xt).Sub(yt)}, AffineG2{X: xNew, Y: yNew}
}

// G2Precomp is the full per-step line-coefficient table for a fixed G2
// point: the intermediate T values are walked once and only the line
// coefficients kept, so Miller loops against any number of G1 points
// reuse the same table.
type G2Precomp struct {
	coeffs []lineCoeffs
}

// Precompute walks the whole Miller loop structure for q — one double
// step per NAF digit, an add step per nonzero digit, and the two
// Frobenius correction steps — recording each step's line coefficients.
func (q AffineG2) Precompute() G2Precomp {
	coeffs := make([]lineCoeffs, 0, 2*len(sixuPlus2NAF))
	qNeg := AffineG2{X: q.X, Y: q.Y.Neg()}
	t := q

	var l lineCoeffs
	for i := 1; i < len(sixuPlus2NAF); i++ {
		l, t = coeffsDouble(t)
		coeffs = append(coeffs, l)

		switch sixuPlus2NAF[i] {
		case 1:
			l, t = coeffsAdd(t, q)
			coeffs = append(coeffs, l)
		case -1:
			l, t = coeffsAdd(t, qNeg)
			coeffs = append(coeffs, l)
		}
	}

	q1 := frobeniusTwist(q, 1)
	q2 := frobeniusTwist(q, 2)
	q2 = AffineG2{X: q2.X, Y: q2.Y.Neg()}

	l, t = coeffsAdd(t, q1)
	coeffs = append(coeffs, l)
	l, _ = coeffsAdd(t, q2)
	coeffs = append(coeffs, l)

	return G2Precomp{coeffs: coeffs}
}

// MillerLoop evaluates the precomputed lines at p, squaring the
// accumulator once per NAF digit.
func (pre G2Precomp) MillerLoop(p AffineG1) Fq12 {
	f := Fq12One
	idx := 0
	for i := 1; i < len(sixuPlus2NAF); i++ {
		f = f.Sqr().Mul(pre.coeffs[idx].eval(p))
		idx++
		if sixuPlus2NAF[i] != 0 {
			f = f.Mul(pre.coeffs[idx].eval(p))
			idx++
		}
	}
	f = f.Mul(pre.coeffs[idx].eval(p))
	f = f.Mul(pre.coeffs[idx+1].eval(p))
	return f
}

// millerLoopBatch accumulates every pair's line evaluations into a
// single Fq12 value, sharing the per-digit squaring across pairs
// (squaring distributes over the product, so the result matches the
// product of individual Miller loops).
func millerLoopBatch(pres []G2Precomp, ps []AffineG1) Fq12 {
	f := Fq12One
	idx := 0
	for i := 1; i < len(sixuPlus2NAF); i++ {
		f = f.Sqr()
		for j := range pres {
			f = f.Mul(pres[j].coeffs[idx].eval(ps[j]))
		}
		idx++
		if sixuPlus2NAF[i] != 0 {
			for j := range pres {
				f = f.Mul(pres[j].coeffs[idx].eval(ps[j]))
			}
			idx++
		}
	}
	for j := range pres {
		f = f.Mul(pres[j].coeffs[idx].eval(ps[j]))
		f = f.Mul(pres[j].coeffs[idx+1].eval(ps[j]))
	}
	return f
}

// frobeniusTwist applies the twisted Frobenius endomorphism pi^power
// to an affine G2 point, power in {1,2}, using the frobGamma1/
// frobGamma2 coefficients (k=2 for the x-coordinate correction, k=3
// for y).
func frobeniusTwist(q AffineG2, power int) AffineG2 {
	if power == 1 {
		return AffineG2{
			X: q.X.Conj().Mul(frobGamma1[1]),
			Y: q.Y.Conj().Mul(frobGamma1[2]),
		}
	}
	return AffineG2{
		X: q.X.Mul(frobGamma2[1]),
		Y: q.Y.Mul(frobGamma2[2]),
	}
}

// expByU computes x^u for the BN curve parameter u.
func (x Fq12) expByU() Fq12 {
	return x.Exp(U256{bnU, 0, 0, 0})
}

// expSmall computes x^e for a single-limb exponent.
func (x Fq12) expSmall(e uint64) Fq12 {
	return x.Exp(U256{e, 0, 0, 0})
}

// finalExponentiation raises f to (q^12-1)/r, split into the easy part
// (conjugate/inverse plus a Frobenius^2 multiply) and the hard part
// (q^4-q^2+1)/r, evaluated through the Devegili-Scott-Dahab base-q
// decomposition
//
//	lam0 + lam1*q + lam2*q^2 + q^3
//	lam2 = 6u^2+1
//	lam1 = -(36u^3 + 18u^2 + 12u - 1)
//	lam0 = -(36u^3 + 30u^2 + 18u + 2)
//
// so only three u-power exponentiations and a handful of small-exponent
// chains remain. The easy part's output is unitary, making conjugation
// a free inverse for the negative coefficients.
func finalExponentiation(f Fq12) Fq12 {
	f1 := f.Conj().Mul(f.Inv())      // f^(q^6-1)
	fe := f1.FrobeniusMap(2).Mul(f1) // ^(q^2+1)

	fu := fe.expByU()
	fu2 := fu.expByU()
	fu3 := fu2.expByU()
	fu3e36 := fu3.expSmall(36)

	a := fe.FrobeniusMap(3)
	b := fu2.expSmall(6).Mul(fe).FrobeniusMap(2)
	c := fu3e36.Mul(fu2.expSmall(18)).Mul(fu.expSmall(12)).Mul(fe.Conj()).
		Conj().FrobeniusMap(1)
	d := fu3e36.Mul(fu2.expSmall(30)).Mul(fu.expSmall(18)).Mul(fe.Sqr()).
		Conj()
	return a.Mul(b).Mul(c).Mul(d)
}

// Pair computes the optimal ate pairing e(p,q) in Gt. Either input
// being the identity yields Fq12One, the bilinear pairing's
// degenerate-input convention.
func Pair(p G1, q G2) Fq12 {
	if p.IsInfinity() || q.IsInfinity() {
		return Fq12One
	}
	pa, _ := p.ToAffine()
	qa, _ := q.ToAffine()
	return finalExponentiation(qa.Precompute().MillerLoop(pa))
}

// maxPairs bounds a single batch pairing check: inputs longer than
// this are rejected rather than silently processed.
const maxPairs = 16

// MultiPair computes the product of e(p_i,q_i) over paired slices ps
// and qs, which must have equal length (possibly zero, giving Fq12One)
// not exceeding maxPairs.
func MultiPair(ps []G1, qs []G2) (Fq12, error) {
	if len(ps) != len(qs) {
		return Fq12{}, newErr(InvalidEncoding, "mismatched pairing input lengths")
	}
	if len(ps) > maxPairs {
		return Fq12{}, ErrTooManyPairs
	}
	pres := make([]G2Precomp, 0, len(ps))
	pas := make([]AffineG1, 0, len(ps))
	for i := range ps {
		if ps[i].IsInfinity() || qs[i].IsInfinity() {
			continue
		}
		pa, okP := ps[i].ToAffine()
		qa, okQ := qs[i].ToAffine()
		if !okP || !okQ {
			// Unreachable for points this package produced: the only
			// failure mode is Z=0, which the infinity check above
			// already skipped.
			return Fq12{}, ErrToAffine
		}
		pres = append(pres, qa.Precompute())
		pas = append(pas, pa)
	}
	return finalExponentiation(millerLoopBatch(pres, pas)), nil
}

// PairingCheck reports whether the product of e(p_i,q_i) equals 1 in
// Gt, the EIP-197 precompile semantics: an empty input is vacuously
// true.
func PairingCheck(ps []G1, qs []G2) (bool, error) {
	if len(ps) == 0 {
		return true, nil
	}
	result, err := MultiPair(ps, qs)
	if err != nil {
		return false, err
	}
	return result.Equal(Fq12One), nil
}
