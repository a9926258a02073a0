package bn254

// Fq2 is the quadratic extension Fq[i]/(i^2+1), i.e. Fq(u) with
// u^2 = -1, elements written a0 + a1*u.
type Fq2 struct {
	A0, A1 Fq
}

var (
	Fq2Zero = Fq2{A0: FqZero, A1: FqZero}
	Fq2One  = Fq2{A0: FqOne, A1: FqZero}
)

func (x Fq2) IsZero() bool    { return x.A0.IsZero() && x.A1.IsZero() }
func (x Fq2) Equal(y Fq2) bool { return x.A0.Equal(y.A0) && x.A1.Equal(y.A1) }

func (x Fq2) Add(y Fq2) Fq2 {
	return Fq2{A0: x.A0.Add(y.A0), A1: x.A1.Add(y.A1)}
}

func (x Fq2) Sub(y Fq2) Fq2 {
	return Fq2{A0: x.A0.Sub(y.A0), A1: x.A1.Sub(y.A1)}
}

func (x Fq2) Neg() Fq2 {
	return Fq2{A0: x.A0.Neg(), A1: x.A1.Neg()}
}

func (x Fq2) Double() Fq2 {
	return Fq2{A0: x.A0.Double(), A1: x.A1.Double()}
}

// Fq2FromSlice decodes a 64-byte big-endian value as an Fq2 element.
// The wire form is the single 512-bit integer a1*q + a0, not two
// independent coordinates: DivRem by q recovers a1 as the quotient and
// a0 as the remainder, and rejects values whose quotient is not itself
// a field element.
func Fq2FromSlice(b []byte) (Fq2, error) {
	v, err := U512FromSlice(b)
	if err != nil {
		return Fq2{}, err
	}
	a1, a0, ok := v.DivRem(fqParams.modulus)
	if !ok {
		return Fq2{}, newErr(NotMember, "fq2 imaginary part >= q")
	}
	return Fq2{A0: newFqFromCanonical(a0), A1: newFqFromCanonical(a1)}, nil
}

// Bytes64 encodes x as the 64-byte big-endian integer a1*q + a0, the
// inverse of Fq2FromSlice.
func (x Fq2) Bytes64() [64]byte {
	return x.ToU512().Bytes64()
}

// ToU512 returns the canonical 512-bit integer a1*q + a0. The G2
// compressed tags order the two square roots by this value.
func (x Fq2) ToU512() U512 {
	a0 := fromMontgomery(x.A0.v, fqParams)
	a1 := fromMontgomery(x.A1.v, fqParams)
	return MulU256(a1, fqParams.modulus).addU256(a0)
}

// Conj returns the Frobenius conjugate a0 - a1*u.
func (x Fq2) Conj() Fq2 {
	return Fq2{A0: x.A0, A1: x.A1.Neg()}
}

// Mul computes (a0+a1 u)(b0+b1 u) via Karatsuba: one fewer Fq
// multiplication than the schoolbook form.
func (x Fq2) Mul(y Fq2) Fq2 {
	t0 := x.A0.Mul(y.A0)
	t1 := x.A1.Mul(y.A1)
	t2 := x.A0.Add(x.A1).Mul(y.A0.Add(y.A1))
	return Fq2{
		A0: t0.Sub(t1),
		A1: t2.Sub(t0).Sub(t1),
	}
}

// Sqr computes x^2 via the complex-squaring identity
// (a0+a1 u)^2 = (a0+a1)(a0-a1) + 2 a0 a1 u.
func (x Fq2) Sqr() Fq2 {
	t0 := x.A0.Add(x.A1)
	t1 := x.A0.Sub(x.A1)
	t2 := x.A0.Add(x.A0)
	return Fq2{
		A0: t0.Mul(t1),
		A1: t2.Mul(x.A1),
	}
}

// MulByFq multiplies by an Fq scalar (scales both components).
func (x Fq2) MulByFq(c Fq) Fq2 {
	return Fq2{A0: x.A0.Mul(c), A1: x.A1.Mul(c)}
}

// MulByNonResidue multiplies x by the sextic/quadratic non-residue
// xi = 9+u used to build the tower and the G2 twist:
// (a0+a1 u)(9+u) = (9 a0 - a1) + (a0 + 9 a1) u.
func (x Fq2) MulByNonResidue() Fq2 {
	nine := x.A0.Double().Double().Double().Add(x.A0) // 9*a0
	nine1 := x.A1.Double().Double().Double().Add(x.A1) // 9*a1
	return Fq2{
		A0: nine.Sub(x.A1),
		A1: x.A0.Add(nine1),
	}
}

// Inv returns the multiplicative inverse of x, using the norm-based
// identity (a0+a1 u)^-1 = (a0-a1 u) / (a0^2+a1^2).
func (x Fq2) Inv() Fq2 {
	if x.IsZero() {
		return x
	}
	norm := x.A0.Sqr().Add(x.A1.Sqr())
	normInv := norm.Inv()
	return Fq2{
		A0: x.A0.Mul(normInv),
		A1: x.A1.Neg().Mul(normInv),
	}
}

// Sqrt returns a square root of x using the "complex method": reduce
// to a single Fq square root of the norm, then derive both components
// via the quadratic-residue case split, following the construction in
// Scott, "Implementing cryptographic pairings", §5. The candidate is
// always checked by squaring before being trusted.
func (x Fq2) Sqrt() (Fq2, bool) {
	if x.IsZero() {
		return Fq2Zero, true
	}
	if x.A1.IsZero() {
		// Purely real: either a0 is a residue in Fq, or -a0 is and the
		// root is purely imaginary (the norm a0^2 is always a residue,
		// so one of the two must hold).
		if c, ok := x.A0.Sqrt(); ok {
			return Fq2{A0: c, A1: FqZero}, true
		}
		c, ok := x.A0.Neg().Sqrt()
		if !ok {
			return Fq2{}, false
		}
		return Fq2{A0: FqZero, A1: c}, true
	}
	// alpha = a0^2 + a1^2
	alpha := x.A0.Sqr().Add(x.A1.Sqr())
	sqrtAlpha, ok := alpha.Sqrt()
	if !ok {
		return Fq2{}, false
	}
	two := FqOne.Double()
	twoInv := two.Inv()

	// delta = (a0 + sqrtAlpha) / 2; if that's not a QR use (a0 - sqrtAlpha)/2
	delta := x.A0.Add(sqrtAlpha).Mul(twoInv)
	if delta.Legendre() == -1 {
		delta = x.A0.Sub(sqrtAlpha).Mul(twoInv)
	}
	c0, ok := delta.Sqrt()
	if !ok {
		return Fq2{}, false
	}
	c1 := x.A1.Mul(c0.Double().Inv())
	cand := Fq2{A0: c0, A1: c1}
	if cand.Sqr().Equal(x) {
		return cand, true
	}
	return Fq2{}, false
}
