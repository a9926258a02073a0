package bn254

// Fq6 is the cubic extension Fq2[v]/(v^3 - xi), xi = 9+u the same
// non-residue used for the G2 twist, elements written
// c0 + c1 v + c2 v^2. Multiplication and squaring use the
// Toom-Cook-3/Karatsuba-style tower formulas (6 Fq2 muls instead of 9)
// described in Devegili-Scott-Dahab, "Multiplication and Squaring on
// Pairing-Friendly Fields".
type Fq6 struct {
	C0, C1, C2 Fq2
}

var (
	Fq6Zero = Fq6{C0: Fq2Zero, C1: Fq2Zero, C2: Fq2Zero}
	Fq6One  = Fq6{C0: Fq2One, C1: Fq2Zero, C2: Fq2Zero}
)

func (x Fq6) IsZero() bool {
	return x.C0.IsZero() && x.C1.IsZero() && x.C2.IsZero()
}

func (x Fq6) Equal(y Fq6) bool {
	return x.C0.Equal(y.C0) && x.C1.Equal(y.C1) && x.C2.Equal(y.C2)
}

func (x Fq6) Add(y Fq6) Fq6 {
	return Fq6{C0: x.C0.Add(y.C0), C1: x.C1.Add(y.C1), C2: x.C2.Add(y.C2)}
}

func (x Fq6) Sub(y Fq6) Fq6 {
	return Fq6{C0: x.C0.Sub(y.C0), C1: x.C1.Sub(y.C1), C2: x.C2.Sub(y.C2)}
}

func (x Fq6) Neg() Fq6 {
	return Fq6{C0: x.C0.Neg(), C1: x.C1.Neg(), C2: x.C2.Neg()}
}

// Mul multiplies two Fq6 elements via the Karatsuba-style tower
// product: t_ij = c_i * d_j computed pairwise, combined with the
// v^3 = xi reduction.
func (x Fq6) Mul(y Fq6) Fq6 {
	v0 := x.C0.Mul(y.C0)
	v1 := x.C1.Mul(y.C1)
	v2 := x.C2.Mul(y.C2)

	c0 := x.C1.Add(x.C2).Mul(y.C1.Add(y.C2)).Sub(v1).Sub(v2).MulByNonResidue().Add(v0)
	c1 := x.C0.Add(x.C1).Mul(y.C0.Add(y.C1)).Sub(v0).Sub(v1).Add(v2.MulByNonResidue())
	c2 := x.C0.Add(x.C2).Mul(y.C0.Add(y.C2)).Sub(v0).Add(v1).Sub(v2)

	return Fq6{C0: c0, C1: c1, C2: c2}
}

// Sqr squares x via the CH-SQR2 method for cubic extensions
// (Devegili-Scott-Dahab §4).
func (x Fq6) Sqr() Fq6 {
	s0 := x.C0.Sqr()
	ab := x.C0.Mul(x.C1)
	s1 := ab.Double()
	s2 := x.C0.Sub(x.C1).Add(x.C2).Sqr()
	bc := x.C1.Mul(x.C2)
	s3 := bc.Double()
	s4 := x.C2.Sqr()

	c0 := s0.Add(s3.MulByNonResidue())
	c1 := s1.Add(s4.MulByNonResidue())
	c2 := s1.Add(s2).Add(s3).Sub(s0).Sub(s4)

	return Fq6{C0: c0, C1: c1, C2: c2}
}

// MulByFq2 multiplies x by an Fq2 scalar (scales every coefficient).
func (x Fq6) MulByFq2(c Fq2) Fq6 {
	return Fq6{C0: x.C0.Mul(c), C1: x.C1.Mul(c), C2: x.C2.Mul(c)}
}

// MulByNonResidue multiplies x by v (the Fq6-internal shift used when
// building Fq12 = Fq6[w]/(w^2-v)): (c0+c1 v+c2 v^2)*v
// = c2*xi + c0 v + c1 v^2.
func (x Fq6) MulByNonResidue() Fq6 {
	return Fq6{C0: x.C2.MulByNonResidue(), C1: x.C0, C2: x.C1}
}

// Inv returns the multiplicative inverse of x via the direct formula
// for inversion in cubic extensions (Devegili-Scott-Dahab §4).
func (x Fq6) Inv() Fq6 {
	if x.IsZero() {
		return x
	}
	t0 := x.C0.Sqr().Sub(x.C1.Mul(x.C2).MulByNonResidue())
	t1 := x.C2.Sqr().MulByNonResidue().Sub(x.C0.Mul(x.C1))
	t2 := x.C1.Sqr().Sub(x.C0.Mul(x.C2))

	t6 := x.C2.Mul(t1).Add(x.C1.Mul(t2)).MulByNonResidue().Add(x.C0.Mul(t0)).Inv()

	return Fq6{
		C0: t6.Mul(t0),
		C1: t6.Mul(t1),
		C2: t6.Mul(t2),
	}
}
