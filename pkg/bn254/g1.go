package bn254

// G1 is a point on the base curve y^2 = x^3 + 3 over Fq, held in
// Jacobian coordinates (x,y,z) representing the affine point
// (x/z^2, y/z^3).
type G1 struct {
	X, Y, Z Fq
}

// curveB is the curve coefficient b=3 in Fq (Montgomery form computed
// from the small-integer literal via repeated doubling/adding, not a
// magic precomputed constant, since it is cheap and obviously correct
// this way).
var curveB = FqOne.Double().Add(FqOne) // 3

// G1Infinity is the point at infinity (Z=0), the Jacobian identity.
var G1Infinity = G1{X: FqOne, Y: FqOne, Z: FqZero}

// G1Generator is the standard generator (1,2).
var G1Generator = G1{X: FqOne, Y: FqOne.Double(), Z: FqOne}

// IsInfinity reports whether p is the point at infinity.
func (p G1) IsInfinity() bool { return p.Z.IsZero() }

// AffineG1 is a checked affine G1 point: constructing one validates
// membership in the curve. AffineG1 carries no identity representation
// of its own, matching EIP-196's "all-zero bytes" convention for
// infinity being handled at the encoding layer instead.
type AffineG1 struct {
	X, Y Fq
}

// NewAffineG1 validates that (x,y) lies on y^2=x^3+3 over Fq.
func NewAffineG1(x, y Fq) (AffineG1, error) {
	if !g1OnCurveAffine(x, y) {
		return AffineG1{}, newErr(NotMember, "point not on G1 curve")
	}
	return AffineG1{X: x, Y: y}, nil
}

func g1OnCurveAffine(x, y Fq) bool {
	lhs := y.Sqr()
	rhs := x.Sqr().Mul(x).Add(curveB)
	return lhs.Equal(rhs)
}

// ToJacobian lifts an affine point to Jacobian form with Z=1.
func (a AffineG1) ToJacobian() G1 {
	return G1{X: a.X, Y: a.Y, Z: FqOne}
}

// ToAffine converts p to affine coordinates. It reports false, with a
// zero AffineG1, for any point with Z=0 (the point at infinity has no
// affine form).
func (p G1) ToAffine() (AffineG1, bool) {
	if p.IsInfinity() {
		return AffineG1{}, false
	}
	zInv := p.Z.Inv()
	zInv2 := zInv.Sqr()
	zInv3 := zInv2.Mul(zInv)
	return AffineG1{X: p.X.Mul(zInv2), Y: p.Y.Mul(zInv3)}, true
}

// IsOnCurve reports whether p satisfies the curve equation (checked in
// Jacobian form: y^2 = x^3 + 3z^6, avoiding an inversion).
func (p G1) IsOnCurve() bool {
	if p.IsInfinity() {
		return true
	}
	y2 := p.Y.Sqr()
	z2 := p.Z.Sqr()
	z6 := z2.Mul(z2).Mul(z2)
	x3 := p.X.Sqr().Mul(p.X)
	rhs := x3.Add(curveB.Mul(z6))
	return y2.Equal(rhs)
}

// Neg returns -p.
func (p G1) Neg() G1 {
	if p.IsInfinity() {
		return p
	}
	return G1{X: p.X, Y: p.Y.Neg(), Z: p.Z}
}

// Double returns p+p, via the standard Jacobian doubling formulas for
// a=0 curves (dbl-2009-l).
func (p G1) Double() G1 {
	if p.IsInfinity() {
		return p
	}
	a := p.X.Sqr()
	b := p.Y.Sqr()
	c := b.Sqr()
	d := p.X.Add(b).Sqr().Sub(a).Sub(c).Double()
	e := a.Double().Add(a)
	f := e.Sqr()
	x3 := f.Sub(d.Double())
	y3 := e.Mul(d.Sub(x3)).Sub(c.Double().Double().Double())
	z3 := p.Y.Mul(p.Z).Double()
	return G1{X: x3, Y: y3, Z: z3}
}

// Add returns p+q via the standard Jacobian addition formulas
// (add-2007-bl), with the identity short-circuits required at the
// edges of the group.
func (p G1) Add(q G1) G1 {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}
	z1z1 := p.Z.Sqr()
	z2z2 := q.Z.Sqr()
	u1 := p.X.Mul(z2z2)
	u2 := q.X.Mul(z1z1)
	s1 := p.Y.Mul(q.Z).Mul(z2z2)
	s2 := q.Y.Mul(p.Z).Mul(z1z1)

	if u1.Equal(u2) {
		if !s1.Equal(s2) {
			return G1Infinity
		}
		return p.Double()
	}

	h := u2.Sub(u1)
	i := h.Double().Sqr()
	j := h.Mul(i)
	r := s2.Sub(s1).Double()
	v := u1.Mul(i)
	x3 := r.Sqr().Sub(j).Sub(v.Double())
	y3 := r.Mul(v.Sub(x3)).Sub(s1.Mul(j).Double())
	z3 := p.Z.Add(q.Z).Sqr().Sub(z1z1).Sub(z2z2).Mul(h)
	return G1{X: x3, Y: y3, Z: z3}
}

// AddMixed adds an affine point q (Z implicitly 1) to Jacobian p.
func (p G1) AddMixed(q AffineG1) G1 {
	return p.Add(q.ToJacobian())
}

// ScalarMul computes [k]p via left-to-right double-and-add over k's
// canonical 256-bit representation, walking the bits MSB-first.
func (p G1) ScalarMul(k Fr) G1 {
	result := G1Infinity
	scalar := k.CanonicalU256()
	n := scalar.BitLen()
	for i := n - 1; i >= 0; i-- {
		result = result.Double()
		if scalar.Bit(i) == 1 {
			result = result.Add(p)
		}
	}
	return result
}

// Equal reports whether p and q represent the same projective point,
// comparing cross-multiplied affine coordinates to avoid inversions.
func (p G1) Equal(q G1) bool {
	if p.IsInfinity() && q.IsInfinity() {
		return true
	}
	if p.IsInfinity() != q.IsInfinity() {
		return false
	}
	z1z1 := p.Z.Sqr()
	z2z2 := q.Z.Sqr()
	if !p.X.Mul(z2z2).Equal(q.X.Mul(z1z1)) {
		return false
	}
	z1z1z1 := z1z1.Mul(p.Z)
	z2z2z2 := z2z2.Mul(q.Z)
	return p.Y.Mul(z2z2z2).Equal(q.Y.Mul(z1z1z1))
}
