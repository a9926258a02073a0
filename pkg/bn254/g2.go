package bn254

// G2 is a point on the sextic twist E'/Fq2, held in Jacobian
// coordinates.
type G2 struct {
	X, Y, Z Fq2
}

// twistB is the twist curve coefficient b' = 3*(9+u)^-1, precomputed
// once from its canonical big-integer value.
var twistB = Fq2{
	A0: newFqFromCanonical(U256{0x3267e6dc24a138e5, 0xb5b4c5e559dbefa3, 0x81be18991be06ac3, 0x2b149d40ceb8aaae}),
	A1: newFqFromCanonical(U256{0xe4a2bd0685c315d2, 0xa74fa084e52d1852, 0xcd2cafadeed8fdf4, 0x009713b03af0fed4}),
}

// G2Infinity is the point at infinity.
var G2Infinity = G2{X: Fq2One, Y: Fq2One, Z: Fq2Zero}

// G2Generator is the standard BN254 G2 generator.
var G2Generator = G2{
	X: Fq2{
		A0: newFqFromCanonical(U256{0x46debd5cd992f6ed, 0x674322d4f75edadd, 0x426a00665e5c4479, 0x1800deef121f1e76}),
		A1: newFqFromCanonical(U256{0x97e485b7aef312c2, 0xf1aa493335a9e712, 0x7260bfb731fb5d25, 0x198e9393920d483a}),
	},
	Y: Fq2{
		A0: newFqFromCanonical(U256{0x4ce6cc0166fa7daa, 0xe3d1e7690c43d37b, 0x4aab71808dcb408f, 0x12c85ea5db8c6deb}),
		A1: newFqFromCanonical(U256{0x55acdadcd122975b, 0xbc4b313370b38ef3, 0xec9e99ad690c3395, 0x090689d0585ff075}),
	},
	Z: Fq2One,
}

func (p G2) IsInfinity() bool { return p.Z.IsZero() }

// AffineG2 is a checked affine G2 point, validated on construction.
type AffineG2 struct {
	X, Y Fq2
}

// NewAffineG2 validates that (x,y) lies on the twist y^2=x^3+b' and
// has order dividing r. G1's whole curve is the prime-order subgroup,
// but the twist is not, so on-curve alone is not enough here: a point
// outside the r-torsion fed into the pairing breaks its bilinearity
// guarantees.
func NewAffineG2(x, y Fq2) (AffineG2, error) {
	if !g2OnCurveAffine(x, y) {
		return AffineG2{}, newErr(NotMember, "point not on G2 twist curve")
	}
	a := AffineG2{X: x, Y: y}
	if !a.ToJacobian().IsInSubgroup() {
		return AffineG2{}, newErr(NotMember, "point not in r-order G2 subgroup")
	}
	return a, nil
}

func g2OnCurveAffine(x, y Fq2) bool {
	lhs := y.Sqr()
	rhs := x.Sqr().Mul(x).Add(twistB)
	return lhs.Equal(rhs)
}

func (a AffineG2) ToJacobian() G2 {
	return G2{X: a.X, Y: a.Y, Z: Fq2One}
}

func (p G2) ToAffine() (AffineG2, bool) {
	if p.IsInfinity() {
		return AffineG2{}, false
	}
	zInv := p.Z.Inv()
	zInv2 := zInv.Sqr()
	zInv3 := zInv2.Mul(zInv)
	return AffineG2{X: p.X.Mul(zInv2), Y: p.Y.Mul(zInv3)}, true
}

// IsOnCurve checks the twist equation in Jacobian form, without a
// subgroup check (see IsInSubgroup for that — curve membership and
// subgroup membership are distinct checks for G2).
func (p G2) IsOnCurve() bool {
	if p.IsInfinity() {
		return true
	}
	y2 := p.Y.Sqr()
	z2 := p.Z.Sqr()
	z6 := z2.Mul(z2).Mul(z2)
	x3 := p.X.Sqr().Mul(p.X)
	rhs := x3.Add(twistB.Mul(z6))
	return y2.Equal(rhs)
}

// rOrder is the scalar field order r, the order of both G1 and G2.
var rOrder = frParams.modulus

// IsInSubgroup checks that p has order dividing r by computing [r]p
// and testing for infinity. The twist's group of points is larger than
// the order-r subgroup G2, so a point on the twist curve need not lie
// in G2; NewAffineG2 runs this check on every construction.
func (p G2) IsInSubgroup() bool {
	return p.scalarMulU256(rOrder).IsInfinity()
}

func (p G2) Neg() G2 {
	if p.IsInfinity() {
		return p
	}
	return G2{X: p.X, Y: p.Y.Neg(), Z: p.Z}
}

// Double mirrors G1's Jacobian doubling formula over Fq2 instead of Fq.
func (p G2) Double() G2 {
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
	return G2{X: x3, Y: y3, Z: z3}
}

// Add mirrors G1's Jacobian addition formula over Fq2.
func (p G2) Add(q G2) G2 {
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
			return G2Infinity
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
	return G2{X: x3, Y: y3, Z: z3}
}

func (p G2) AddMixed(q AffineG2) G2 {
	return p.Add(q.ToJacobian())
}

// ScalarMul computes [k]p for a scalar field element.
func (p G2) ScalarMul(k Fr) G2 {
	return p.scalarMulU256(k.CanonicalU256())
}

func (p G2) scalarMulU256(scalar U256) G2 {
	result := G2Infinity
	n := scalar.BitLen()
	for i := n - 1; i >= 0; i-- {
		result = result.Double()
		if scalar.Bit(i) == 1 {
			result = result.Add(p)
		}
	}
	return result
}

func (p G2) Equal(q G2) bool {
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
