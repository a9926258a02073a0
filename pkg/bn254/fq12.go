package bn254

// Fq12 is the full extension tower's top level, Fq6[w]/(w^2-v),
// elements written c0 + c1 w. This is the target field Gt of the
// pairing.
type Fq12 struct {
	C0, C1 Fq6
}

var (
	Fq12Zero = Fq12{C0: Fq6Zero, C1: Fq6Zero}
	Fq12One  = Fq12{C0: Fq6One, C1: Fq6Zero}
)

func (x Fq12) IsZero() bool    { return x.C0.IsZero() && x.C1.IsZero() }
func (x Fq12) Equal(y Fq12) bool { return x.C0.Equal(y.C0) && x.C1.Equal(y.C1) }

func (x Fq12) Add(y Fq12) Fq12 {
	return Fq12{C0: x.C0.Add(y.C0), C1: x.C1.Add(y.C1)}
}

func (x Fq12) Sub(y Fq12) Fq12 {
	return Fq12{C0: x.C0.Sub(y.C0), C1: x.C1.Sub(y.C1)}
}

func (x Fq12) Neg() Fq12 {
	return Fq12{C0: x.C0.Neg(), C1: x.C1.Neg()}
}

// Conj returns the conjugate over Fq6, c0 - c1 w — used in the
// easy part of final exponentiation as the Frobenius-degree-6 map.
func (x Fq12) Conj() Fq12 {
	return Fq12{C0: x.C0, C1: x.C1.Neg()}
}

// Mul multiplies two Fq12 elements via Karatsuba over Fq6
// (3 Fq6 muls instead of 4).
func (x Fq12) Mul(y Fq12) Fq12 {
	v0 := x.C0.Mul(y.C0)
	v1 := x.C1.Mul(y.C1)
	c0 := v0.Add(v1.MulByNonResidue())
	c1 := x.C0.Add(x.C1).Mul(y.C0.Add(y.C1)).Sub(v0).Sub(v1)
	return Fq12{C0: c0, C1: c1}
}

// Sqr squares x via the complex-squaring identity over Fq6:
// (c0+c1 w)^2 = (c0+c1)(c0+c1 v) - c0 c1 (1+v) + 2 c0 c1 w,
// computed here in the equivalent two-multiplication form.
func (x Fq12) Sqr() Fq12 {
	t0 := x.C0.Sub(x.C1)
	t1 := x.C0.Sub(x.C1.MulByNonResidue())
	t2 := x.C0.Mul(x.C1)
	t3 := t0.Mul(t1).Add(t2)
	return Fq12{
		C0: t3.Add(t2.MulByNonResidue()),
		C1: t2.Add(t2),
	}
}

// Inv returns the multiplicative inverse via the norm formula over
// the quadratic extension Fq6[w]/(w^2-v).
func (x Fq12) Inv() Fq12 {
	if x.IsZero() {
		return x
	}
	t := x.C0.Sqr().Sub(x.C1.Sqr().MulByNonResidue()).Inv()
	return Fq12{
		C0: x.C0.Mul(t),
		C1: x.C1.Neg().Mul(t),
	}
}

// Exp computes x^e for a canonical 256-bit exponent e via left-to-
// right square-and-multiply.
func (x Fq12) Exp(e U256) Fq12 {
	result := Fq12One
	n := e.BitLen()
	for i := n - 1; i >= 0; i-- {
		result = result.Sqr()
		if e.Bit(i) == 1 {
			result = result.Mul(x)
		}
	}
	return result
}

// ExpBytes computes x^e for an exponent e given as a big-endian byte
// slice of arbitrary length, via plain square-and-multiply, for
// exponents wider than 256 bits. The decomposed hard part of final
// exponentiation is cross-checked against this on the literal
// (q^4-q^2+1)/r.
func (x Fq12) ExpBytes(e []byte) Fq12 {
	result := Fq12One
	for _, byt := range e {
		for bit := 7; bit >= 0; bit-- {
			result = result.Sqr()
			if (byt>>uint(bit))&1 == 1 {
				result = result.Mul(x)
			}
		}
	}
	return result
}

// FrobeniusMap applies the q^power Frobenius endomorphism, power in
// {1,2,3}, via the precomputed gamma coefficient tables in
// pairing.go. For odd powers each coefficient is first conjugated in
// Fq2 (the q-power Frobenius on Fq2 itself); Frobenius^2 fixes Fq2
// pointwise, so the even power skips the conjugation. The coefficient
// of w^k is then scaled by gamma[k-1] = xi^(k*(q^power-1)/6), the
// correction for Frobenius not fixing w.
func (x Fq12) FrobeniusMap(power int) Fq12 {
	var g *[5]Fq2
	conj := true
	switch power {
	case 1:
		g = &frobGamma1
	case 2:
		g = &frobGamma2
		conj = false
	case 3:
		g = &frobGamma3
	default:
		panic("bn254: FrobeniusMap power must be 1, 2, or 3")
	}
	coeff := func(c Fq2, k int) Fq2 {
		if conj {
			c = c.Conj()
		}
		return c.Mul(g[k-1])
	}
	// Tower positions in powers of w: C0 holds the even powers
	// (1, w^2, w^4), C1 the odd (w, w^3, w^5).
	c00 := x.C0.C0
	if conj {
		c00 = c00.Conj()
	}
	c0 := Fq6{
		C0: c00,
		C1: coeff(x.C0.C1, 2),
		C2: coeff(x.C0.C2, 4),
	}
	c1 := Fq6{
		C0: coeff(x.C1.C0, 1),
		C1: coeff(x.C1.C1, 3),
		C2: coeff(x.C1.C2, 5),
	}
	return Fq12{C0: c0, C1: c1}
}
