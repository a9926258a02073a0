package bn254

// Generic Montgomery-form arithmetic kernel, shared by Fq (modulus q)
// and Fr (modulus r): the limb-level CIOS multiplier, conditional-
// subtract reduction, and square-and-multiply exponentiation live here
// once, parameterized by a fieldParams record; Fq and Fr are distinct
// Go types that each hold only a U256 and forward to these functions
// with their package-level fieldParams (fqParams, frParams).
//
// The multiplication materializes the full 512-bit product and then
// reduces it with four word-by-word Montgomery rounds and one final
// conditional subtraction (see montMul).

import "math/bits"

// fieldParams describes one Montgomery-form modulus: its limbs, the
// CIOS reduction constant inv = -modulus^-1 mod 2^64, and R^2 mod
// modulus (used to convert an integer into Montgomery form by a single
// montMul(x, r2)).
type fieldParams struct {
	modulus U256
	inv     uint64
	r2      U256 // R^2 mod modulus, for toMontgomery
	one     U256 // R mod modulus, i.e. Montgomery form of 1
}

// montMul computes x*y*R^-1 mod modulus, where x and y are already in
// Montgomery form, and the result is too. Rather than fusing the
// multiply and the reduction (CIOS proper), this computes the full
// 512-bit product first and then applies separated Montgomery
// REDC (Handbook of Applied Cryptography, algorithm 14.32) to it: a
// few limb-operations slower than a fused pass but simpler to follow.
func montMul(x, y U256, p *fieldParams) U256 {
	prod := MulU256(x, y) // 8 limbs, prod[0] least significant

	var t [9]uint64 // t[0..7] = prod, t[8] = running overflow
	copy(t[:8], prod[:])

	for i := 0; i < 4; i++ {
		m := t[i] * p.inv

		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(m, p.modulus[j])
			var c uint64
			lo, c = bits.Add64(lo, t[i+j], 0)
			hi, _ = bits.Add64(hi, 0, c)
			lo, c = bits.Add64(lo, carry, 0)
			hi, _ = bits.Add64(hi, 0, c)
			t[i+j] = lo
			carry = hi
		}
		// propagate carry through the remaining limbs (including the
		// overflow slot), which by construction is enough room since
		// m*modulus + t[i..i+4] never exceeds 2^(64*5)-1 relative to
		// the running accumulator.
		k := i + 4
		for carry != 0 {
			sum, c := bits.Add64(t[k], carry, 0)
			t[k] = sum
			carry = c
			k++
		}
	}

	result := U256{t[4], t[5], t[6], t[7]}
	if t[8] != 0 {
		result, _ = result.subBorrow(p.modulus)
		return result
	}
	return condSub(result, p.modulus)
}

// condSub subtracts m from x if x >= m, otherwise returns x unchanged.
// Used to finish a reduction that may have left one trailing modulus
// worth of slack.
func condSub(x, m U256) U256 {
	diff, borrow := x.subBorrow(m)
	if borrow == 0 {
		return diff
	}
	return x
}

// montAdd returns (x+y) mod modulus for Montgomery-form operands
// (addition doesn't care about the representation, only the modulus).
func montAdd(x, y U256, p *fieldParams) U256 {
	return x.addMod(y, p.modulus)
}

// montSub returns (x-y) mod modulus.
func montSub(x, y U256, p *fieldParams) U256 {
	return x.subMod(y, p.modulus)
}

// montNeg returns -x mod modulus, zero if x is zero.
func montNeg(x U256, p *fieldParams) U256 {
	if x.IsZero() {
		return x
	}
	r, _ := p.modulus.subBorrow(x)
	return r
}

// toMontgomery converts a canonical (non-Montgomery) integer x, with
// x < modulus, into Montgomery form.
func toMontgomery(x U256, p *fieldParams) U256 {
	return montMul(x, p.r2, p)
}

// fromMontgomery converts a Montgomery-form value back to a canonical
// integer by multiplying by 1 (i.e. by R^-1 implicitly, since montMul
// divides by R).
func fromMontgomery(x U256, p *fieldParams) U256 {
	return montMul(x, U256{1, 0, 0, 0}, p)
}

// montPow computes base^exp mod modulus, base and the result in
// Montgomery form, via left-to-right square-and-multiply over the
// 256-bit canonical exponent exp. Used for Fermat inversion
// (exp = modulus-2) and the q≡3 mod 4 square-root shortcut
// (exp = (q+1)/4).
func montPow(base U256, exp U256, p *fieldParams) U256 {
	result := p.one // Montgomery form of 1
	n := exp.BitLen()
	for i := n - 1; i >= 0; i-- {
		result = montMul(result, result, p)
		if exp.Bit(i) == 1 {
			result = montMul(result, base, p)
		}
	}
	return result
}
