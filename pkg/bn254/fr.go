package bn254

// Fr is the scalar field of BN254 (the order of the G1/G2 groups),
// values held internally in Montgomery form over the prime modulus r.
// Structurally identical to Fq, instantiated against a different
// fieldParams record.

var frParams = &fieldParams{
	modulus: U256{0x43e1f593f0000001, 0x2833e84879b97091, 0xb85045b68181585d, 0x30644e72e131a029},
	inv:     0xc2e1f593efffffff,
	r2:      U256{0x1bb8e645ae216da7, 0x53fe3ab1e35c59e3, 0x8c49833d53bb8085, 0x0216d0b17f4e44a5},
	one:     U256{0xac96341c4ffffffb, 0x36fc76959f60cd29, 0x666ea36f7879462e, 0x0e0a77c19a07df2f},
}

var rMinus2 = U256{0x43e1f593efffffff, 0x2833e84879b97091, 0xb85045b68181585d, 0x30644e72e131a029}

// Fr is an element of the scalar field, stored in Montgomery form.
type Fr struct {
	v U256
}

var (
	FrZero = Fr{v: U256{}}
	FrOne  = Fr{v: frParams.one}
)

func newFrFromCanonical(x U256) Fr {
	return Fr{v: toMontgomery(x, frParams)}
}

// FrFromBytes decodes a big-endian 32-byte value as an Fr element.
// Returns ErrNotMember if the value is >= r.
func FrFromBytes(b []byte) (Fr, error) {
	x, err := FromSlice(b)
	if err != nil {
		return Fr{}, err
	}
	if x.Cmp(frParams.modulus) >= 0 {
		return Fr{}, newErr(NotMember, "fr scalar >= r")
	}
	return newFrFromCanonical(x), nil
}

// FrFromSlice decodes a big-endian byte slice as a scalar, reducing it
// modulo r rather than rejecting out-of-range values. This is a
// deliberate asymmetry with FqFromBytes/G1/G2 coordinate decoding:
// scalars feeding a multiplication are conventionally accepted
// unreduced (matching EIP-196's scalar-mul precompile, which never
// rejects an oversized scalar), while field/group coordinates must be
// canonical or the point isn't well-defined.
func FrFromSlice(b []byte) (Fr, error) {
	x, err := FromSlice(b)
	if err != nil {
		return Fr{}, err
	}
	if x.Cmp(frParams.modulus) < 0 {
		return newFrFromCanonical(x), nil
	}
	wide := U512{x[0], x[1], x[2], x[3], 0, 0, 0, 0}
	_, rem, _ := wide.DivRem(frParams.modulus)
	return newFrFromCanonical(rem), nil
}

// FrInterpret reduces a 64-byte big-endian value modulo r, for callers
// deriving a scalar from wide hash output. Only the DivRem remainder is
// used; the quotient being out of range is irrelevant here.
func FrInterpret(b []byte) (Fr, error) {
	v, err := U512FromSlice(b)
	if err != nil {
		return Fr{}, err
	}
	_, rem, _ := v.DivRem(frParams.modulus)
	return newFrFromCanonical(rem), nil
}

// Bytes encodes x as a canonical big-endian 32-byte value.
func (x Fr) Bytes() [32]byte {
	return fromMontgomery(x.v, frParams).Bytes32()
}

func (x Fr) Add(y Fr) Fr { return Fr{v: montAdd(x.v, y.v, frParams)} }
func (x Fr) Sub(y Fr) Fr { return Fr{v: montSub(x.v, y.v, frParams)} }
func (x Fr) Neg() Fr { return Fr{v: montNeg(x.v, frParams)} }
func (x Fr) Mul(y Fr) Fr { return Fr{v: montMulDispatch(x.v, y.v, frParams)} }
func (x Fr) Sqr() Fr     { return Fr{v: montMulDispatch(x.v, x.v, frParams)} }

func (x Fr) IsZero() bool    { return x.v.IsZero() }
func (x Fr) Equal(y Fr) bool { return x.v == y.v }

func (x Fr) Inv() Fr {
	if x.IsZero() {
		return x
	}
	return Fr{v: montPow(x.v, rMinus2, frParams)}
}

// CanonicalU256 returns the canonical (non-Montgomery) integer value
// of x, the representation ScalarMul's double-and-add loop walks bit
// by bit.
func (x Fr) CanonicalU256() U256 {
	return fromMontgomery(x.v, frParams)
}
