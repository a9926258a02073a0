package bn254

// EIP-196/EIP-197 standardized byte encodings for G1/G2 points and the
// batched pairing check, plus the plain scalar/coordinate codecs they
// build on. Two deliberate asymmetries worth noting up front: Fr slice
// decoding reduces mod r instead of rejecting out-of-range scalars
// (see FrFromSlice in fr.go), and the G2 compressed tag bytes are
// 0x0A/0x0B rather than G1's 0x02/0x03.

// G1UncompressedSize/G1CompressedSize/G2UncompressedSize/
// G2CompressedSize are the EIP-196/197 wire sizes.
const (
	G1UncompressedSize = 64
	G1CompressedSize   = 33
	G2UncompressedSize = 128
	G2CompressedSize   = 65
)

// EncodeG1Uncompressed encodes p as 64 bytes: x (32B) || y (32B), all
// zero for the point at infinity.
func EncodeG1Uncompressed(p G1) [G1UncompressedSize]byte {
	var out [G1UncompressedSize]byte
	if p.IsInfinity() {
		return out
	}
	a, _ := p.ToAffine()
	xb := a.X.Bytes()
	yb := a.Y.Bytes()
	copy(out[0:32], xb[:])
	copy(out[32:64], yb[:])
	return out
}

// DecodeG1Uncompressed decodes 64 bytes as an uncompressed G1 point.
// All-zero input decodes to the point at infinity (EIP-196
// convention); any other input must be a valid on-curve affine point.
func DecodeG1Uncompressed(b []byte) (G1, error) {
	if len(b) != G1UncompressedSize {
		return G1{}, newErr(InvalidSliceLength, "g1 uncompressed requires 64 bytes")
	}
	if isAllZero(b) {
		return G1Infinity, nil
	}
	x, err := FqFromBytes(b[0:32])
	if err != nil {
		return G1{}, err
	}
	y, err := FqFromBytes(b[32:64])
	if err != nil {
		return G1{}, err
	}
	a, err := NewAffineG1(x, y)
	if err != nil {
		return G1{}, err
	}
	return a.ToJacobian(), nil
}

// fqParity returns 0 for an even canonical representative, 1 for odd,
// used by the G1 compression tags (G2 orders roots with g2YIsLarger).
func fqParity(y Fq) uint {
	b := y.Bytes()
	return uint(b[31] & 1)
}

// EncodeG1Compressed encodes p as a tag byte (0x02 even y, 0x03 odd y)
// followed by x (32B). The point at infinity is not representable in
// compressed form here; callers needing an infinity-capable wire
// format use the uncompressed encoding, which reserves the all-zero
// pattern for it.
func EncodeG1Compressed(p G1) ([G1CompressedSize]byte, error) {
	var out [G1CompressedSize]byte
	if p.IsInfinity() {
		return out, newErr(InvalidEncoding, "point at infinity has no compressed G1 form")
	}
	a, _ := p.ToAffine()
	if fqParity(a.Y) == 0 {
		out[0] = 0x02
	} else {
		out[0] = 0x03
	}
	xb := a.X.Bytes()
	copy(out[1:33], xb[:])
	return out, nil
}

// DecodeG1Compressed decodes a tag-prefixed 33-byte compressed G1
// point, recovering y via Fq.Sqrt and selecting the root matching the
// tag's parity.
func DecodeG1Compressed(b []byte) (G1, error) {
	if len(b) != G1CompressedSize {
		return G1{}, newErr(InvalidSliceLength, "g1 compressed requires 33 bytes")
	}
	tag := b[0]
	if tag != 0x02 && tag != 0x03 {
		return G1{}, newErr(InvalidEncoding, "unrecognized g1 compression tag")
	}
	x, err := FqFromBytes(b[1:33])
	if err != nil {
		return G1{}, err
	}
	rhs := x.Sqr().Mul(x).Add(curveB)
	y, ok := rhs.Sqrt()
	if !ok {
		return G1{}, newErr(NotMember, "x has no square root on G1 curve")
	}
	if fqParity(y) != uint(tag-0x02) {
		y = y.Neg()
	}
	a, err := NewAffineG1(x, y)
	if err != nil {
		return G1{}, err
	}
	return a.ToJacobian(), nil
}

// EncodeG2Uncompressed encodes p as 128 bytes, imaginary-then-real
// ordering per EIP-197: x.A1 || x.A0 || y.A1 || y.A0.
func EncodeG2Uncompressed(p G2) [G2UncompressedSize]byte {
	var out [G2UncompressedSize]byte
	if p.IsInfinity() {
		return out
	}
	a, _ := p.ToAffine()
	x1 := a.X.A1.Bytes()
	x0 := a.X.A0.Bytes()
	y1 := a.Y.A1.Bytes()
	y0 := a.Y.A0.Bytes()
	copy(out[0:32], x1[:])
	copy(out[32:64], x0[:])
	copy(out[64:96], y1[:])
	copy(out[96:128], y0[:])
	return out
}

// DecodeG2Uncompressed decodes 128 bytes (imaginary-then-real
// ordering) as an uncompressed G2 point.
func DecodeG2Uncompressed(b []byte) (G2, error) {
	if len(b) != G2UncompressedSize {
		return G2{}, newErr(InvalidSliceLength, "g2 uncompressed requires 128 bytes")
	}
	if isAllZero(b) {
		return G2Infinity, nil
	}
	x1, err := FqFromBytes(b[0:32])
	if err != nil {
		return G2{}, err
	}
	x0, err := FqFromBytes(b[32:64])
	if err != nil {
		return G2{}, err
	}
	y1, err := FqFromBytes(b[64:96])
	if err != nil {
		return G2{}, err
	}
	y0, err := FqFromBytes(b[96:128])
	if err != nil {
		return G2{}, err
	}
	a, err := NewAffineG2(Fq2{A0: x0, A1: x1}, Fq2{A0: y0, A1: y1})
	if err != nil {
		return G2{}, err
	}
	return a.ToJacobian(), nil
}

// g2YIsLarger reports whether y is the larger of the two square roots
// {y, -y}, comparing canonical 512-bit representations (a1*q + a0).
// The 0x0A/0x0B compressed G2 tags order roots this way rather than by
// G1's least-significant-bit parity.
func g2YIsLarger(y Fq2) bool {
	return y.ToU512().cmp(y.Neg().ToU512()) > 0
}

// EncodeG2Compressed encodes p as a tag byte (0x0A for the smaller
// root, 0x0B for the larger) followed by x as the 64-byte integer
// x1*q + x0. Unlike the uncompressed form's two independent 32-byte
// coordinates, the compressed x rides in the packed U512 form that
// Fq2FromSlice decodes.
func EncodeG2Compressed(p G2) ([G2CompressedSize]byte, error) {
	var out [G2CompressedSize]byte
	if p.IsInfinity() {
		return out, newErr(InvalidEncoding, "point at infinity has no compressed G2 form")
	}
	a, _ := p.ToAffine()
	if g2YIsLarger(a.Y) {
		out[0] = 0x0B
	} else {
		out[0] = 0x0A
	}
	xb := a.X.Bytes64()
	copy(out[1:65], xb[:])
	return out, nil
}

// DecodeG2Compressed decodes a tag-prefixed 65-byte compressed G2
// point.
func DecodeG2Compressed(b []byte) (G2, error) {
	if len(b) != G2CompressedSize {
		return G2{}, newErr(InvalidSliceLength, "g2 compressed requires 65 bytes")
	}
	tag := b[0]
	if tag != 0x0A && tag != 0x0B {
		return G2{}, newErr(InvalidEncoding, "unrecognized g2 compression tag")
	}
	x, err := Fq2FromSlice(b[1:65])
	if err != nil {
		return G2{}, err
	}
	rhs := x.Sqr().Mul(x).Add(twistB)
	y, ok := rhs.Sqrt()
	if !ok {
		return G2{}, newErr(NotMember, "x has no square root on G2 twist curve")
	}
	wantLarger := tag == 0x0B
	if g2YIsLarger(y) != wantLarger {
		y = y.Neg()
	}
	a, err := NewAffineG2(x, y)
	if err != nil {
		return G2{}, err
	}
	return a.ToJacobian(), nil
}

func isAllZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// EIP197PairingCheck implements the precompile entry point: input is a
// sequence of 192-byte chunks (64B G1 || 128B G2), empty input is
// vacuously true, and chunk count is still subject to maxPairs.
func EIP197PairingCheck(input []byte) (bool, error) {
	const chunkSize = G1UncompressedSize + G2UncompressedSize
	if len(input)%chunkSize != 0 {
		return false, newErr(InvalidSliceLength, "pairing check input must be a multiple of 192 bytes")
	}
	n := len(input) / chunkSize
	if n == 0 {
		return true, nil
	}
	if n > maxPairs {
		return false, ErrTooManyPairs
	}
	ps := make([]G1, n)
	qs := make([]G2, n)
	for i := 0; i < n; i++ {
		chunk := input[i*chunkSize : (i+1)*chunkSize]
		p, err := DecodeG1Uncompressed(chunk[0:64])
		if err != nil {
			return false, err
		}
		q, err := DecodeG2Uncompressed(chunk[64:192])
		if err != nil {
			return false, err
		}
		ps[i] = p
		qs[i] = q
	}
	return PairingCheck(ps, qs)
}
