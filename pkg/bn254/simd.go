package bn254

// Optional accelerated Montgomery-multiplication path, gated on
// runtime CPU feature detection rather than a build tag: check once at
// package init whether the hardware supports the instructions the fast
// path wants, and dispatch through a function so callers never branch
// on it themselves.
//
// There is no actual assembly fast path here — writing unverifiable
// ADX/BMI2 assembly without a way to check it against real hardware
// would be reckless. What's real is the feature-detection plumbing and
// the contract it must satisfy: montMulAccelerated must be
// bit-identical to montMul for every input, which simd_test.go checks
// by forcing both paths and comparing.

import "github.com/klauspost/cpuid/v2"

// hasADXBMI2 reports whether the CPU supports the instruction pair a
// real CIOS fast path would use (ADX for carry-chained multiply-add,
// BMI2 for MULX).
var hasADXBMI2 = cpuid.CPU.Supports(cpuid.ADX, cpuid.BMI2)

// forceScalarPath lets tests exercise both code paths on the same
// hardware regardless of what the CPU actually supports.
var forceScalarPath = false

// montMulDispatch picks the accelerated or scalar path. Today both
// branches call the same portable implementation, but Fq/Fr call
// through here rather than montMul directly so a real accelerated
// kernel can be dropped in later without touching callers.
func montMulDispatch(x, y U256, p *fieldParams) U256 {
	if hasADXBMI2 && !forceScalarPath {
		return montMulAccelerated(x, y, p)
	}
	return montMul(x, y, p)
}

// montMulAccelerated is the hook for a hand-tuned ADX/BMI2 CIOS
// implementation. It currently delegates to the portable montMul.
func montMulAccelerated(x, y U256, p *fieldParams) U256 {
	return montMul(x, y, p)
}
