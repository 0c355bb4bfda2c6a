package platform

import "github.com/klauspost/cpuid/v2"

// HasFastMulx reports whether the running CPU has the extensions
// (ADX+BMI2 on amd64) that a future assembly multiply-with-carry backend
// would require. The portable carry-chain in ct/bigint is always used
// regardless of this flag; no assembly backend ships in this repo, and
// no package or test in it calls this function.
func HasFastMulx() bool {
	return cpuid.CPU.Supports(cpuid.ADX, cpuid.BMI2)
}
