//go:build wasm_simd

package nosandbox

var _ = simdIsNotSupportedWithSandboxDisabled
