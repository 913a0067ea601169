// Package nosandbox provides the memory and arithmetic primitives that
// WebAssembly-to-native generated code calls when sandboxing is disabled.
//
// Linear memory is assumed to be mapped directly onto host memory, so every
// address handed to this package is a raw host address that the translator
// has already validated. Nothing here checks bounds, alignment, divisors or
// overflow. A bad address is undefined behaviour at the host level.
//
// # Loads and Stores
//
// Loads read the stored width in host byte order, then sign- or zero-extend
// to the wasm result type:
//
//	v := nosandbox.I32Load8S(base + uint64(offset)) // 0xFF reads as 0xFFFFFFFF
//	nosandbox.I64Store16(base+8, 0x12345678)        // writes 0x5678
//
// Unaligned addresses are allowed. Float loads and stores move bit patterns
// only.
//
// # Integer Helpers
//
// Clz and Ctz return the operand width for a zero operand. Rotates mask the
// amount to the operand width. Division and remainder use Go's native
// truncating operators with no divisor or overflow checks; the checked
// variants belong to the sandboxed runtime.
//
// # Traps
//
// Trap, TrapWith and Unreachable never return. They log at Fatal level through
// the package logger and abort the process.
//
// # Platform
//
// Only little-endian hosts are supported. Building for a big-endian GOARCH, or
// with the wasm_simd tag, fails at compile time.
//
// # Thread Safety
//
// All primitives are stateless and reentrant. Concurrent access to
// overlapping addresses is not synchronized.
package nosandbox
