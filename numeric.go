package nosandbox

import (
	"math/bits"
	"unsafe"
)

type word interface {
	~uint32 | ~uint64
}

func width[T word]() uint32 {
	var x T
	return uint32(unsafe.Sizeof(x)) * 8
}

// clz returns the operand width for zero, where the hardware instruction is
// undefined on several targets.
func clz[T word](x T) uint32 {
	if x == 0 {
		return width[T]()
	}
	return uint32(bits.LeadingZeros64(uint64(x))) - (64 - width[T]())
}

func ctz[T word](x T) uint32 {
	if x == 0 {
		return width[T]()
	}
	return uint32(bits.TrailingZeros64(uint64(x)))
}

func popcnt[T word](x T) uint32 {
	return uint32(bits.OnesCount64(uint64(x)))
}

// rotl and rotr reduce y modulo the width. For y&mask == 0 the complementary
// shift is (mask+1)&mask == 0 as well, so both halves shift by zero.
func rotl[T word](x, y T) T {
	mask := T(width[T]() - 1)
	return x<<(y&mask) | x>>((mask-y+1)&mask)
}

func rotr[T word](x, y T) T {
	mask := T(width[T]() - 1)
	return x>>(y&mask) | x<<((mask-y+1)&mask)
}

func I32Clz(x uint32) uint32    { return clz(x) }
func I64Clz(x uint64) uint32    { return clz(x) }
func I32Ctz(x uint32) uint32    { return ctz(x) }
func I64Ctz(x uint64) uint32    { return ctz(x) }
func I32Popcnt(x uint32) uint32 { return popcnt(x) }
func I64Popcnt(x uint64) uint32 { return popcnt(x) }

func I32Rotl(x, y uint32) uint32 { return rotl(x, y) }
func I64Rotl(x, y uint64) uint64 { return rotl(x, y) }
func I32Rotr(x, y uint32) uint32 { return rotr(x, y) }
func I64Rotr(x, y uint64) uint64 { return rotr(x, y) }
