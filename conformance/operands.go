package conformance

import (
	"math"
	"math/rand/v2"

	nosandbox "github.com/wippyai/wasm-nosandbox"
)

var edges32 = []uint64{
	0, 1, 2, 7, 31, 32, 33, 63, 64,
	0x7F, 0x80, 0xFF, 0x7FFF, 0x8000, 0xFFFF,
	0x7FFFFFFF, 0x80000000, 0x80000001, 0xFFFFFFFE, 0xFFFFFFFF,
}

var edges64 = append(append([]uint64(nil), edges32...),
	1<<32, 0x7FFFFFFFFFFFFFFF, 0x8000000000000000, 0x8000000000000001,
	0xFFFFFFFFFFFFFFFE, 0xFFFFFFFFFFFFFFFF,
)

// floatEdges are bit patterns that catch canonicalizing moves.
var floatEdges = []uint64{
	0x00000000, 0x80000000, 0x7F800000, 0xFF800000, 0x7FC00000, 0x7F800001, 0x7FA00000,
	0x7FF0000000000000, 0x7FF8000000000000, 0x7FF0000000000001, 0xFFF4000000000000,
}

func edgesFor(t nosandbox.ValType) []uint64 {
	switch t {
	case nosandbox.I32:
		return edges32
	case nosandbox.F32, nosandbox.F64:
		out := append([]uint64(nil), floatEdges...)
		return append(out, edges32...)
	default:
		return edges64
	}
}

type operandGen struct {
	rng     *rand.Rand
	memSize uint32
}

func newOperandGen(seed uint64, memSize uint32) *operandGen {
	return &operandGen{
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		memSize: memSize,
	}
}

// value returns a random value under mask, biased toward small magnitudes
// half the time.
func (g *operandGen) value(mask uint64) uint64 {
	v := g.rng.Uint64()
	if g.rng.IntN(2) == 0 {
		v >>= g.rng.IntN(64)
	}
	return v & mask
}

// offset returns a random in-bounds offset for an access of width bytes,
// mostly unaligned.
func (g *operandGen) offset(width uint32) uint64 {
	return uint64(g.rng.Uint32N(g.memSize - width + 1))
}

func (g *operandGen) operands(in nosandbox.Intrinsic, iterations int) [][]uint64 {
	switch in.Class {
	case nosandbox.ClassLoad:
		return g.loadOperands(in, iterations)
	case nosandbox.ClassStore:
		return g.storeOperands(in, iterations)
	case nosandbox.ClassUnary:
		return g.unaryOperands(in, iterations)
	default:
		return g.binaryOperands(in, iterations)
	}
}

func (g *operandGen) boundaryOffsets(width uint32) []uint64 {
	end := uint64(g.memSize - width)
	return []uint64{0, 1, 2, 3, 5, 7, end - 1, end}
}

func (g *operandGen) loadOperands(in nosandbox.Intrinsic, iterations int) [][]uint64 {
	var out [][]uint64
	for _, off := range g.boundaryOffsets(in.Width) {
		out = append(out, []uint64{off})
	}
	for range iterations {
		out = append(out, []uint64{g.offset(in.Width)})
	}
	return out
}

func (g *operandGen) storeOperands(in nosandbox.Intrinsic, iterations int) [][]uint64 {
	t := in.Params[1]
	var out [][]uint64
	offs := g.boundaryOffsets(in.Width)
	for i, v := range edgesFor(t) {
		out = append(out, []uint64{offs[i%len(offs)], v & t.Mask()})
	}
	for range iterations {
		out = append(out, []uint64{g.offset(in.Width), g.value(t.Mask())})
	}
	return out
}

func (g *operandGen) unaryOperands(in nosandbox.Intrinsic, iterations int) [][]uint64 {
	t := in.Params[0]
	var out [][]uint64
	for _, v := range edgesFor(t) {
		out = append(out, []uint64{v})
	}
	for range iterations {
		out = append(out, []uint64{g.value(t.Mask())})
	}
	return out
}

func (g *operandGen) binaryOperands(in nosandbox.Intrinsic, iterations int) [][]uint64 {
	t := in.Params[0]
	edges := edgesFor(t)
	var out [][]uint64
	for _, x := range edges {
		for _, y := range edges {
			out = append(out, []uint64{x, y})
		}
	}
	// negative small divisors and rotate amounts around the width
	for _, y := range []uint64{math.MaxUint64, math.MaxUint64 - 1, 65, 127, 128} {
		out = append(out, []uint64{g.value(t.Mask()), y & t.Mask()})
	}
	for range iterations {
		out = append(out, []uint64{g.value(t.Mask()), g.value(t.Mask())})
	}
	return out
}
