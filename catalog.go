package nosandbox

import (
	"math"
	"sync"
)

// ValType is a WebAssembly value type, encoded as in the binary format.
type ValType byte

const (
	I32 ValType = 0x7F
	I64 ValType = 0x7E
	F32 ValType = 0x7D
	F64 ValType = 0x7C
)

func (v ValType) String() string {
	switch v {
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	default:
		return "unknown"
	}
}

// Mask returns the bits a value of this type occupies in a uint64 slot.
func (v ValType) Mask() uint64 {
	if v == I32 || v == F32 {
		return math.MaxUint32
	}
	return math.MaxUint64
}

// Class groups intrinsics by call shape.
type Class uint8

const (
	ClassLoad Class = iota
	ClassStore
	ClassUnary
	ClassBinary
)

func (c Class) String() string {
	switch c {
	case ClassLoad:
		return "load"
	case ClassStore:
		return "store"
	case ClassUnary:
		return "unary"
	case ClassBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// Intrinsic describes one primitive generated code can call.
//
// Name is the wasm mnemonic, Symbol the Go function in this package, and
// Params/Results the wasm instruction signature. For loads and stores the
// first wasm parameter is the linear-memory offset; Call takes the host
// address in its place.
type Intrinsic struct {
	// Call invokes the primitive on raw uint64 slots and returns the result
	// bit pattern. Stores return 0. Call does not validate len(args).
	Call      func(args ...uint64) uint64
	undefined func(x, y uint64) bool
	Name      string
	Symbol    string
	Params    []ValType
	Results   []ValType
	Width     uint32 // bytes accessed by loads and stores
	Opcode    byte
	Class     Class
}

// Defined reports whether args are inside the operation's defined domain.
// Zero divisors and signed MinInt / -1 are not; the primitive does not check.
func (in Intrinsic) Defined(args ...uint64) bool {
	if in.undefined == nil || len(args) < 2 {
		return true
	}
	return !in.undefined(args[0], args[1])
}

func loadOp(name, sym string, op byte, res ValType, width uint32, fn func(uint64) uint64) Intrinsic {
	return Intrinsic{
		Name: name, Symbol: sym, Opcode: op, Class: ClassLoad, Width: width,
		Params: []ValType{I32}, Results: []ValType{res},
		Call: func(args ...uint64) uint64 { return fn(args[0]) },
	}
}

func storeOp(name, sym string, op byte, val ValType, width uint32, fn func(addr, v uint64)) Intrinsic {
	return Intrinsic{
		Name: name, Symbol: sym, Opcode: op, Class: ClassStore, Width: width,
		Params: []ValType{I32, val},
		Call: func(args ...uint64) uint64 {
			fn(args[0], args[1])
			return 0
		},
	}
}

func unaryOp(name, sym string, op byte, t ValType, fn func(uint64) uint64) Intrinsic {
	return Intrinsic{
		Name: name, Symbol: sym, Opcode: op, Class: ClassUnary,
		Params: []ValType{t}, Results: []ValType{t},
		Call: func(args ...uint64) uint64 { return fn(args[0]) },
	}
}

func binaryOp(name, sym string, op byte, t ValType, fn func(x, y uint64) uint64) Intrinsic {
	return Intrinsic{
		Name: name, Symbol: sym, Opcode: op, Class: ClassBinary,
		Params: []ValType{t, t}, Results: []ValType{t},
		Call: func(args ...uint64) uint64 { return fn(args[0], args[1]) },
	}
}

func zeroDivisor(_, y uint64) bool { return y == 0 }

func i32DivOverflow(x, y uint64) bool {
	return uint32(y) == 0 || (uint32(x) == 1<<31 && uint32(y) == math.MaxUint32)
}

func i64DivOverflow(x, y uint64) bool {
	return y == 0 || (x == 1<<63 && y == math.MaxUint64)
}

func i32ZeroDivisor(_, y uint64) bool { return uint32(y) == 0 }

func withUndefined(in Intrinsic, fn func(x, y uint64) bool) Intrinsic {
	in.undefined = fn
	return in
}

var intrinsics = []Intrinsic{
	loadOp("i32.load", "I32Load", 0x28, I32, 4, func(a uint64) uint64 { return uint64(I32Load(a)) }),
	loadOp("i64.load", "I64Load", 0x29, I64, 8, I64Load),
	loadOp("f32.load", "F32Load", 0x2A, F32, 4, func(a uint64) uint64 { return uint64(math.Float32bits(F32Load(a))) }),
	loadOp("f64.load", "F64Load", 0x2B, F64, 8, func(a uint64) uint64 { return math.Float64bits(F64Load(a)) }),
	loadOp("i32.load8_s", "I32Load8S", 0x2C, I32, 1, func(a uint64) uint64 { return uint64(I32Load8S(a)) }),
	loadOp("i32.load8_u", "I32Load8U", 0x2D, I32, 1, func(a uint64) uint64 { return uint64(I32Load8U(a)) }),
	loadOp("i32.load16_s", "I32Load16S", 0x2E, I32, 2, func(a uint64) uint64 { return uint64(I32Load16S(a)) }),
	loadOp("i32.load16_u", "I32Load16U", 0x2F, I32, 2, func(a uint64) uint64 { return uint64(I32Load16U(a)) }),
	loadOp("i64.load8_s", "I64Load8S", 0x30, I64, 1, I64Load8S),
	loadOp("i64.load8_u", "I64Load8U", 0x31, I64, 1, I64Load8U),
	loadOp("i64.load16_s", "I64Load16S", 0x32, I64, 2, I64Load16S),
	loadOp("i64.load16_u", "I64Load16U", 0x33, I64, 2, I64Load16U),
	loadOp("i64.load32_s", "I64Load32S", 0x34, I64, 4, I64Load32S),
	loadOp("i64.load32_u", "I64Load32U", 0x35, I64, 4, I64Load32U),

	storeOp("i32.store", "I32Store", 0x36, I32, 4, func(a, v uint64) { I32Store(a, uint32(v)) }),
	storeOp("i64.store", "I64Store", 0x37, I64, 8, I64Store),
	storeOp("f32.store", "F32Store", 0x38, F32, 4, func(a, v uint64) { F32Store(a, math.Float32frombits(uint32(v))) }),
	storeOp("f64.store", "F64Store", 0x39, F64, 8, func(a, v uint64) { F64Store(a, math.Float64frombits(v)) }),
	storeOp("i32.store8", "I32Store8", 0x3A, I32, 1, func(a, v uint64) { I32Store8(a, uint32(v)) }),
	storeOp("i32.store16", "I32Store16", 0x3B, I32, 2, func(a, v uint64) { I32Store16(a, uint32(v)) }),
	storeOp("i64.store8", "I64Store8", 0x3C, I64, 1, I64Store8),
	storeOp("i64.store16", "I64Store16", 0x3D, I64, 2, I64Store16),
	storeOp("i64.store32", "I64Store32", 0x3E, I64, 4, I64Store32),

	unaryOp("i32.clz", "I32Clz", 0x67, I32, func(x uint64) uint64 { return uint64(I32Clz(uint32(x))) }),
	unaryOp("i32.ctz", "I32Ctz", 0x68, I32, func(x uint64) uint64 { return uint64(I32Ctz(uint32(x))) }),
	unaryOp("i32.popcnt", "I32Popcnt", 0x69, I32, func(x uint64) uint64 { return uint64(I32Popcnt(uint32(x))) }),
	withUndefined(binaryOp("i32.div_s", "I32DivS", 0x6D, I32, func(x, y uint64) uint64 { return uint64(I32DivS(uint32(x), uint32(y))) }), i32DivOverflow),
	withUndefined(binaryOp("i32.div_u", "I32DivU", 0x6E, I32, func(x, y uint64) uint64 { return uint64(I32DivU(uint32(x), uint32(y))) }), i32ZeroDivisor),
	withUndefined(binaryOp("i32.rem_s", "I32RemS", 0x6F, I32, func(x, y uint64) uint64 { return uint64(I32RemS(uint32(x), uint32(y))) }), i32ZeroDivisor),
	withUndefined(binaryOp("i32.rem_u", "I32RemU", 0x70, I32, func(x, y uint64) uint64 { return uint64(I32RemU(uint32(x), uint32(y))) }), i32ZeroDivisor),
	binaryOp("i32.rotl", "I32Rotl", 0x77, I32, func(x, y uint64) uint64 { return uint64(I32Rotl(uint32(x), uint32(y))) }),
	binaryOp("i32.rotr", "I32Rotr", 0x78, I32, func(x, y uint64) uint64 { return uint64(I32Rotr(uint32(x), uint32(y))) }),

	unaryOp("i64.clz", "I64Clz", 0x79, I64, func(x uint64) uint64 { return uint64(I64Clz(x)) }),
	unaryOp("i64.ctz", "I64Ctz", 0x7A, I64, func(x uint64) uint64 { return uint64(I64Ctz(x)) }),
	unaryOp("i64.popcnt", "I64Popcnt", 0x7B, I64, func(x uint64) uint64 { return uint64(I64Popcnt(x)) }),
	withUndefined(binaryOp("i64.div_s", "I64DivS", 0x7F, I64, I64DivS), i64DivOverflow),
	withUndefined(binaryOp("i64.div_u", "I64DivU", 0x80, I64, I64DivU), zeroDivisor),
	withUndefined(binaryOp("i64.rem_s", "I64RemS", 0x81, I64, I64RemS), zeroDivisor),
	withUndefined(binaryOp("i64.rem_u", "I64RemU", 0x82, I64, I64RemU), zeroDivisor),
	binaryOp("i64.rotl", "I64Rotl", 0x89, I64, I64Rotl),
	binaryOp("i64.rotr", "I64Rotr", 0x8A, I64, I64Rotr),
}

var byName = sync.OnceValue(func() map[string]int {
	m := make(map[string]int, len(intrinsics))
	for i, in := range intrinsics {
		m[in.Name] = i
	}
	return m
})

// Intrinsics returns every primitive in opcode order.
func Intrinsics() []Intrinsic {
	out := make([]Intrinsic, len(intrinsics))
	copy(out, intrinsics)
	return out
}

// Lookup finds an intrinsic by wasm mnemonic.
func Lookup(name string) (Intrinsic, bool) {
	i, ok := byName()[name]
	if !ok {
		return Intrinsic{}, false
	}
	return intrinsics[i], true
}
