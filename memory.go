package nosandbox

import "unsafe"

type scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

type integer interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64
}

// hostBytes views n bytes at a raw host address.
func hostBytes(addr uint64, n uintptr) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(uintptr(addr))), n)
}

func valueBytes[S scalar](v *S) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

// load copies sizeof(S) bytes from addr in host order.
// The byte copy keeps unaligned addresses legal on every architecture.
func load[S scalar](addr uint64) S {
	var v S
	copy(valueBytes(&v), hostBytes(addr, unsafe.Sizeof(v)))
	return v
}

// loadExt reads S, extends it through E and returns it as R.
// Signedness of S selects sign or zero extension.
func loadExt[S, E, R integer](addr uint64) R {
	return R(E(load[S](addr)))
}

func store[S scalar](addr uint64, v S) {
	copy(hostBytes(addr, unsafe.Sizeof(v)), valueBytes(&v))
}

// storeTrunc keeps the low sizeof(S) bytes of v.
func storeTrunc[S, V integer](addr uint64, v V) {
	store(addr, S(v))
}
