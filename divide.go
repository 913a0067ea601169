package nosandbox

type signed interface {
	~int32 | ~int64
}

// Unchecked division and remainder. A zero divisor and MinInt / -1 are
// undefined here; callers that need wasm traps use the sandboxed runtime.

func divS[S signed, U word](x, y U) U { return U(S(x) / S(y)) }
func remS[S signed, U word](x, y U) U { return U(S(x) % S(y)) }
func divU[U word](x, y U) U           { return x / y }
func remU[U word](x, y U) U           { return x % y }

func I32DivS(x, y uint32) uint32 { return divS[int32](x, y) }
func I64DivS(x, y uint64) uint64 { return divS[int64](x, y) }
func I32RemS(x, y uint32) uint32 { return remS[int32](x, y) }
func I64RemS(x, y uint64) uint64 { return remS[int64](x, y) }

func I32DivU(x, y uint32) uint32 { return divU(x, y) }
func I64DivU(x, y uint64) uint64 { return divU(x, y) }
func I32RemU(x, y uint32) uint32 { return remU(x, y) }
func I64RemU(x, y uint64) uint64 { return remU(x, y) }
