package nosandbox

import "go.uber.org/zap"

// TrapKind names the condition a sandboxed runtime would have trapped on.
// With the sandbox disabled it only labels the fatal log entry.
type TrapKind uint8

const (
	TrapNone TrapKind = iota
	TrapOOB
	TrapIntOverflow
	TrapDivByZero
	TrapInvalidConversion
	TrapUnreachable
	TrapCallIndirect
	TrapExhaustion
)

var trapNames = [...]string{
	TrapNone:              "none",
	TrapOOB:               "out of bounds memory access",
	TrapIntOverflow:       "integer overflow",
	TrapDivByZero:         "integer divide by zero",
	TrapInvalidConversion: "invalid conversion to integer",
	TrapUnreachable:       "unreachable executed",
	TrapCallIndirect:      "indirect call signature mismatch",
	TrapExhaustion:        "call stack exhausted",
}

func (k TrapKind) String() string {
	if int(k) < len(trapNames) {
		return trapNames[k]
	}
	return "unknown"
}

// exitAbort is the status a shell reports for SIGABRT (128 + 6).
const exitAbort = 134

// Trap terminates the process. It never returns.
func Trap() {
	TrapWith(TrapNone)
}

// Unreachable is the body emitted for the wasm unreachable instruction.
func Unreachable() {
	TrapWith(TrapUnreachable)
}

// TrapWith terminates the process, recording kind in the fatal log entry.
// The kind does not change control flow.
func TrapWith(kind TrapKind) {
	Logger().Fatal("wasm trap", zap.Stringer("kind", kind), zap.Uint8("code", uint8(kind)))
	// a fatal hook that returns must not resume generated code
	abort()
}
