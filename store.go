package nosandbox

func I32Store(addr uint64, v uint32)  { store(addr, v) }
func I64Store(addr uint64, v uint64)  { store(addr, v) }
func F32Store(addr uint64, v float32) { store(addr, v) }
func F64Store(addr uint64, v float64) { store(addr, v) }

func I32Store8(addr uint64, v uint32)  { storeTrunc[uint8](addr, v) }
func I32Store16(addr uint64, v uint32) { storeTrunc[uint16](addr, v) }

func I64Store8(addr uint64, v uint64)  { storeTrunc[uint8](addr, v) }
func I64Store16(addr uint64, v uint64) { storeTrunc[uint16](addr, v) }
func I64Store32(addr uint64, v uint64) { storeTrunc[uint32](addr, v) }
