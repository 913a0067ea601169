package nosandbox

func I32Load(addr uint64) uint32  { return load[uint32](addr) }
func I64Load(addr uint64) uint64  { return load[uint64](addr) }
func F32Load(addr uint64) float32 { return load[float32](addr) }
func F64Load(addr uint64) float64 { return load[float64](addr) }

func I32Load8S(addr uint64) uint32 { return loadExt[int8, int32, uint32](addr) }
func I64Load8S(addr uint64) uint64 { return loadExt[int8, int64, uint64](addr) }
func I32Load8U(addr uint64) uint32 { return loadExt[uint8, uint32, uint32](addr) }
func I64Load8U(addr uint64) uint64 { return loadExt[uint8, uint64, uint64](addr) }

func I32Load16S(addr uint64) uint32 { return loadExt[int16, int32, uint32](addr) }
func I64Load16S(addr uint64) uint64 { return loadExt[int16, int64, uint64](addr) }
func I32Load16U(addr uint64) uint32 { return loadExt[uint16, uint32, uint32](addr) }
func I64Load16U(addr uint64) uint64 { return loadExt[uint16, uint64, uint64](addr) }

func I64Load32S(addr uint64) uint64 { return loadExt[int32, int64, uint64](addr) }
func I64Load32U(addr uint64) uint64 { return loadExt[uint32, uint64, uint64](addr) }
