package wasmgen

import "slices"

const (
	Magic   uint32 = 0x6d736100
	Version uint32 = 1
)

// Section IDs
const (
	SectionType     byte = 1
	SectionFunction byte = 3
	SectionMemory   byte = 5
	SectionExport   byte = 7
	SectionCode     byte = 10
)

// Export kinds
const (
	KindFunc   byte = 0x00
	KindMemory byte = 0x02
)

const (
	funcTypeByte byte = 0x60
	opEnd        byte = 0x0B
	opLocalGet   byte = 0x20
)

// FuncType is a function signature; value types use their binary encoding.
type FuncType struct {
	Params  []byte
	Results []byte
}

func (ft FuncType) equal(o FuncType) bool {
	return slices.Equal(ft.Params, o.Params) && slices.Equal(ft.Results, o.Results)
}

type export struct {
	name  string
	index uint32
	kind  byte
}

type memory struct {
	name string
	min  uint32
}

// Module accumulates a core module for encoding.
type Module struct {
	mem     *memory
	types   []FuncType
	funcs   []uint32
	codes   [][]byte
	exports []export
}

func (m *Module) typeIndex(ft FuncType) uint32 {
	for i, t := range m.types {
		if t.equal(ft) {
			return uint32(i)
		}
	}
	m.types = append(m.types, ft)
	return uint32(len(m.types) - 1)
}

// Func adds an exported function. body is the instruction sequence without
// the trailing end opcode.
func (m *Module) Func(name string, ft FuncType, body []byte) uint32 {
	idx := uint32(len(m.funcs))
	m.funcs = append(m.funcs, m.typeIndex(ft))
	m.codes = append(m.codes, body)
	m.exports = append(m.exports, export{name: name, kind: KindFunc, index: idx})
	return idx
}

// Memory declares the module's single memory with no maximum and exports it.
func (m *Module) Memory(name string, minPages uint32) {
	m.mem = &memory{name: name, min: minPages}
}

// NumFuncs returns the number of functions added so far.
func (m *Module) NumFuncs() int {
	return len(m.funcs)
}

// Encode encodes the module to WebAssembly binary format
func (m *Module) Encode() []byte {
	var w Writer
	w.WriteU32LE(Magic)
	w.WriteU32LE(Version)

	if len(m.types) > 0 {
		var sec Writer
		sec.WriteU32(uint32(len(m.types)))
		for _, ft := range m.types {
			sec.Byte(funcTypeByte)
			sec.WriteVec(ft.Params)
			sec.WriteVec(ft.Results)
		}
		writeSection(&w, SectionType, sec.Bytes())
	}

	if len(m.funcs) > 0 {
		var sec Writer
		sec.WriteU32(uint32(len(m.funcs)))
		for _, typeIdx := range m.funcs {
			sec.WriteU32(typeIdx)
		}
		writeSection(&w, SectionFunction, sec.Bytes())
	}

	if m.mem != nil {
		var sec Writer
		sec.WriteU32(1)
		sec.Byte(0x00) // limits: min only
		sec.WriteU32(m.mem.min)
		writeSection(&w, SectionMemory, sec.Bytes())
	}

	exports := m.exports
	if m.mem != nil {
		exports = append([]export{{name: m.mem.name, kind: KindMemory}}, exports...)
	}
	if len(exports) > 0 {
		var sec Writer
		sec.WriteU32(uint32(len(exports)))
		for _, e := range exports {
			sec.WriteName(e.name)
			sec.Byte(e.kind)
			sec.WriteU32(e.index)
		}
		writeSection(&w, SectionExport, sec.Bytes())
	}

	if len(m.codes) > 0 {
		var sec Writer
		sec.WriteU32(uint32(len(m.codes)))
		for _, body := range m.codes {
			var fn Writer
			fn.WriteU32(0) // no local declarations
			fn.WriteBytes(body)
			fn.Byte(opEnd)
			sec.WriteVec(fn.Bytes())
		}
		writeSection(&w, SectionCode, sec.Bytes())
	}

	return w.Bytes()
}

func writeSection(w *Writer, id byte, payload []byte) {
	w.Byte(id)
	w.WriteVec(payload)
}

// LocalGet encodes local.get idx.
func LocalGet(idx uint32) []byte {
	return append([]byte{opLocalGet}, EncodeU32(idx)...)
}

// MemOp encodes a load or store opcode with its memarg immediate.
func MemOp(op byte, align, offset uint32) []byte {
	out := []byte{op}
	out = append(out, EncodeU32(align)...)
	return append(out, EncodeU32(offset)...)
}

// Body concatenates instruction encodings.
func Body(instrs ...[]byte) []byte {
	return slices.Concat(instrs...)
}
