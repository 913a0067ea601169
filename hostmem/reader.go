package hostmem

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasm-nosandbox/errors"
)

// NewReader wraps a wazero api.Memory for checked access.
func NewReader(mem api.Memory) *Reader {
	if mem == nil {
		return nil
	}
	return &Reader{Mem: mem}
}

// Reader performs bounds-checked little-endian access through wazero.
type Reader struct {
	Mem api.Memory
}

func outOfBounds(offset uint32, width int, mem api.Memory) error {
	return errors.OutOfBounds(errors.PhaseMap, uint64(offset), uint64(width), uint64(mem.Size()))
}

// Read reads bytes from memory.
func (m *Reader) Read(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.Mem.Read(offset, length)
	if !ok {
		return nil, outOfBounds(offset, int(length), m.Mem)
	}
	return data, nil
}

// Write writes bytes to memory.
func (m *Reader) Write(offset uint32, data []byte) error {
	if !m.Mem.Write(offset, data) {
		return outOfBounds(offset, len(data), m.Mem)
	}
	return nil
}

// ReadUint reads width (1, 2, 4 or 8) bytes as an unsigned little-endian value.
func (m *Reader) ReadUint(offset, width uint32) (uint64, error) {
	var (
		v  uint64
		ok bool
	)
	switch width {
	case 1:
		var b byte
		b, ok = m.Mem.ReadByte(offset)
		v = uint64(b)
	case 2:
		var h uint16
		h, ok = m.Mem.ReadUint16Le(offset)
		v = uint64(h)
	case 4:
		var w uint32
		w, ok = m.Mem.ReadUint32Le(offset)
		v = uint64(w)
	case 8:
		v, ok = m.Mem.ReadUint64Le(offset)
	default:
		return 0, errors.InvalidInput(errors.PhaseMap, "width must be 1, 2, 4 or 8")
	}
	if !ok {
		return 0, outOfBounds(offset, int(width), m.Mem)
	}
	return v, nil
}

// WriteUint writes the low width bytes of v in little-endian order.
func (m *Reader) WriteUint(offset, width uint32, v uint64) error {
	var ok bool
	switch width {
	case 1:
		ok = m.Mem.WriteByte(offset, byte(v))
	case 2:
		ok = m.Mem.WriteUint16Le(offset, uint16(v))
	case 4:
		ok = m.Mem.WriteUint32Le(offset, uint32(v))
	case 8:
		ok = m.Mem.WriteUint64Le(offset, v)
	default:
		return errors.InvalidInput(errors.PhaseMap, "width must be 1, 2, 4 or 8")
	}
	if !ok {
		return outOfBounds(offset, int(width), m.Mem)
	}
	return nil
}
