package hostmem

import (
	"unsafe"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasm-nosandbox/errors"
)

// Region is a view of linear memory at a fixed host address.
type Region struct {
	mem  api.Memory
	buf  []byte
	base uint64
}

// Map resolves the host address of mem's backing buffer.
func Map(mem api.Memory) (*Region, error) {
	if mem == nil {
		return nil, errors.NilPointer(errors.PhaseMap, "memory")
	}
	size := mem.Size()
	if size == 0 {
		return nil, errors.New(errors.PhaseMap, errors.KindOutOfBounds).
			Detail("memory has no pages").
			Build()
	}
	// Read returns a view of the live buffer, not a copy.
	buf, ok := mem.Read(0, size)
	if !ok {
		return nil, errors.OutOfBounds(errors.PhaseMap, 0, uint64(size), uint64(size))
	}
	return &Region{
		mem:  mem,
		buf:  buf,
		base: uint64(uintptr(unsafe.Pointer(unsafe.SliceData(buf)))),
	}, nil
}

// Base returns the host address of offset 0.
func (r *Region) Base() uint64 {
	return r.base
}

// Size returns the mapped size in bytes.
func (r *Region) Size() uint32 {
	return uint32(len(r.buf))
}

// Stale reports whether the memory was resized since Map.
func (r *Region) Stale() bool {
	return r.mem.Size() != uint32(len(r.buf))
}

// Addr validates an access of width bytes at offset and returns its host
// address.
func (r *Region) Addr(offset, width uint32) (uint64, error) {
	if r.Stale() {
		return 0, errors.New(errors.PhaseMap, errors.KindStale).
			Detail("memory resized from %d to %d bytes; map it again", len(r.buf), r.mem.Size()).
			Build()
	}
	end := uint64(offset) + uint64(width)
	if end > uint64(len(r.buf)) {
		return 0, errors.OutOfBounds(errors.PhaseMap, uint64(offset), uint64(width), uint64(len(r.buf)))
	}
	return r.base + uint64(offset), nil
}
