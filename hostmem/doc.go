// Package hostmem connects wazero linear memory to the raw host addresses
// the no-sandbox primitives take.
//
// # Region
//
// Map snapshots the backing buffer of an api.Memory. Addr performs the
// bounds validation that generated code relies on happening upstream, then
// returns a host address the primitives can use directly:
//
//	region, err := hostmem.Map(mod.ExportedMemory("memory"))
//	addr, err := region.Addr(offset, 4)
//	v := nosandbox.I32Load(addr)
//
// A Region is invalidated when the memory grows, because wazero may move the
// buffer. Stale reports that condition; Addr refuses stale regions.
//
// # Reader
//
// Reader performs checked little-endian access through wazero's own API. It
// is the reference side when comparing primitive results.
package hostmem
