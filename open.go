package nosandbox

// openFailed is the -1 a failed open(2) returns, seen as u32.
const openFailed = ^uint32(0)

// Open2 forwards open(path, flags). path is the raw address of a
// NUL-terminated string.
func Open2(path uint64, flags uint32) uint32 {
	return open(path, flags, 0)
}

// Open3 forwards open(path, flags, mode).
func Open3(path uint64, flags, mode uint32) uint32 {
	return open(path, flags, mode)
}
