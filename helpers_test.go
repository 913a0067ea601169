package nosandbox

import (
	"runtime"
	"testing"
	"unsafe"
)

// hostBuffer returns a pinned heap buffer and its raw address.
func hostBuffer(t *testing.T, n int) ([]byte, uint64) {
	t.Helper()
	buf := make([]byte, n)
	var p runtime.Pinner
	p.Pin(&buf[0])
	t.Cleanup(p.Unpin)
	return buf, uint64(uintptr(unsafe.Pointer(&buf[0])))
}
