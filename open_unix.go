//go:build unix

package nosandbox

import (
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

func open(path uint64, flags, mode uint32) uint32 {
	name := unix.BytePtrToString((*byte)(unsafe.Pointer(uintptr(path))))
	fd, err := unix.Open(name, int(flags), mode)
	if err != nil {
		Logger().Debug("open failed", zap.String("path", name), zap.Uint32("flags", flags), zap.Error(err))
		return openFailed
	}
	return uint32(fd)
}
