//go:build unix

package nosandbox

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"
)

// cString copies s into a pinned NUL-terminated buffer and returns its address.
func cString(t *testing.T, s string) uint64 {
	t.Helper()
	buf, addr := hostBuffer(t, len(s)+1)
	copy(buf, s)
	return addr
}

func TestOpen2(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	if err := os.WriteFile(path, []byte("wasm"), 0o600); err != nil {
		t.Fatal(err)
	}

	fd := Open2(cString(t, path), unix.O_RDONLY)
	if fd == openFailed {
		t.Fatal("Open2 failed on an existing file")
	}
	defer unix.Close(int(fd))

	buf := make([]byte, 4)
	n, err := unix.Read(int(fd), buf)
	if err != nil || string(buf[:n]) != "wasm" {
		t.Errorf("read %q, %v", buf[:n], err)
	}
}

func TestOpen3CreatesWithMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "created")

	fd := Open3(cString(t, path), unix.O_WRONLY|unix.O_CREAT|unix.O_EXCL, 0o640)
	if fd == openFailed {
		t.Fatal("Open3 failed to create")
	}
	unix.Close(int(fd))

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	// umask may only clear bits
	if info.Mode().Perm()&^0o640 != 0 {
		t.Errorf("mode = %v", info.Mode().Perm())
	}

	if fd := Open3(cString(t, path), unix.O_WRONLY|unix.O_CREAT|unix.O_EXCL, 0o640); fd != openFailed {
		unix.Close(int(fd))
		t.Error("O_EXCL on an existing file should fail")
	}
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")
	if fd := Open2(cString(t, path), unix.O_RDONLY); fd != 0xFFFFFFFF {
		unix.Close(int(fd))
		t.Errorf("Open2 on a missing file = %d, want -1", int32(fd))
	}
}
