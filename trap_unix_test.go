//go:build unix

package nosandbox

import (
	"os"
	"syscall"
	"testing"
)

func TestTrapAbortsWithSIGABRT(t *testing.T) {
	if os.Getenv(trapChildEnv) == "1" {
		Trap()
		return
	}

	exitErr := runTrapChild(t, "TestTrapAbortsWithSIGABRT")
	status, ok := exitErr.Sys().(syscall.WaitStatus)
	if !ok {
		t.Fatalf("unexpected wait status %T", exitErr.Sys())
	}
	if !status.Signaled() || status.Signal() != syscall.SIGABRT {
		t.Errorf("child exited with %v, want termination by SIGABRT", exitErr)
	}
}
