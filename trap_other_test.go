//go:build !unix

package nosandbox

import (
	"os"
	"testing"
)

func TestTrapExitsWithAbortStatus(t *testing.T) {
	if os.Getenv(trapChildEnv) == "1" {
		Trap()
		return
	}

	exitErr := runTrapChild(t, "TestTrapExitsWithAbortStatus")
	if exitErr.ExitCode() != exitAbort {
		t.Errorf("exit code = %d, want %d", exitErr.ExitCode(), exitAbort)
	}
}
