//go:build unix

package nosandbox

import (
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"golang.org/x/sys/unix"
)

// abortDelivery bounds the wait for SIGABRT to reach another thread.
const abortDelivery = 10 * time.Second

// abort terminates the process with SIGABRT. The Go runtime owns the signal
// handler, so the traceback mode is switched to crash, which makes the
// runtime re-raise SIGABRT with the default action after its dump.
func abort() {
	signal.Reset(unix.SIGABRT)
	debug.SetTraceback("crash")
	_ = unix.Kill(unix.Getpid(), unix.SIGABRT)
	time.Sleep(abortDelivery)
	os.Exit(exitAbort)
}
