//go:build !unix

package nosandbox

import "os"

func abort() {
	os.Exit(exitAbort)
}
