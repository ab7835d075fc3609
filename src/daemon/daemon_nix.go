//go:build !windows

package daemon

import (
	"os"
	"syscall"
)

// StopSignals contains all the signals which will make the daemon shut down
// gracefully.
var StopSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
}
