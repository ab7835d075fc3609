//go:build windows

package daemon

import "os"

// StopSignals contains all the signals which will make the daemon shut down
// gracefully.
var StopSignals = []os.Signal{
	os.Interrupt,
}
