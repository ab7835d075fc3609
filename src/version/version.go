/*
Package version provides version information and utilities.
*/
package version

import (
	"fmt"
	"io"
	"runtime"
)

// Version stores the current version of artistinfo. It is set during building
// with -ldflags "-X github.com/ironsmile/artistinfo/src/version.Version=...".
var Version = "dev-unreleased"

// Print writes a plain text version information in out.
func Print(out io.Writer) {
	fmt.Fprintf(out, "artistinfo %s\n", Version)
	fmt.Fprintf(out, "Build with %s on %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
