package version_test

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsmile/artistinfo/src/version"
)

// TestVersionPrinting makes sure the version and the build information are
// always part of the printed version.
func TestVersionPrinting(t *testing.T) {
	require.NotEmpty(t, version.Version, "version.Version cannot be completely empty")

	var buff bytes.Buffer
	version.Print(&buff)

	out := buff.String()
	assert.Contains(t, out, "artistinfo "+version.Version)
	assert.Contains(t, out, runtime.Version())
	assert.Contains(t, out, runtime.GOOS+"/"+runtime.GOARCH)
}
