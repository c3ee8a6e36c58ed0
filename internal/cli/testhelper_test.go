package cli

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// runExecute calls Execute as if the process had been started with args
// and returns everything it printed. os.Args and os.Stdout are swapped for
// the call, so callers must not run in parallel.
func runExecute(t *testing.T, args ...string) string {
	t.Helper()

	origArgs, origStdout := os.Args, os.Stdout
	t.Cleanup(func() {
		os.Args, os.Stdout = origArgs, origStdout
	})

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	os.Args = append([]string{"ctxline"}, args...)
	os.Stdout = w

	Execute()

	require.NoError(t, w.Close())
	os.Stdout = origStdout

	printed, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(printed)
}
