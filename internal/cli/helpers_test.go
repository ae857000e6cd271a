package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeMatrixFile stores content under a fresh temp dir and returns its path.
func writeMatrixFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// runCLI executes the root command with args and returns stdout, stderr
// and the exit code.
func runCLI(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	cmd := NewRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	code := Execute(cmd)
	return stdout.String(), stderr.String(), code
}

const (
	grid2x3YAML = "- [1, 2, 3]\n- [4, 5, 6]\n"
	grid2x2YAML = "- [1, 2]\n- [3, 4]\n"
)
