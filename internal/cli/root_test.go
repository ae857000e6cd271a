package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixlib/matrix"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "matrixlib", cmd.Use)
	assert.Contains(t, cmd.Long, "1-based")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"dims", "show", "get", "add", "mul", "neg"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	precisionFlag := cmd.PersistentFlags().Lookup("precision")
	require.NotNil(t, precisionFlag)
	assert.Equal(t, "p", precisionFlag.Shorthand)
	assert.Equal(t, "2", precisionFlag.DefValue)

	productFlag := cmd.PersistentFlags().Lookup("standard-product")
	require.NotNil(t, productFlag)
	assert.Equal(t, "false", productFlag.DefValue)

	nanFlag := cmd.PersistentFlags().Lookup("reject-nan")
	require.NotNil(t, nanFlag)
	assert.Equal(t, "false", nanFlag.DefValue)
}

func TestMulCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	mulCmd, _, err := cmd.Find([]string{"mul"})
	require.NoError(t, err)

	scalarFlag := mulCmd.Flags().Lookup("scalar")
	require.NotNil(t, scalarFlag)
	assert.Equal(t, "s", scalarFlag.Shorthand)
}

func TestRootOptionValidation(t *testing.T) {
	path := writeMatrixFile(t, "a.yaml", grid2x2YAML)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"bad format", []string{"show", "--format", "xml", path}, `invalid format "xml"`},
		{"negative precision", []string{"show", "--precision", "-1", path}, "invalid precision -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := runCLI(t, tt.args...)
			assert.Equal(t, ExitCommandError, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.wantErr)
		})
	}
}

func TestExecute_CobraErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown command", []string{"transpose"}},
		{"missing argument", []string{"dims"}},
		{"unknown flag", []string{"dims", "--bogus", "a.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, code := runCLI(t, tt.args...)
			assert.Equal(t, ExitCommandError, code)
			assert.Contains(t, stderr, "Error:")
		})
	}
}

func TestMatrixOptions(t *testing.T) {
	opts := (&RootOptions{}).matrixOptions()
	got := matrix.NewOptions(opts...)
	assert.Equal(t, matrix.ProductLegacy, got.ProductRule())
	assert.False(t, got.ValidateNaNInf())

	opts = (&RootOptions{StandardProduct: true, RejectNaN: true}).matrixOptions()
	got = matrix.NewOptions(opts...)
	assert.Equal(t, matrix.ProductStandard, got.ProductRule())
	assert.True(t, got.ValidateNaNInf())
}
