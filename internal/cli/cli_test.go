package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orphanMoore = `
variant: moore
initial: A
states: A,B,C,D,E
alphabet: 0,1
rows:
  - [B, C, 0]
  - [A, D, 0]
  - [C, C, 1]
  - [D, D, 1]
  - [E, E, 0]
`

const brokenMoore = `
variant: moore
initial: Q
states: A,B
alphabet: 0,1
rows:
  - [B, Z, 0]
  - [A, B]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestMinimizeCmd(t *testing.T) {
	path := writeFile(t, "machine.yaml", orphanMoore)

	t.Run("text", func(t *testing.T) {
		out, _, err := execute(t, "minimize", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Removed states: [ E ]")
		assert.Contains(t, out, "P0 = {A,B},{C,D}")
		assert.Contains(t, out, "{C,D}")
	})

	t.Run("json flag", func(t *testing.T) {
		out, _, err := execute(t, "minimize", path, "--format", "json")
		require.NoError(t, err)
		assert.Contains(t, out, `"initial": "{A,B}"`)
	})

	t.Run("format from config", func(t *testing.T) {
		cfg := writeFile(t, "fsmin.yaml", "format: yaml\n")
		out, _, err := execute(t, "--config", cfg, "minimize", path)
		require.NoError(t, err)
		assert.Regexp(t, `initial: ['"]?\{A,B\}`, out)
	})

	t.Run("debug logs go to stderr", func(t *testing.T) {
		_, errOut, err := execute(t, "--log-level", "debug", "minimize", path)
		require.NoError(t, err)
		assert.Contains(t, errOut, "[DEBUG]")
		assert.Contains(t, errOut, "refined partitions")
	})

	t.Run("invalid machine", func(t *testing.T) {
		_, _, err := execute(t, "minimize", writeFile(t, "broken.yaml", brokenMoore))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid machine")
	})

	t.Run("bad log level", func(t *testing.T) {
		_, _, err := execute(t, "--log-level", "loud", "minimize", path)
		assert.Error(t, err)
	})
}

func TestValidateCmd(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		out, _, err := execute(t, "validate", writeFile(t, "machine.yaml", orphanMoore))
		require.NoError(t, err)
		assert.Contains(t, out, "ok (moore, 5 states, 2 input symbols)")
	})

	t.Run("problems listed", func(t *testing.T) {
		out, _, err := execute(t, "validate", writeFile(t, "broken.yaml", brokenMoore))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "3 problem(s) found")
		assert.Contains(t, out, "initial state not declared")
		assert.Contains(t, out, "unknown state")
		assert.Contains(t, out, "row width mismatch")
	})
}

func TestRunCmd(t *testing.T) {
	path := writeFile(t, "machine.yaml", orphanMoore)

	out, _, err := execute(t, "run", path, "--input", "0,1,0")
	require.NoError(t, err)
	assert.Equal(t, "0,1,1\n", out)

	minOut, _, err := execute(t, "run", path, "--input", "0,1,0", "--minimized")
	require.NoError(t, err)
	assert.Equal(t, out, minOut)

	_, _, err = execute(t, "run", path, "--input", "2")
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "fsmin version dev\n", out)
}
