package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/require"
)

const classicText = `bread, milk
bread, diaper, beer, eggs
milk, diaper, beer, cola
bread, milk, diaper, beer
bread, milk, diaper, cola
`

type execResult struct {
	stdout string
	stderr string
	err    error
}

// isolateConfig points XDG lookups at an empty directory so a developer's
// own config file cannot leak into tests.
func isolateConfig(t *testing.T) string {
	t.Helper()
	t.Cleanup(xdg.Reload) // runs after t.Setenv restores the environment
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(dir, "none"))
	xdg.Reload()
	return dir
}

// execute runs the root command with args and empty stdin.
func execute(t *testing.T, args ...string) execResult {
	t.Helper()
	return executeWithInput(t, "", args...)
}

func executeWithInput(t *testing.T, stdin string, args ...string) execResult {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return execResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// writeFile writes content under a fresh temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
