package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/spiderweb/web"
)

// runCLI executes the root command with args and stdin, returning stdout.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetArgs(append(args, "--log-level", "error"))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()

	return out.String(), err
}

func TestDemo(t *testing.T) {
	out, err := runCLI(t, "", "demo", "--max-per-level", "3", "a", "b", "c", "d")
	require.NoError(t, err)
	assert.Equal(t, "level 0: [a b c]\nlevel 1: [d]\n", out)
}

func TestDemo_DefaultValues(t *testing.T) {
	out, err := runCLI(t, "", "demo")
	require.NoError(t, err)
	assert.Equal(t, "level 0: [1 2 3 4 5 6]\nlevel 1: [7 8 9 10]\n", out)
}

func TestDemo_InvalidCapacity(t *testing.T) {
	_, err := runCLI(t, "", "demo", "--max-per-level", "0")
	assert.ErrorIs(t, err, web.ErrInvalidArgument)
}

func TestRun_Session(t *testing.T) {
	script := strings.Join([]string{
		"add 1", "add 2", "add 3", "add 4",
		"# comment lines are skipped",
		"level 0", "maxindex 0", "get 3",
		"addfirst 0", "print",
		"removefirst", "removelast", "size",
		"indexof 9",
		"get 7",
		"bogus",
		"quit",
		"add never",
	}, "\n")

	out, err := runCLI(t, script, "run", "--max-per-level", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, []string{
		"[1 2 3]",
		"2",
		"4",
		"level 0: [0 1 2]",
		"level 1: [3 4]",
		"0",
		"4",
		"3",
		"-1",
		"error: web: index out of range: index 7 with size 3",
		`error: usage: unknown command "bogus" (try help)`,
	}, lines)
}

func TestRun_EmptyErrors(t *testing.T) {
	out, err := runCLI(t, "first\nremovelast\nclear\nsize\n", "run")
	require.NoError(t, err)
	assert.Equal(t, "error: web: web is empty\nerror: web: web is empty\n0\n", out)
}

func TestExecute_Usage(t *testing.T) {
	w, err := web.New[string]()
	require.NoError(t, err)
	var out bytes.Buffer

	for _, line := range []string{"add", "insert x y", "set 1", "get", "level x", "indexof"} {
		assert.ErrorIs(t, execute(w, line, &out), errUsage, line)
	}
	require.NoError(t, execute(w, "insert 0 a", &out))
	require.NoError(t, execute(w, "set 0 b", &out))
	require.NoError(t, execute(w, "lastindexof b", &out))
	assert.Equal(t, "0\n", out.String())
}

func TestSession_StopsOnQuit(t *testing.T) {
	w, err := web.New[string]()
	require.NoError(t, err)
	var out bytes.Buffer

	require.NoError(t, session(w, strings.NewReader("add a\nexit\nadd b\n"), &out, zap.NewNop()))
	assert.Equal(t, 1, w.Size())
}

func TestConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spiderweb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_per_level: 2\n"), 0o644))

	out, err := runCLI(t, "", "demo", "--config", path, "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, "level 0: [a b]\nlevel 1: [c]\n", out)

	t.Setenv("SPIDERWEB_MAX_PER_LEVEL", "1")
	out, err = runCLI(t, "", "demo", "--config", path, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "level 0: [a]\nlevel 1: [b]\n", out, "env overrides the config file")

	out, err = runCLI(t, "", "demo", "--config", path, "--max-per-level", "3", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "level 0: [a b]\n", out, "flag overrides env")
}

func TestConfig_MissingExplicitFile(t *testing.T) {
	_, err := runCLI(t, "", "demo", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
