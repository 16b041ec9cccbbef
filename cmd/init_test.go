package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup. It mirrors testing.T.Chdir,
// which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestInitCmd(t *testing.T) {
	chdir(t, t.TempDir())

	cmd := newInitCmd()
	require.NoError(t, cmd.Execute())
	require.FileExists(t, configFileName)

	content, err := os.ReadFile(configFileName)
	require.NoError(t, err)
	assert.Contains(t, string(content), "generate")
	assert.Contains(t, string(content), "log")
}

func TestInitCmd_RefusesToOverwrite(t *testing.T) {
	chdir(t, t.TempDir())

	first := newInitCmd()
	require.NoError(t, first.Execute())

	second := newInitCmd()
	second.SilenceErrors = true
	second.SilenceUsage = true

	assert.Error(t, second.Execute())
}
