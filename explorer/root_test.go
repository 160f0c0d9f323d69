package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestEnv(t *testing.T) {
	t.Setenv("BIKESHARE_CONFIG", filepath.Join("config", "config.yaml"))
	t.Setenv("BIKESHARE_DATA_DIR", filepath.Join("..", "dataset", "testdata"))
	t.Setenv("BIKESHARE_LOG_LEVEL", "error")
}

func TestRootCmdHelp(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "bikeshare")
	assert.Contains(t, buf.String(), "Chicago")
}

func TestRootCmdRejectsArgs(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"chicago"})

	assert.Error(t, cmd.Execute())
}

func TestRootCmdSession(t *testing.T) {
	setTestEnv(t)

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetIn(strings.NewReader("washington\nall\nall\nno\nno\n"))
	cmd.SetOut(out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Hello! Let's explore some US bikeshare data!")
	assert.Contains(t, out.String(), "Gender data is not available for Washington")
	assert.Contains(t, out.String(), "Would you like to restart?")
}

func TestRootCmdInvalidConfig(t *testing.T) {
	setTestEnv(t)
	t.Setenv("BIKESHARE_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{})

	assert.Error(t, cmd.Execute())
}

func TestInitLogger(t *testing.T) {
	assert.NoError(t, InitLogger("debug"))
	assert.NoError(t, InitLogger("WARN"))
	assert.Error(t, InitLogger("loud"))
}
