package root_test

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/siro-files/cmd/root"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	root.Init()
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "siro-files", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "SIRO debt-base files")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.NotNil(t, root.Cmd.PersistentPostRun)
}

func TestRootCommand_Flags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
	}{
		{"input", "i"},
		{"output", "o"},
		{"config", ""},
		{"log-level", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := root.Cmd.PersistentFlags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
		})
	}
}

func TestRootCommand_Run(t *testing.T) {
	assert.NotPanics(t, func() {
		root.Cmd.Run(&cobra.Command{}, []string{})
	})
}

func resetShared(t *testing.T) {
	t.Helper()
	saved := root.SharedFlags
	t.Cleanup(func() {
		root.SharedFlags = saved
		root.AppContainer = nil
	})
	root.AppContainer = nil
}

func TestSetup_BuildsContainer(t *testing.T) {
	resetShared(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rendition:\n  node_id: 9\n"), 0o600))
	root.SharedFlags.ConfigFile = path
	root.SharedFlags.LogLevel = "debug"

	require.NoError(t, root.Setup())
	require.NotNil(t, root.AppContainer)
	assert.Equal(t, int64(9), root.AppContainer.GetConfig().Rendition.NodeID)
	assert.Equal(t, "debug", root.AppContainer.GetConfig().Log.Level)
	assert.Same(t, root.AppContainer.GetLogger(), root.Log)
}

func TestSetup_MissingConfigFile(t *testing.T) {
	resetShared(t)
	root.SharedFlags.ConfigFile = filepath.Join(t.TempDir(), "missing.yaml")

	err := root.Setup()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.Nil(t, root.AppContainer)
}

func TestGetContainer_FallsBackToDefaults(t *testing.T) {
	resetShared(t)

	c, err := root.GetContainer()
	require.NoError(t, err)
	require.NotNil(t, c)

	again, err := root.GetContainer()
	require.NoError(t, err)
	assert.Same(t, c, again)
}
