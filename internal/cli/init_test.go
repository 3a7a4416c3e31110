package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/deadlyhood/carbonlog/internal/logstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempTestStore(t *testing.T) *logstore.Store {
	t.Helper()
	return logstore.New(filepath.Join(t.TempDir(), logstore.Filename))
}

func execInit(store *logstore.Store) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := initCmd
	cmd.SetOut(stdout)

	err := runInit(cmd, store)
	return stdout.String(), err
}

func TestInitCreatesLog(t *testing.T) {
	store := tempTestStore(t)

	stdout, err := execInit(store)

	require.NoError(t, err)
	assert.Contains(t, stdout, "footprint log created at")
	assert.Contains(t, stdout, store.Path())

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, logstore.Header+"\n", string(data))
}

func TestInitAlreadyInitialized(t *testing.T) {
	store := tempTestStore(t)
	require.NoError(t, store.EnsureInitialized())

	stdout, err := execInit(store)

	require.NoError(t, err)
	assert.Contains(t, stdout, "already initialized")
}

func TestInitRegisteredAsSubcommand(t *testing.T) {
	root := newRootCmd()
	names := make([]string, len(root.Commands()))
	for i, cmd := range root.Commands() {
		names[i] = cmd.Name()
	}
	assert.Contains(t, names, "init")
}
