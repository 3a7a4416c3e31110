package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/deadlyhood/carbonlog/internal/entry"
	"github.com/deadlyhood/carbonlog/internal/logstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execSuggest(store *logstore.Store) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := suggestCmd
	cmd.SetOut(stdout)

	err := runSuggest(cmd, store, fixedNow)
	return stdout.String(), err
}

func TestSuggestEmptyLog(t *testing.T) {
	store := tempTestStore(t)

	stdout, err := execSuggest(store)

	require.NoError(t, err)
	assert.Contains(t, stdout, "No activity logged in the last 7 days")
}

func TestSuggestBulletsPerLine(t *testing.T) {
	store := tempTestStore(t)
	mustAppend(t, store, entry.Activities{
		Date: "2024-06-09", CarKm: 30, MeatMeals: 3, Recycled: true,
	})

	stdout, err := execSuggest(store)

	require.NoError(t, err)
	assert.Contains(t, stdout, "car")
	assert.Contains(t, stdout, "meat")

	for _, line := range strings.Split(strings.TrimRight(stdout, "\n"), "\n") {
		assert.True(t, strings.HasPrefix(line, "•"), "each suggestion line should start with a bullet")
	}
}

func TestSuggestBalancedWeek(t *testing.T) {
	store := tempTestStore(t)
	mustAppend(t, store, entry.Activities{
		Date: "2024-06-09", TrainKm: 40, VegMeals: 2, Recycled: true,
	})

	stdout, err := execSuggest(store)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Your week looks balanced")
}

func TestSuggestRegisteredAsSubcommand(t *testing.T) {
	root := newRootCmd()
	names := make([]string, len(root.Commands()))
	for i, cmd := range root.Commands() {
		names[i] = cmd.Name()
	}
	assert.Contains(t, names, "suggest")
}
