package logstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/deadlyhood/carbonlog/internal/entry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), Filename))
}

func writeRawLog(t *testing.T, s *Store, lines ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0755))
	require.NoError(t, os.WriteFile(s.Path(), []byte(strings.Join(lines, "\n")+"\n"), 0644))
}

func testEntry(date string) entry.Entry {
	e, _ := entry.New(entry.Activities{
		Date:           date,
		CarKm:          10,
		ElectricityKwh: 5,
		MeatMeals:      1,
		Recycled:       true,
	})
	return e
}

func TestEnsureInitializedCreatesHeader(t *testing.T) {
	s := tempStore(t)

	require.NoError(t, s.EnsureInitialized())

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, Header+"\n", string(data))
}

func TestEnsureInitializedIsIdempotent(t *testing.T) {
	s := tempStore(t)

	require.NoError(t, s.EnsureInitialized())
	require.NoError(t, s.Append(testEntry("2024-06-01")))
	require.NoError(t, s.EnsureInitialized())

	entries, err := s.ReadAll()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestEnsureInitializedLeavesExistingContentAlone(t *testing.T) {
	s := tempStore(t)
	writeRawLog(t, s, "some,unusual,header")

	require.NoError(t, s.EnsureInitialized())

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "some,unusual,header\n", string(data))
}

func TestExists(t *testing.T) {
	s := tempStore(t)

	ok, err := s.Exists()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.EnsureInitialized())

	ok, err = s.Exists()
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAppendReadAllRoundTrip(t *testing.T) {
	s := tempStore(t)

	e, err := entry.New(entry.Activities{
		Date:                    "2024-06-01",
		CarKm:                   10.456, // stored with 2 decimals
		BusKm:                   3.5,
		TrainKm:                 12,
		FlightKm:                0,
		ElectricityKwh:          5.25,
		PlasticKg:               0.4,
		MeatMeals:               1,
		VegMeals:                2,
		FishMeals:               1,
		Recycled:                true,
		PublicTransportCount:    3,
		SavedElectricityActions: 2,
	})
	require.NoError(t, err)
	require.NoError(t, s.Append(e))

	entries, err := s.ReadAll()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.Equal(t, "2024-06-01", got.Date)
	assert.InDelta(t, 10.46, got.CarKm, 1e-9)
	assert.InDelta(t, 3.5, got.BusKm, 1e-9)
	assert.InDelta(t, 12, got.TrainKm, 1e-9)
	assert.Zero(t, got.FlightKm)
	assert.InDelta(t, 5.25, got.ElectricityKwh, 1e-9)
	assert.InDelta(t, 0.4, got.PlasticKg, 1e-9)
	assert.Equal(t, 1, got.MeatMeals)
	assert.Equal(t, 2, got.VegMeals)
	assert.Equal(t, 1, got.FishMeals)
	assert.True(t, got.Recycled)
	assert.Equal(t, 3, got.PublicTransportCount)
	assert.Equal(t, 2, got.SavedElectricityActions)
	assert.InDelta(t, e.FootprintKg, got.FootprintKg, 0.005)
}

func TestAppendWithoutInitWritesHeaderFirst(t *testing.T) {
	s := tempStore(t)

	require.NoError(t, s.Append(testEntry("2024-06-01")))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, Header, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "2024-06-01,"))
}

func TestAppendPreservesStorageOrder(t *testing.T) {
	s := tempStore(t)

	// Deliberately out of chronological order: storage order is append order.
	require.NoError(t, s.Append(testEntry("2024-06-03")))
	require.NoError(t, s.Append(testEntry("2024-06-01")))
	require.NoError(t, s.Append(testEntry("2024-06-02")))

	entries, err := s.ReadAll()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "2024-06-03", entries[0].Date)
	assert.Equal(t, "2024-06-01", entries[1].Date)
	assert.Equal(t, "2024-06-02", entries[2].Date)
}

func TestReadAllMissingFile(t *testing.T) {
	s := tempStore(t)

	entries, err := s.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadAllHeaderOnly(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.EnsureInitialized())

	entries, err := s.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadAllSkipsBlankLines(t *testing.T) {
	s := tempStore(t)
	writeRawLog(t, s,
		Header,
		"2024-06-01,10.00,0.00,0.00,0.00,5.00,0.00,1,0,0,1,0,0,11.35",
		"",
		"2024-06-02,0.00,0.00,0.00,0.00,0.00,0.00,0,0,0,0,0,0,0.00",
	)

	entries, err := s.ReadAll()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestReadAllMalformedTokenDegradesToZero(t *testing.T) {
	s := tempStore(t)
	writeRawLog(t, s,
		Header,
		"2024-06-01,garbage,0.00,0.00,0.00,5.00,0.00,1,0,0,1,0,0,11.35",
		"2024-06-02,4.00,0.00,0.00,0.00,0.00,0.00,0,0,0,0,2,0,0.84",
	)

	entries, rep, err := s.ReadAllReport()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// The bad token becomes zero; the rest of the row and the following
	// row still parse.
	assert.Zero(t, entries[0].CarKm)
	assert.InDelta(t, 5.0, entries[0].ElectricityKwh, 1e-9)
	assert.InDelta(t, 11.35, entries[0].FootprintKg, 1e-9)
	assert.InDelta(t, 4.0, entries[1].CarKm, 1e-9)
	assert.Equal(t, 1, rep.DegradedFields)
	assert.Zero(t, rep.PaddedRows)
}

func TestReadAllShortRowZeroFills(t *testing.T) {
	s := tempStore(t)
	writeRawLog(t, s,
		Header,
		"2024-06-01,10.00,2.50",
	)

	entries, rep, err := s.ReadAllReport()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.Equal(t, "2024-06-01", got.Date)
	assert.InDelta(t, 10.0, got.CarKm, 1e-9)
	assert.InDelta(t, 2.5, got.BusKm, 1e-9)
	assert.Zero(t, got.TrainKm)
	assert.Zero(t, got.MeatMeals)
	assert.False(t, got.Recycled)
	assert.Zero(t, got.FootprintKg)
	assert.Equal(t, 1, rep.PaddedRows)
	assert.Zero(t, rep.DegradedFields, "missing trailing fields are not degraded tokens")
}

func TestReadAllNeverRejectsRows(t *testing.T) {
	s := tempStore(t)
	writeRawLog(t, s,
		Header,
		"!!! not a record at all !!!",
		"2024-06-02,1.00,0.00,0.00,0.00,0.00,0.00,0,0,0,0,0,0,0.21",
	)

	entries, err := s.ReadAll()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "!!! not a record at all !!!", entries[0].Date)
	assert.Equal(t, "2024-06-02", entries[1].Date)
}

func TestReadAllRecycledVariants(t *testing.T) {
	s := tempStore(t)
	writeRawLog(t, s,
		Header,
		"2024-06-01,0.00,0.00,0.00,0.00,0.00,0.00,0,0,0,1,0,0,0.00",
		"2024-06-02,0.00,0.00,0.00,0.00,0.00,0.00,0,0,0,0,0,0,0.00",
		"2024-06-03,0.00,0.00,0.00,0.00,0.00,0.00,0,0,0,maybe,0,0,0.00",
	)

	entries, rep, err := s.ReadAllReport()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.True(t, entries[0].Recycled)
	assert.False(t, entries[1].Recycled)
	assert.False(t, entries[2].Recycled)
	assert.Equal(t, 1, rep.DegradedFields)
}

func TestDefaultDir(t *testing.T) {
	assert.Equal(t, filepath.Join("/home/someone", ".carbonlog"), DefaultDir("/home/someone"))
}
