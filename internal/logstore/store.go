// Package logstore persists entries to an append-only, line-oriented CSV log
// and reconstructs the full entry sequence from it. Reads are tolerant:
// malformed values degrade to zero and short rows are zero-filled, so a
// damaged row never blocks the rest of the history.
package logstore

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/deadlyhood/carbonlog/internal/entry"
)

// Filename is the log file name inside the data directory.
const Filename = "footprint_log.csv"

// Header is the fixed schema line. Field order is frozen: pre-existing logs
// must keep parsing after upgrades.
const Header = "date,car_km,bus_km,train_km,flight_km,electricity_kwh,plastic_kg,meat_meals,veg_meals,fish_meals,recycled,public_transport_count,saved_electricity_actions,footprint_kg"

// recordFields is the number of fields in a full record.
const recordFields = 14

// DefaultDir returns the default carbonlog data directory under homeDir.
func DefaultDir(homeDir string) string {
	return filepath.Join(homeDir, ".carbonlog")
}

// ParseReport counts the liberties the tolerant parser took during a read.
// A nonzero DegradedFields means some stored values were unreadable and came
// back as zero.
type ParseReport struct {
	DegradedFields int // malformed tokens coerced to zero
	PaddedRows     int // rows with fewer fields than the schema
}

// Store is an append-only entry log backed by a single file. The path is
// fixed at construction so tests can point each store at its own temp file.
type Store struct {
	path string
}

// New creates a store for the log file at path. The file is not touched
// until EnsureInitialized or Append.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the log file location.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the log file is present. This is the only way to
// tell a missing log from an initialized, empty one: ReadAll returns an
// empty sequence for both.
func (s *Store) Exists() (bool, error) {
	_, err := os.Stat(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// EnsureInitialized creates the log file with its header line when missing,
// creating parent directories as needed. An existing file is left untouched;
// its header is not validated.
func (s *Store) EnsureInitialized() error {
	ok, err := s.Exists()
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(Header+"\n"), 0644)
}

// Append serializes the entry as one record line and appends it with a
// single write. A missing log is initialized first so the header always
// precedes data. Write failures surface to the caller; nothing is retried.
func (s *Store) Append(e entry.Entry) error {
	if err := s.EnsureInitialized(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	line := strings.Join(encodeRecord(e), ",") + "\n"
	if _, err := f.Write([]byte(line)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadAll reconstructs every entry in append order. A missing log yields an
// empty sequence, not an error. Content problems never fail the read; see
// ReadAllReport for their counts.
func (s *Store) ReadAll() ([]entry.Entry, error) {
	entries, _, err := s.ReadAllReport()
	return entries, err
}

// ReadAllReport is ReadAll plus a diagnostic count of degraded fields and
// padded rows, for callers that want to warn about damaged history.
func (s *Store) ReadAllReport() ([]entry.Entry, ParseReport, error) {
	var rep ParseReport

	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, rep, nil
	}
	if err != nil {
		return nil, rep, err
	}
	defer f.Close()

	var entries []entry.Entry
	sc := bufio.NewScanner(f)
	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			first = false
			continue // header
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, parseRecord(strings.Split(line, ","), &rep))
	}
	if err := sc.Err(); err != nil {
		return nil, rep, err
	}
	return entries, rep, nil
}

func encodeRecord(e entry.Entry) []string {
	return []string{
		e.Date,
		formatFloat(e.CarKm),
		formatFloat(e.BusKm),
		formatFloat(e.TrainKm),
		formatFloat(e.FlightKm),
		formatFloat(e.ElectricityKwh),
		formatFloat(e.PlasticKg),
		strconv.Itoa(e.MeatMeals),
		strconv.Itoa(e.VegMeals),
		strconv.Itoa(e.FishMeals),
		boolField(e.Recycled),
		strconv.Itoa(e.PublicTransportCount),
		strconv.Itoa(e.SavedElectricityActions),
		formatFloat(e.FootprintKg),
	}
}

// parseRecord converts one split line into an Entry. Present-but-malformed
// tokens degrade to zero and are counted; fields missing off the end of a
// short row zero-fill without counting as degraded.
func parseRecord(fields []string, rep *ParseReport) entry.Entry {
	if len(fields) < recordFields {
		rep.PaddedRows++
	}
	p := recordParser{fields: fields, rep: rep}

	var e entry.Entry
	e.Date = strings.TrimSpace(p.str(0))
	e.CarKm = p.float(1)
	e.BusKm = p.float(2)
	e.TrainKm = p.float(3)
	e.FlightKm = p.float(4)
	e.ElectricityKwh = p.float(5)
	e.PlasticKg = p.float(6)
	e.MeatMeals = p.int(7)
	e.VegMeals = p.int(8)
	e.FishMeals = p.int(9)
	e.Recycled = p.int(10) != 0
	e.PublicTransportCount = p.int(11)
	e.SavedElectricityActions = p.int(12)
	e.FootprintKg = p.float(13)
	return e
}

type recordParser struct {
	fields []string
	rep    *ParseReport
}

func (p recordParser) str(i int) string {
	if i >= len(p.fields) {
		return ""
	}
	return p.fields[i]
}

func (p recordParser) float(i int) float64 {
	if i >= len(p.fields) {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(p.fields[i]), 64)
	if err != nil {
		p.rep.DegradedFields++
		return 0
	}
	return v
}

func (p recordParser) int(i int) int {
	if i >= len(p.fields) {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(p.fields[i]))
	if err != nil {
		p.rep.DegradedFields++
		return 0
	}
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
