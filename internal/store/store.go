// ABOUTME: CSV-backed table store shared by every lifeos domain.
// ABOUTME: Provides ReadAll, Insert, UpdateByID, and FindOne with uniform id/timestamp handling.
package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Timestamp columns use RFC 3339 so files stay readable and sortable.
const timeLayout = time.RFC3339Nano

// System columns present in every table, always first in the header.
var systemColumns = []string{"id", "created_at", "updated_at"}

// Store reads and writes CSV tables under a single root directory. Each table
// is a header-first file named <table>.csv whose columns are the union of all
// fields ever written to it. The store is single-process and synchronous:
// every mutation is a full read-modify-rewrite of the table file.
type Store struct {
	dir string
}

// Open creates a store rooted at dir, creating the directory if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) tablePath(table string) string {
	return filepath.Join(s.dir, table+".csv")
}

// ReadAll returns every record in the table in insertion order. A missing
// or header-only file yields an empty slice, never an error.
func (s *Store) ReadAll(table string) ([]Record, error) {
	records, _, err := s.readTable(table)
	return records, err
}

// Insert appends a record with the given fields, generating the id and
// timestamps, and rewrites the table. The whole file is replaced via a
// temp-file rename, so in-process readers never see a partial table.
func (s *Store) Insert(table string, fields Fields) (Record, error) {
	records, header, err := s.readTable(table)
	if err != nil {
		return Record{}, err
	}

	now := time.Now()
	rec := Record{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
		Fields:    fields.clone(),
	}
	records = append(records, rec)

	if err := s.writeTable(table, header, records); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// UpdateByID merges fields into the record with the given id and refreshes
// updated_at. Unset fields keep their prior value; new field names widen the
// table's schema. Returns false, without error, when the id is absent.
func (s *Store) UpdateByID(table, id string, fields Fields) (bool, error) {
	records, header, err := s.readTable(table)
	if err != nil {
		return false, err
	}

	found := false
	for i := range records {
		if records[i].ID != id {
			continue
		}
		for k, v := range fields {
			records[i].Fields[k] = v
		}
		records[i].UpdatedAt = time.Now()
		found = true
		break
	}
	if !found {
		return false, nil
	}

	if err := s.writeTable(table, header, records); err != nil {
		return false, err
	}
	return true, nil
}

// FindOne returns the first record whose field matches value, in table order.
// First-match-wins is deliberate: natural-key tables are kept unique by the
// repository upsert path, so duplicates only arise from writes that bypassed
// it, and the oldest record is the authoritative one.
func (s *Store) FindOne(table, key, value string) (Record, bool, error) {
	records, _, err := s.readTable(table)
	if err != nil {
		return Record{}, false, err
	}
	for _, rec := range records {
		if rec.Fields.Get(key) == value {
			return rec, true, nil
		}
	}
	return Record{}, false, nil
}

// readTable loads a table and its header. Missing files and header-only
// files both come back as an empty record set.
func (s *Store) readTable(table string) ([]Record, []string, error) {
	f, err := os.Open(s.tablePath(table))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("open table %s: %w", table, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read table %s: %w", table, err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	header := rows[0]
	var records []Record
	for _, row := range rows[1:] {
		rec := Record{Fields: Fields{}}
		for i, col := range header {
			if i >= len(row) {
				break
			}
			cell := row[i]
			switch col {
			case "id":
				rec.ID = cell
			case "created_at":
				rec.CreatedAt = parseTime(cell)
			case "updated_at":
				rec.UpdatedAt = parseTime(cell)
			default:
				// Empty cells are fields this row never had.
				if cell != "" {
					rec.Fields[col] = cell
				}
			}
		}
		records = append(records, rec)
	}
	return records, header, nil
}

// writeTable rewrites the full table atomically from the caller's point of
// view: write to a temp file in the same directory, then rename over the
// table file.
func (s *Store) writeTable(table string, prevHeader []string, records []Record) error {
	header := buildHeader(prevHeader, records)

	tmp, err := os.CreateTemp(s.dir, table+"-*.csv")
	if err != nil {
		return fmt.Errorf("create temp table %s: %w", table, err)
	}
	tmpPath := tmp.Name()

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write table %s header: %w", table, err)
	}
	for _, rec := range records {
		row := make([]string, len(header))
		for i, col := range header {
			switch col {
			case "id":
				row[i] = rec.ID
			case "created_at":
				row[i] = rec.CreatedAt.Format(timeLayout)
			case "updated_at":
				row[i] = rec.UpdatedAt.Format(timeLayout)
			default:
				row[i] = rec.Fields.Get(col)
			}
		}
		if err := w.Write(row); err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
			return fmt.Errorf("write table %s row: %w", table, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("flush table %s: %w", table, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp table %s: %w", table, err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("set table %s permissions: %w", table, err)
	}
	if err := os.Rename(tmpPath, s.tablePath(table)); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace table %s: %w", table, err)
	}
	return nil
}

// buildHeader keeps the existing column order and appends any field names the
// table has not seen before, sorted for determinism. System columns always
// lead.
func buildHeader(prevHeader []string, records []Record) []string {
	seen := make(map[string]bool, len(prevHeader)+len(systemColumns))
	header := make([]string, 0, len(prevHeader)+4)
	for _, col := range systemColumns {
		header = append(header, col)
		seen[col] = true
	}
	for _, col := range prevHeader {
		if !seen[col] {
			header = append(header, col)
			seen[col] = true
		}
	}
	var added []string
	for _, rec := range records {
		for k := range rec.Fields {
			if !seen[k] {
				added = append(added, k)
				seen[k] = true
			}
		}
	}
	sort.Strings(added)
	return append(header, added...)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
