package frequency

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Record is one row of the persisted vocabulary table.
type Record struct {
	Word        string
	Frequency   int
	Translation string
}

var tableHeader = []string{"frequency", "word", "translation"}

// ReadTable loads a vocabulary table from CSV. A missing file yields an
// empty table, not an error, so first runs and merges work uniformly.
// Column order is taken from the header, case-insensitively.
func ReadTable(path string) ([]Record, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open table %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range tableHeader {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("table %s: missing %q column", path, required)
		}
	}

	var records []Record
	for _, row := range rows[1:] {
		word := field(row, cols["word"])
		if word == "" {
			continue
		}
		freq, _ := strconv.Atoi(field(row, cols["frequency"]))
		records = append(records, Record{
			Word:        word,
			Frequency:   freq,
			Translation: field(row, cols["translation"]),
		})
	}
	return records, nil
}

func field(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// WriteTable rewrites the vocabulary table in one pass. The new table is
// written next to the target and renamed into place, so an interrupted
// write leaves the prior table intact and the pass can be retried.
func WriteTable(path string, records []Record) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create table %s: %w", tmp, err)
	}

	w := csv.NewWriter(f)
	w.Write(tableHeader)
	for _, rec := range records {
		w.Write([]string{strconv.Itoa(rec.Frequency), rec.Word, rec.Translation})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write table %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close table %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace table %s: %w", path, err)
	}
	return nil
}

// SortRecords orders records by frequency descending, with ties broken
// lexicographically by word so output is deterministic.
func SortRecords(records []Record) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].Frequency != records[j].Frequency {
			return records[i].Frequency > records[j].Frequency
		}
		return records[i].Word < records[j].Word
	})
}
