package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gudangops/whmonitor/internal/report"
)

// rowReader resolves CSV cells by header name so exports with shuffled or
// extra columns still import.
type rowReader struct {
	index  map[string]int
	record []string
}

func newHeaderIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if key == "" {
			continue
		}
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}

	return index
}

func (r rowReader) Get(col string) string {
	i, ok := r.index[col]
	if !ok || i >= len(r.record) {
		return ""
	}

	return strings.TrimSpace(r.record[i])
}

func (r rowReader) Int(col string) int {
	return report.ParseQty(r.Get(col))
}

// Date returns the cell normalized to ISO when it parses, the raw trimmed
// text otherwise. Range filters in SQL rely on the ISO form.
func (r rowReader) Date(col string) string {
	raw := r.Get(col)
	if t, ok := report.ParseDate(raw); ok {
		return t.Format("2006-01-02")
	}

	return raw
}

// IntPtr returns nil for an empty cell, for nullable numeric columns.
func (r rowReader) IntPtr(col string) *int {
	if r.Get(col) == "" {
		return nil
	}
	v := r.Int(col)

	return &v
}

// readCSV streams path row by row through fn, resolving columns via the
// header line.
func readCSV(path string, fn func(rowReader) error) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read CSV header: %w", err)
	}
	index := newHeaderIndex(header)

	count := 0
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return count, fmt.Errorf("failed to read CSV record: %w", err)
		}
		if err := fn(rowReader{index: index, record: record}); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}
