// Package transfer is the import/export boundary of the tool: it turns
// raw text or delimited files into name sequences and serializes group
// sets back to CSV. Everything here is pure and stateless; malformed
// rows are dropped, never fatal.
package transfer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"

	apperrors "draw-lab/errors"
)

// ParseLines splits raw text into names: one per line, trimmed,
// blank lines ignored.
func ParseLines(text string) []string {
	lines := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
	names := lo.FilterMap(lines, func(line string, _ int) (string, bool) {
		trimmed := strings.TrimSpace(line)
		return trimmed, trimmed != ""
	})
	if len(names) == 0 {
		return nil
	}
	return names
}

// FlattenRows collapses tabular rows into a single name sequence:
// all cells across all rows, trimmed, blanks discarded. No header is
// assumed.
func FlattenRows(rows [][]string) []string {
	var names []string
	for _, row := range rows {
		for _, cell := range row {
			trimmed := strings.TrimSpace(cell)
			if trimmed != "" {
				names = append(names, trimmed)
			}
		}
	}
	return names
}

// ReadNamesFile loads a roster file, sniffing its content type to pick
// the parser: CSV files are flattened cell by cell, any other text
// content is treated as one name per line. Binary content is rejected.
func ReadNamesFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	mime := mimetype.Detect(data)
	switch {
	case mime.Is("text/csv"):
		return FlattenRows(readCSVRows(strings.NewReader(string(data)))), nil
	case strings.HasPrefix(mime.String(), "text/"):
		return ParseLines(string(data)), nil
	default:
		return nil, fmt.Errorf("%w: %s detected as %s", apperrors.ErrUnsupportedFile, path, mime.String())
	}
}

// readCSVRows reads every well-formed record, skipping malformed rows
// individually. Partial success is the norm, not an exception.
func readCSVRows(r io.Reader) [][]string {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return rows
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			return rows
		}
		rows = append(rows, record)
	}
}
