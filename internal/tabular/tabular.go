// Package tabular converts two-column tabular exports into the token text
// the roster parser consumes.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errEmptyCell = errors.New("empty cell")

// Convert reads CSV rows and emits a space-separated token stream. A row
// contributes its first two cells, in order, only when both parse as
// integers; rows missing either value are skipped. Ragged row lengths are
// tolerated since spreadsheet exports pad unevenly.
func Convert(r io.Reader) (string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var tokens []string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read tabular row: %w", err)
		}
		if len(record) < 2 {
			continue
		}
		first, errFirst := parseCell(record[0])
		second, errSecond := parseCell(record[1])
		if errFirst != nil || errSecond != nil {
			continue
		}
		tokens = append(tokens, strconv.Itoa(first), strconv.Itoa(second))
	}
	return strings.Join(tokens, " "), nil
}

func parseCell(cell string) (int, error) {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return 0, errEmptyCell
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		return n, nil
	}
	// Spreadsheet exports often render integers as "1234.0".
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
