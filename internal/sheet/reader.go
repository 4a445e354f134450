// backend-go/internal/sheet/reader.go
package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReadCSV reads all rows from a CSV stream. Rows may have ragged lengths;
// the parser pads missing cells with defaults downstream.
func ReadCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
