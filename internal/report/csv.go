package report

import (
	"bytes"
	"encoding/csv"
	"io"

	"planvida/internal/models"
)

// csvHeader is the fixed CSV header row.
var csvHeader = []string{"Category", "Name", "Value", "Date", "Meta"}

// WriteCSV writes the flat CSV encoding of a plan's items: one header row
// followed by one row per item in storage-retrieval order. No sorting, no
// aggregation, no subtotal rows.
func WriteCSV(w io.Writer, items []models.PlanItem) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, item := range items {
		record := []string{
			string(item.Category),
			item.Name,
			item.Value.StringFixed(2),
			item.Date.String(),
			item.Meta.StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// CSV returns the CSV encoding of a plan's items as a byte slice.
func CSV(items []models.PlanItem) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, items); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
