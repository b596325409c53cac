// Package items reads auction items from a header-keyed CSV table.
package items

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/rptomey/silent-auction-card-generator/pkg/errors"
	"github.com/rptomey/silent-auction-card-generator/pkg/models"
)

const (
	ColumnItemName    = "ItemName"
	ColumnStartingBid = "StartingBid"
	ColumnAuctionURL  = "AuctionURL"
	ColumnTemplate    = "TemplateFile"
)

var requiredColumns = []string{ColumnItemName, ColumnStartingBid, ColumnAuctionURL, ColumnTemplate}

// LoadFile reads every record from the CSV file at path.
func LoadFile(path string) ([]models.ItemRecord, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMissingResource, err, "input table %s", path)
	}
	defer fp.Close()

	records, err := Read(fp)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "reading %s", path)
	}
	return records, nil
}

// Read parses a CSV stream whose first row names the columns. Column order
// does not matter and extra columns are ignored.
func Read(r io.Reader) ([]models.ItemRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "csv has no header")
	}

	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "csv header is missing column %q", name)
		}
	}

	get := func(row []string, name string) string {
		if idx := cols[name]; idx < len(row) {
			return row[idx]
		}
		return ""
	}

	out := make([]models.ItemRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		out = append(out, models.ItemRecord{
			Row:         i + 2,
			Name:        get(row, ColumnItemName),
			StartingBid: get(row, ColumnStartingBid),
			AuctionURL:  get(row, ColumnAuctionURL),
			TemplateID:  get(row, ColumnTemplate),
		})
	}
	return out, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
