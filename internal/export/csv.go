package export

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/felalfaro/sellers-meli/internal/api"
)

// WriteItemsCSV writes flattened items to w as CSV, one row per item, with
// a header row built from the flat column names.
func WriteItemsCSV(w io.Writer, items []api.FlatItem) error {
	if err := gocsv.Marshal(&items, w); err != nil {
		return fmt.Errorf("marshal items csv: %w", err)
	}
	return nil
}

// WriteItemsFile writes flattened items to a CSV file at path.
func WriteItemsFile(path string, items []api.FlatItem) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteItemsCSV(f, items)
}
