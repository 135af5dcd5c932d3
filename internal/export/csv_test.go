package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felalfaro/sellers-meli/internal/api"
)

func TestWriteItemsCSV(t *testing.T) {
	brand := "Samsung"
	items := []api.FlatItem{
		{
			ID:         "MLA1",
			Title:      "Celular",
			SiteID:     "MLA",
			Price:      15499,
			Tags:       api.StringList{"good_quality_picture", "brand_verified"},
			BrandName:  &brand,
			CurrencyID: "ARS",
		},
		{
			ID:    "MLA2",
			Title: "Otro celular",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteItemsCSV(&buf, items))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + two items

	header := rows[0]
	assert.Equal(t, "id", header[0])
	assert.Contains(t, header, "package_weight_unit")
	assert.Contains(t, header, "package_weight_number")
	assert.Contains(t, header, "seller_rating_positive")
	assert.Len(t, header, 53)

	col := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		t.Fatalf("column %q not in header", name)
		return -1
	}

	assert.Equal(t, "MLA1", rows[1][col("id")])
	assert.Equal(t, "good_quality_picture|brand_verified", rows[1][col("tags")])
	assert.Equal(t, "Samsung", rows[1][col("brand_name")])
	// absent attribute values export as empty cells
	assert.Equal(t, "", rows[2][col("brand_name")])
	assert.Equal(t, "", rows[2][col("model_id")])
}
