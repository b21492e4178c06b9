package sales_test

import (
	"os"
	"path/filepath"
	"testing"

	"hotelsys/sales"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCatalogue = []sales.CatalogueItem{
	{Title: "pan", Price: 2.0},
	{Title: "leche", Price: 1.5},
	{Title: "queso", Price: 4.0},
}

func TestLoadCatalogue(t *testing.T) {
	t.Run("reads a catalogue file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalogue.json")
		require.NoError(t, os.WriteFile(path, []byte(
			`[{"title":"pan","price":2.0},{"title":"leche","price":1.5}]`,
		), 0644))

		items, err := sales.LoadCatalogue(path)

		require.NoError(t, err)
		assert.Equal(t, []sales.CatalogueItem{
			{Title: "pan", Price: 2.0},
			{Title: "leche", Price: 1.5},
		}, items)
	})

	t.Run("invalid json is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalogue.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		_, err := sales.LoadCatalogue(path)
		assert.Error(t, err)
	})
}

func TestLoadSales(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.json")
	require.NoError(t, os.WriteFile(path, []byte(
		`[{"items":["pan",{"title":"leche","quantity":2}]}]`,
	), 0644))

	records, err := sales.LoadSales(path)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Len(t, records[0].Items, 2)
}

func TestComputeTotals(t *testing.T) {
	prices := sales.BuildPriceLookup(testCatalogue)

	t.Run("mixes string and object items", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sales.json")
		require.NoError(t, os.WriteFile(path, []byte(
			`[{"items":["pan",{"title":"leche","quantity":2},{"title":"queso"}]},
			  {"items":["leche","leche"]}]`,
		), 0644))
		records, err := sales.LoadSales(path)
		require.NoError(t, err)

		totals, grand, errs := sales.ComputeTotals(records, prices)

		assert.Empty(t, errs)
		require.Len(t, totals, 2)
		assert.InDelta(t, 9.0, totals[0], 1e-9)
		assert.InDelta(t, 3.0, totals[1], 1e-9)
		assert.InDelta(t, 12.0, grand, 1e-9)
	})

	t.Run("bad items contribute zero and a diagnostic", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sales.json")
		require.NoError(t, os.WriteFile(path, []byte(
			`[{"items":["pan","tornillo"]},
			  {"items":[{"title":"pan","quantity":-1}]},
			  {"items":[42]}]`,
		), 0644))
		records, err := sales.LoadSales(path)
		require.NoError(t, err)

		totals, grand, errs := sales.ComputeTotals(records, prices)

		assert.Equal(t, []float64{2.0, 0.0, 0.0}, totals)
		assert.InDelta(t, 2.0, grand, 1e-9)
		require.Len(t, errs, 3)
		assert.Contains(t, errs[0], "sale 1: product not in catalogue: tornillo")
		assert.Contains(t, errs[1], "sale 2: invalid quantity for product pan")
		assert.Contains(t, errs[2], "sale 3: invalid sale item")
	})
}

func TestBuildReport(t *testing.T) {
	lines := sales.BuildReport([]float64{5.5, 24.5}, 30.0)

	assert.Equal(t, []string{
		"Sale 1: $5.50",
		"Sale 2: $24.50",
		"Grand Total: $30.00",
	}, lines)
}

func TestWriteResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "SalesResults.txt")

	require.NoError(t, sales.WriteResults(path, []string{"Grand Total: $30.00"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Grand Total: $30.00\n", string(data))
}
