package csvexport_test

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/csvexport"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTypeAOrder(t *testing.T, amount float64, flag bool) *order.Order {
	t.Helper()

	aggregate, err := order.NewOrder(kernel.NewUUID(), 17, order.TypeA, amount, flag)
	require.NoError(t, err)
	return aggregate
}

func readExport(t *testing.T, dir string) [][]string {
	t.Helper()

	path := filepath.Join(dir, "orders_type_A_17_1735689600.csv")
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return records
}

func Test_NewCSVFileExporter(t *testing.T) {
	clock := kernel.NewFixedClock(time.Unix(1735689600, 0))

	t.Run("valid parameters", func(t *testing.T) {
		exporter, err := csvexport.NewCSVFileExporter(t.TempDir(), clock)

		assert.NoError(t, err)
		assert.NotNil(t, exporter)
	})

	t.Run("empty directory", func(t *testing.T) {
		exporter, err := csvexport.NewCSVFileExporter("", clock)

		assert.Error(t, err)
		assert.Nil(t, exporter)
	})

	t.Run("nil clock", func(t *testing.T) {
		exporter, err := csvexport.NewCSVFileExporter(t.TempDir(), nil)

		assert.Error(t, err)
		assert.Nil(t, exporter)
	})
}

func Test_CSVFileExporter_ExportTypeA(t *testing.T) {
	instant := time.Unix(1735689600, 0)
	clock := kernel.NewFixedClock(instant)

	t.Run("writes header and data row", func(t *testing.T) {
		dir := t.TempDir()
		exporter, err := csvexport.NewCSVFileExporter(dir, clock)
		require.NoError(t, err)
		aggregate := newTypeAOrder(t, 120, true)

		err = exporter.ExportTypeA(context.Background(), aggregate, 17)

		require.NoError(t, err)
		records := readExport(t, dir)
		require.Len(t, records, 2)
		assert.Equal(t, []string{"ID", "Type", "Amount", "Flag", "Status", "Priority"}, records[0])
		assert.Equal(t, []string{aggregate.ID().String(), "A", "120", "true", "new", "low"}, records[1])
	})

	t.Run("records values before the status flip", func(t *testing.T) {
		dir := t.TempDir()
		exporter, err := csvexport.NewCSVFileExporter(dir, clock)
		require.NoError(t, err)
		aggregate := newTypeAOrder(t, 120, false)

		err = exporter.ExportTypeA(context.Background(), aggregate, 17)

		require.NoError(t, err)
		records := readExport(t, dir)
		assert.Equal(t, "new", records[1][4])
		assert.Equal(t, "low", records[1][5])
	})

	t.Run("high value order gets a note row", func(t *testing.T) {
		dir := t.TempDir()
		exporter, err := csvexport.NewCSVFileExporter(dir, clock)
		require.NoError(t, err)
		aggregate := newTypeAOrder(t, 250, false)

		err = exporter.ExportTypeA(context.Background(), aggregate, 17)

		require.NoError(t, err)
		records := readExport(t, dir)
		require.Len(t, records, 3)
		assert.Equal(t, []string{"", "", "", "", "Note", "High value order"}, records[2])
	})

	t.Run("amount at the note threshold gets no note row", func(t *testing.T) {
		dir := t.TempDir()
		exporter, err := csvexport.NewCSVFileExporter(dir, clock)
		require.NoError(t, err)
		aggregate := newTypeAOrder(t, 150, false)

		err = exporter.ExportTypeA(context.Background(), aggregate, 17)

		require.NoError(t, err)
		records := readExport(t, dir)
		require.Len(t, records, 2)
	})

	t.Run("creates the export directory if missing", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "exports")
		exporter, err := csvexport.NewCSVFileExporter(dir, clock)
		require.NoError(t, err)
		aggregate := newTypeAOrder(t, 120, false)

		err = exporter.ExportTypeA(context.Background(), aggregate, 17)

		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "orders_type_A_17_1735689600.csv"))
	})

	t.Run("not constructed order", func(t *testing.T) {
		exporter, err := csvexport.NewCSVFileExporter(t.TempDir(), clock)
		require.NoError(t, err)

		err = exporter.ExportTypeA(context.Background(), &order.Order{}, 17)

		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
