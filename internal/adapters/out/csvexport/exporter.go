// Package csvexport implements the FileExporter port by writing one CSV file
// per exported order into a configured directory.
package csvexport

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// highValueNoteThreshold is the amount above which the export carries an
// extra note row.
const highValueNoteThreshold = 150.0

// CSVFileExporter implements the FileExporter port on the local filesystem.
type CSVFileExporter struct {
	dir   string
	clock kernel.Clock
}

var _ ports.FileExporter = &CSVFileExporter{}

// NewCSVFileExporter creates a file exporter writing into dir. The directory
// is created on first use if it does not exist.
func NewCSVFileExporter(dir string, clock kernel.Clock) (*CSVFileExporter, error) {
	if dir == "" {
		return nil, errs.NewValueIsRequiredError("dir")
	}
	if clock == nil {
		return nil, errs.NewValueIsRequiredError("clock")
	}

	return &CSVFileExporter{dir: dir, clock: clock}, nil
}

// ExportTypeA writes the order's current field values as a CSV file named
// orders_type_A_<ownerID>_<unix timestamp>.csv. Orders above the high value
// threshold get an extra note row.
func (e *CSVFileExporter) ExportTypeA(ctx context.Context, aggregate *order.Order, ownerID int64) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	name := fmt.Sprintf("orders_type_A_%d_%d.csv", ownerID, e.clock.Now().Unix())
	file, err := os.Create(filepath.Join(e.dir, name))
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer file.Close()

	records := [][]string{
		{"ID", "Type", "Amount", "Flag", "Status", "Priority"},
		{
			aggregate.ID().String(),
			aggregate.TypeTag().String(),
			strconv.FormatFloat(aggregate.Amount(), 'g', -1, 64),
			strconv.FormatBool(aggregate.Flag()),
			aggregate.Status().String(),
			aggregate.Priority().String(),
		},
	}
	if aggregate.Amount() > highValueNoteThreshold {
		records = append(records, []string{"", "", "", "", "Note", "High value order"})
	}

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	return nil
}
