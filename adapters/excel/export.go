package excel

import (
	"fmt"
	"io"

	"spacexdash/domain/chart"

	"github.com/xuri/excelize/v2"
)

// ExportSheet is the worksheet written by WriteScatter
const ExportSheet = "Launches"

var exportHeaders = []interface{}{ColumnFlightNumber, ColumnSite, ColumnPayload, ColumnBoosterCategory, ColumnClass}

// WriteScatter writes the points of a scatter chart as an XLSX workbook
func WriteScatter(w io.Writer, sc chart.ScatterChart) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(DefaultSheet, ExportSheet); err != nil {
		return fmt.Errorf("failed to name export sheet: %w", err)
	}
	if err := f.SetSheetRow(ExportSheet, "A1", &exportHeaders); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for i, p := range sc.Points {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{p.Flight, p.Site, p.X, p.Category, p.Y}
		if err := f.SetSheetRow(ExportSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write export row %d: %w", i+1, err)
		}
	}

	if err := f.SetColWidth(ExportSheet, "A", "E", 22); err != nil {
		return err
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
