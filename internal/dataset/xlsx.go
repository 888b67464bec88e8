package dataset

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/obsidianstack/empviz/pkg/types"
)

// SheetName is the worksheet WriteXLSX puts the table on.
const SheetName = "Employees"

// WriteXLSX writes t to path as a single-sheet workbook, header row first.
// Numeric columns are stored as numbers, not text.
func WriteXLSX(path string, t types.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("dataset: write xlsx: %w", err)
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("dataset: write xlsx: %w", err)
	}

	for i, rec := range t {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("dataset: write xlsx: %w", err)
		}
		values := []interface{}{
			rec.EmployeeID,
			rec.Department,
			rec.Region,
			rec.PerformanceScore,
			rec.YearsExperience,
			rec.SatisfactionRating,
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("dataset: write xlsx: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("dataset: write xlsx: %w", err)
	}
	return nil
}
