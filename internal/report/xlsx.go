package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/amosroger91/AI-Marketing-Agent/internal/core"
)

const sheetName = "Prospects"

// WriteXLSX writes the prospect report as a spreadsheet with the same
// column set as the CSV output.
func WriteXLSX(path string, prospects []core.ScoredProspect) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("remove default sheet: %w", err)
	}

	if err := writeRow(f, 1, columns); err != nil {
		return err
	}
	for i := range prospects {
		if err := writeRow(f, i+2, prospectRow(&prospects[i])); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save spreadsheet: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell coordinates: %w", err)
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}
