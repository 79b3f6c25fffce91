// Package report exports the run's summary statistics and hypothesis
// test results as an Excel workbook, so a run leaves a keepable
// artifact beside the plot images.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	sheetGroups = "Group Statistics"
	sheetTests  = "Hypothesis Tests"
)

// GroupRow is one grouped summary line in the workbook.
type GroupRow struct {
	Category string
	Level    string
	Count    int
	Mean     float64
	Median   float64
	StdDev   float64
	Min      float64
	Max      float64
}

// TestRow is one hypothesis test result line in the workbook.
type TestRow struct {
	Name        string
	Detail      string
	Statistic   float64
	P           float64
	Significant bool
}

// WriteWorkbook writes the grouped statistics and test results to an
// xlsx file at path.
func WriteWorkbook(path string, groups []GroupRow, tests []TestRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetGroups); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(sheetTests); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	groupHeader := []interface{}{"Category", "Level", "Count", "Mean", "Median", "Std Dev", "Min", "Max"}
	if err := writeRow(f, sheetGroups, 1, groupHeader); err != nil {
		return err
	}
	for i, g := range groups {
		row := []interface{}{g.Category, g.Level, g.Count, g.Mean, g.Median, g.StdDev, g.Min, g.Max}
		if err := writeRow(f, sheetGroups, i+2, row); err != nil {
			return err
		}
	}

	testHeader := []interface{}{"Test", "Detail", "Statistic", "P-Value", "Significant (p<0.05)"}
	if err := writeRow(f, sheetTests, 1, testHeader); err != nil {
		return err
	}
	for i, t := range tests {
		row := []interface{}{t.Name, t.Detail, t.Statistic, t.P, t.Significant}
		if err := writeRow(f, sheetTests, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}
