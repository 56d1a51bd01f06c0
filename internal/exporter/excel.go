package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"jobpulse/internal/intelligence"
)

// Excel sheet names are capped by the format itself
const maxSheetNameLen = 31

// ExcelWriter writes a full report as a single workbook, one sheet per
// analysis table
type ExcelWriter struct {
	outputDir string
}

// NewExcelWriter creates an Excel writer rooted at the given output directory
func NewExcelWriter(outputDir string) *ExcelWriter {
	return &ExcelWriter{outputDir: outputDir}
}

// WriteReport writes every table of the report into a workbook at the given
// file name. Sheet order follows the deterministic table name order.
func (w *ExcelWriter) WriteReport(fileName string, report *intelligence.Report) error {
	if report == nil {
		return fmt.Errorf("exporter: report is required")
	}

	fullPath := fileName
	if !filepath.IsAbs(fullPath) {
		fullPath = filepath.Join(w.outputDir, fileName)
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	tables := report.Tables()
	for _, name := range report.TableNames() {
		if err := writeSheet(f, tables[name]); err != nil {
			return fmt.Errorf("sheet %s: %w", name, err)
		}
	}

	// Drop the default sheet excelize seeds the workbook with
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	if err := f.SaveAs(fullPath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	slog.Info("Report exported to Excel",
		slog.String("report_id", report.ID),
		slog.String("full_path", fullPath),
		slog.Int("sheet_count", len(tables)))

	return nil
}

// writeSheet renders one table as a worksheet with a header row
func writeSheet(f *excelize.File, table intelligence.Table) error {
	sheet := sheetName(table.Name)
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	for col, header := range table.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	for rowIdx, row := range table.Rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// sheetName truncates a table name to the worksheet name limit
func sheetName(name string) string {
	if len(name) <= maxSheetNameLen {
		return name
	}
	return name[:maxSheetNameLen]
}
