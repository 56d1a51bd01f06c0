// Package exporter persists market intelligence reports to disk.
//
// This package contains three main components:
//
// CSVWriter: Core CSV writing functionality with support for headers,
// streaming, and UTF-8 BOM for Excel compatibility. Each report table is
// written to its own CSV file in the output directory.
//
// ExcelWriter: Writes the full report as a single workbook with one sheet
// per analysis table.
//
// JSON export: The complete report structure serialized for programmatic
// consumers.
//
// Example usage:
//
//	writer := exporter.NewCSVWriter(cfg.Paths.OutputDir)
//
//	// Export every table of a report
//	files, err := writer.WriteReport(report)
//
//	// Or a single workbook
//	excel := exporter.NewExcelWriter(cfg.Paths.OutputDir)
//	err = excel.WriteReport("market_report.xlsx", report)
package exporter
