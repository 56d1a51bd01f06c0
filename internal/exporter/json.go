package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"jobpulse/internal/intelligence"
)

// WriteReportJSON serializes the complete report to an indented JSON file.
// Relative paths resolve against the output directory.
func WriteReportJSON(outputDir, fileName string, report *intelligence.Report) error {
	if report == nil {
		return fmt.Errorf("exporter: report is required")
	}

	fullPath := fileName
	if !filepath.IsAbs(fullPath) {
		fullPath = filepath.Join(outputDir, fileName)
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}

	slog.Info("Report exported to JSON",
		slog.String("report_id", report.ID),
		slog.String("full_path", fullPath),
		slog.Int("bytes", len(data)))

	return nil
}
