package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"jobpulse/internal/config"
	"jobpulse/internal/exporter"
	"jobpulse/internal/infrastructure"
	"jobpulse/internal/services"
)

func main() {
	dataFile := flag.String("data", "", "path to the job postings CSV (defaults to configured path)")
	registryFile := flag.String("registry", "", "path to the skill registry YAML (defaults to configured path)")
	outputDir := flag.String("out", "", "output directory for generated reports (defaults to configured path)")
	format := flag.String("format", "all", "output format: csv, excel, json or all")
	minCombo := flag.Int("min-combo", 0, "minimum postings per skill combination (defaults to configured value)")
	topCombos := flag.Int("top", 0, "number of skill combinations kept in the report (defaults to configured value)")
	flag.Parse()

	// Optional .env for local development; missing file is not an error
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if *dataFile != "" {
		cfg.Paths.DataFile = *dataFile
	}
	if *registryFile != "" {
		cfg.Paths.RegistryFile = *registryFile
	}
	if *outputDir != "" {
		cfg.Paths.OutputDir = *outputDir
	}
	if *minCombo > 0 {
		cfg.Analysis.MinComboCount = *minCombo
	}
	if *topCombos > 0 {
		cfg.Analysis.TopCombinations = *topCombos
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogger()

	if err := run(cfg, logger, *format); err != nil {
		logger.Error("Report generation failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, format string) error {
	ctx := context.Background()

	service := services.NewReportService(cfg, logger, nil)

	logger.InfoContext(ctx, "Generating market intelligence report",
		"data_file", cfg.Paths.DataFile,
		"registry_file", cfg.Paths.RegistryFile,
	)

	report, err := service.Refresh(ctx)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "Report generated",
		"report_id", report.ID,
		"rows", report.TotalRows,
		"skills", report.TotalSkills,
	)

	wantCSV := format == "csv" || format == "all"
	wantExcel := format == "excel" || format == "all"
	wantJSON := format == "json" || format == "all"
	if !wantCSV && !wantExcel && !wantJSON {
		return fmt.Errorf("unknown output format: %s", format)
	}

	if wantCSV {
		writer := exporter.NewCSVWriter(cfg.Paths.OutputDir)
		files, err := writer.WriteReport(report)
		if err != nil {
			return fmt.Errorf("write CSV report: %w", err)
		}
		logger.InfoContext(ctx, "CSV tables written",
			"count", len(files),
			"output_dir", cfg.Paths.OutputDir,
		)
	}

	if wantExcel {
		writer := exporter.NewExcelWriter(cfg.Paths.OutputDir)
		fileName := fmt.Sprintf("market_report_%s.xlsx", report.GeneratedAt.Format("2006-01-02"))
		if err := writer.WriteReport(fileName, report); err != nil {
			return fmt.Errorf("write Excel report: %w", err)
		}
		logger.InfoContext(ctx, "Excel workbook written", "file", fileName)
	}

	if wantJSON {
		fileName := fmt.Sprintf("market_report_%s.json", report.GeneratedAt.Format("2006-01-02"))
		if err := exporter.WriteReportJSON(cfg.Paths.OutputDir, fileName, report); err != nil {
			return fmt.Errorf("write JSON report: %w", err)
		}
		logger.InfoContext(ctx, "JSON report written", "file", fileName)
	}

	printSummary(report.TotalRows, report.TotalSkills, len(report.SkillPremiums), len(report.Recommendations))
	return nil
}

// printSummary writes a short human-readable summary to stdout so the tool
// is usable without digging into the structured logs
func printSummary(rows, skills, premiums, recommendations int) {
	var b strings.Builder
	b.WriteString("Market intelligence report complete\n")
	fmt.Fprintf(&b, "  rows analyzed:    %d\n", rows)
	fmt.Fprintf(&b, "  skills tracked:   %d\n", skills)
	fmt.Fprintf(&b, "  premiums found:   %d\n", premiums)
	fmt.Fprintf(&b, "  recommendations:  %d\n", recommendations)
	fmt.Print(b.String())
}
