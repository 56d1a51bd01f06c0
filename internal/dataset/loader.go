package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cast"
)

// Column names expected in the source CSV. Skill indicator columns use the
// skill_<name> convention of the upstream enrichment pipeline; the mapping
// back to registry skill names happens here so nothing downstream ever
// touches column names.
const (
	colJobID             = "job_id"
	colSalaryAvg         = "salary_avg"
	colExperienceLevel   = "experience_level"
	colExperienceOrdinal = "experience_level_ordinal"
	colIndustry          = "industry"
	colLocationRegion    = "location_region"
	colCompanySize       = "company_size"
	colSkillsCount       = "skills_count"

	skillColumnPrefix = "skill_"
)

// Loader reads job posting snapshots from enriched CSV files
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a loader. A nil logger falls back to slog.Default().
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// LoadCSV reads the merged dataset from path and builds a snapshot against
// the supplied registry. Missing required columns are fatal; malformed rows
// are skipped with a warning and the overall load still succeeds.
func (l *Loader) LoadCSV(ctx context.Context, path string, registry *Registry) (*Snapshot, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}
	if err := registry.Validate(); err != nil {
		return nil, fmt.Errorf("validate registry: %w", err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Ragged rows are a data problem, not a file problem: disable the
	// per-record field count check so short rows reach the skip path below.
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset file: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("dataset file %s: %w", path, ErrEmptySnapshot)
	}

	header := rows[0]
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}

	for _, required := range []string{colJobID, colSalaryAvg} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	// Resolve which registry skills have indicator columns in this file.
	// Skills without a column are dropped from the analysis with a warning,
	// never silently zero-filled.
	var available []string
	skillIndex := make(map[string]int)
	for _, skill := range registry.Skills {
		col := skillColumnPrefix + skill
		if i, ok := index[col]; ok {
			available = append(available, skill)
			skillIndex[skill] = i
		} else {
			l.logger.WarnContext(ctx, "skill column not found, skipping skill",
				"skill", skill,
				"column", col,
			)
		}
	}
	if len(available) == 0 {
		return nil, fmt.Errorf("%w: no skill indicator columns match registry", ErrMissingColumn)
	}

	records := make([]JobRecord, 0, len(rows)-1)
	skipped := 0

	for rowNum, row := range rows[1:] {
		if len(row) < len(header) {
			skipped++
			l.logger.WarnContext(ctx, "skipping short row", "row", rowNum+2, "cells", len(row))
			continue
		}

		record, err := l.parseRow(row, index, skillIndex, available)
		if err != nil {
			skipped++
			l.logger.WarnContext(ctx, "skipping malformed row",
				"row", rowNum+2,
				"error", err,
			)
			continue
		}
		records = append(records, record)
	}

	l.logger.InfoContext(ctx, "dataset loaded",
		"path", path,
		"rows", len(records),
		"skipped", skipped,
		"skills", len(available),
	)

	return NewSnapshot(records, registry, available)
}

// parseRow converts one CSV row into a JobRecord
func (l *Loader) parseRow(row []string, index map[string]int, skillIndex map[string]int, skills []string) (JobRecord, error) {
	jobID := row[index[colJobID]]
	if jobID == "" {
		return JobRecord{}, fmt.Errorf("empty job_id")
	}

	salary, err := cast.ToFloat64E(row[index[colSalaryAvg]])
	if err != nil {
		return JobRecord{}, fmt.Errorf("parse salary_avg: %w", err)
	}
	if salary <= 0 {
		return JobRecord{}, fmt.Errorf("non-positive salary_avg: %g", salary)
	}

	record := JobRecord{
		JobID:     jobID,
		SalaryAvg: salary,
		Skills:    make(map[string]bool, len(skills)),
	}

	for _, skill := range skills {
		indicator, err := cast.ToIntE(row[skillIndex[skill]])
		if err != nil {
			return JobRecord{}, fmt.Errorf("parse indicator for %s: %w", skill, err)
		}
		switch indicator {
		case 0:
		case 1:
			record.Skills[skill] = true
		default:
			return JobRecord{}, fmt.Errorf("indicator for %s out of range: %d", skill, indicator)
		}
	}

	// Optional categorical and derived columns
	if i, ok := index[colExperienceLevel]; ok {
		record.ExperienceLevel = row[i]
	}
	if i, ok := index[colExperienceOrdinal]; ok {
		if v, err := cast.ToIntE(row[i]); err == nil {
			record.ExperienceOrdinal = v
		}
	}
	if i, ok := index[colIndustry]; ok {
		record.Industry = row[i]
	}
	if i, ok := index[colLocationRegion]; ok {
		record.LocationRegion = row[i]
	}
	if i, ok := index[colCompanySize]; ok {
		record.CompanySize = row[i]
	}

	if i, ok := index[colSkillsCount]; ok {
		count, err := cast.ToIntE(row[i])
		if err != nil || count < 0 {
			return JobRecord{}, fmt.Errorf("parse skills_count: %v", row[i])
		}
		record.SkillsCount = count
	} else {
		record.SkillsCount = len(record.Skills)
	}

	return record, nil
}
