package dataset

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for snapshot construction. These are the fatal class:
// a snapshot that fails to build aborts report generation entirely.
var (
	ErrEmptySnapshot  = errors.New("dataset: no records in snapshot")
	ErrNilRegistry    = errors.New("dataset: skill registry is required")
	ErrDuplicateJobID = errors.New("dataset: duplicate job_id")
	ErrMissingColumn  = errors.New("dataset: required column missing")
)

// JobRecord is one job posting row of the tabular dataset.
// Skill indicators are kept as a set of active skill names; a skill absent
// from the set is an indicator value of 0.
type JobRecord struct {
	JobID             string  `json:"job_id"`
	SalaryAvg         float64 `json:"salary_avg"`
	ExperienceLevel   string  `json:"experience_level"`
	ExperienceOrdinal int     `json:"experience_level_ordinal"`
	Industry          string  `json:"industry"`
	LocationRegion    string  `json:"location_region"`
	CompanySize       string  `json:"company_size"`
	SkillsCount       int     `json:"skills_count"`

	Skills map[string]bool `json:"-"`
}

// HasSkill reports whether the posting requires the named skill
func (r JobRecord) HasSkill(name string) bool {
	return r.Skills[name]
}

// IsValid checks the row-level invariants
func (r JobRecord) IsValid() bool {
	return r.JobID != "" &&
		r.SalaryAvg > 0 &&
		!math.IsNaN(r.SalaryAvg) && !math.IsInf(r.SalaryAvg, 0) &&
		r.SkillsCount >= 0
}

// Snapshot is an immutable in-memory view of the merged job posting table.
// The engine holds no state beyond a snapshot reference, so a new snapshot
// can be swapped in between runs without touching engine code.
type Snapshot struct {
	records  []JobRecord
	registry *Registry
	skills   []string // registry skills actually present in the data, registry order
}

// NewSnapshot builds a snapshot from validated records. Records with
// duplicate job IDs are a construction error, not a skippable one.
// The skills argument lists the registry skills that are actually present
// in the source data; a nil slice means all registry skills are present.
func NewSnapshot(records []JobRecord, registry *Registry, skills []string) (*Snapshot, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}
	if len(records) == 0 {
		return nil, ErrEmptySnapshot
	}

	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		if !r.IsValid() {
			return nil, fmt.Errorf("invalid record %q: salary=%g", r.JobID, r.SalaryAvg)
		}
		if _, ok := seen[r.JobID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateJobID, r.JobID)
		}
		seen[r.JobID] = struct{}{}
	}

	if skills == nil {
		skills = registry.Skills
	}

	return &Snapshot{
		records:  records,
		registry: registry,
		skills:   skills,
	}, nil
}

// Len returns the number of rows in the snapshot
func (s *Snapshot) Len() int {
	return len(s.records)
}

// Rows returns the underlying records. Callers must treat the slice as
// read-only; the engine relies on this for lock-free parallel analysis.
func (s *Snapshot) Rows() []JobRecord {
	return s.records
}

// Registry returns the skill registry backing this snapshot
func (s *Snapshot) Registry() *Registry {
	return s.registry
}

// SkillNames returns the registry skills present in the data, in registry order
func (s *Snapshot) SkillNames() []string {
	return s.skills
}

// Salaries returns the salary column as a fresh slice
func (s *Snapshot) Salaries() []float64 {
	out := make([]float64, len(s.records))
	for i, r := range s.records {
		out[i] = r.SalaryAvg
	}
	return out
}

// SkillVector returns the 0/1 indicator column for a skill as floats,
// in row order. Used by the correlation engine.
func (s *Snapshot) SkillVector(name string) []float64 {
	out := make([]float64, len(s.records))
	for i, r := range s.records {
		if r.HasSkill(name) {
			out[i] = 1
		}
	}
	return out
}

// SplitBySkill partitions salaries into rows with and without the skill
func (s *Snapshot) SplitBySkill(name string) (with, without []float64) {
	for _, r := range s.records {
		if r.HasSkill(name) {
			with = append(with, r.SalaryAvg)
		} else {
			without = append(without, r.SalaryAvg)
		}
	}
	return with, without
}
