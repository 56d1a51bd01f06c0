package dataset

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCSV(t *testing.T) {
	reg := testRegistry()
	loader := NewLoader(slog.Default())
	ctx := context.Background()

	t.Run("loads valid dataset", func(t *testing.T) {
		path := writeCSV(t, `job_id,salary_avg,experience_level,industry,location_region,company_size,skills_count,skill_python,skill_sql,skill_aws,skill_tensorflow
j1,120000,Senior,Technology,USA,Large,2,1,1,0,0
j2,95000,Entry,Finance,International,Small,1,0,1,0,0
j3,150000,Senior,Technology,USA,Large,3,1,0,1,1
`)

		snap, err := loader.LoadCSV(ctx, path, reg)
		require.NoError(t, err)
		assert.Equal(t, 3, snap.Len())
		assert.Equal(t, []string{"python", "sql", "aws", "tensorflow"}, snap.SkillNames())

		rows := snap.Rows()
		assert.Equal(t, "j1", rows[0].JobID)
		assert.Equal(t, 120000.0, rows[0].SalaryAvg)
		assert.True(t, rows[0].HasSkill("python"))
		assert.False(t, rows[0].HasSkill("aws"))
		assert.Equal(t, "Senior", rows[0].ExperienceLevel)
		assert.Equal(t, "Technology", rows[0].Industry)
		assert.Equal(t, "USA", rows[0].LocationRegion)
		assert.Equal(t, "Large", rows[0].CompanySize)
		assert.Equal(t, 2, rows[0].SkillsCount)
	})

	t.Run("missing required column fails", func(t *testing.T) {
		path := writeCSV(t, `job_id,skill_python
j1,1
`)
		_, err := loader.LoadCSV(ctx, path, reg)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingColumn)
	})

	t.Run("no matching skill columns fails", func(t *testing.T) {
		path := writeCSV(t, `job_id,salary_avg
j1,100000
`)
		_, err := loader.LoadCSV(ctx, path, reg)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingColumn)
	})

	t.Run("malformed rows are skipped not fatal", func(t *testing.T) {
		path := writeCSV(t, `job_id,salary_avg,skill_python
j1,120000,1
j2,not-a-number,1
j3,95000,2
,100000,1
j4,110000
j5,90000,0
`)
		snap, err := loader.LoadCSV(ctx, path, reg)
		require.NoError(t, err)
		// j2 (bad salary), j3 (indicator out of range), blank id and the
		// short j4 row all skipped
		assert.Equal(t, 2, snap.Len())
		assert.Equal(t, "j1", snap.Rows()[0].JobID)
		assert.Equal(t, "j5", snap.Rows()[1].JobID)
	})

	t.Run("ragged rows are skipped not fatal", func(t *testing.T) {
		path := writeCSV(t, `job_id,salary_avg,skill_python
j1,120000,1
j2,95000
j3,90000,0
`)
		snap, err := loader.LoadCSV(ctx, path, reg)
		require.NoError(t, err)
		assert.Equal(t, 2, snap.Len())
		assert.Equal(t, "j1", snap.Rows()[0].JobID)
		assert.Equal(t, "j3", snap.Rows()[1].JobID)
	})

	t.Run("unregistered skill columns are ignored", func(t *testing.T) {
		path := writeCSV(t, `job_id,salary_avg,skill_python,skill_fortran
j1,120000,1,1
`)
		snap, err := loader.LoadCSV(ctx, path, reg)
		require.NoError(t, err)
		assert.Equal(t, []string{"python"}, snap.SkillNames())
		assert.False(t, snap.Rows()[0].HasSkill("fortran"))
	})

	t.Run("skills count derived when column absent", func(t *testing.T) {
		path := writeCSV(t, `job_id,salary_avg,skill_python,skill_sql
j1,120000,1,1
j2,90000,0,0
`)
		snap, err := loader.LoadCSV(ctx, path, reg)
		require.NoError(t, err)
		assert.Equal(t, 2, snap.Rows()[0].SkillsCount)
		assert.Equal(t, 0, snap.Rows()[1].SkillsCount)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.LoadCSV(ctx, filepath.Join(t.TempDir(), "nope.csv"), reg)
		assert.Error(t, err)
	})
}

func TestLoadRegistry(t *testing.T) {
	t.Run("valid registry file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "registry.yaml")
		content := `
skills:
  - python
  - aws
categories:
  cloud_platforms:
    - aws
  programming_languages:
    - python
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		reg, err := LoadRegistry(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"python", "aws"}, reg.Skills)
		assert.Equal(t, []string{"aws"}, reg.Category("cloud_platforms"))
	})

	t.Run("invalid registry file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "registry.yaml")
		require.NoError(t, os.WriteFile(path, []byte("skills: []\n"), 0644))
		_, err := LoadRegistry(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadRegistry(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
