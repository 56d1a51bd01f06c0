package intelligence

import (
	"sort"
	"strconv"
)

// Table is a self-contained, serializable result table: named columns and
// row-oriented string records, ready for CSV or spreadsheet export.
type Table struct {
	Name    string     `json:"name"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Tables renders every analysis of the report as a named table. The map is
// the uniform fan-out surface for exporters and visualization consumers.
func (r *Report) Tables() map[string]Table {
	tables := map[string]Table{
		"overall_statistics":     r.overallTable(),
		"skill_premium":          premiumTable("skill_premium", r.SkillPremiums),
		"skills_demand_ranking":  r.demandTable(),
		"skills_cooccurrence":    r.cooccurrenceTable(),
		"skills_high_value":      highValueTable("skills_high_value", r.HighValueSkills),
		"skills_recommendations": r.recommendationTable(),
		"top_skill_combinations": r.combinationTable(),
		"experience_impact":      r.experienceTable(),
		"industry_comparison":    r.industryTable(),
		"geographic_gaps":        r.regionTable(),
		"company_size_impact":    r.companySizeTable(),
	}

	for category, premiums := range r.TechStackROI {
		name := "tech_stack_roi_" + category
		tables[name] = premiumTable(name, premiums)
	}

	tables["talent_gap_critical_skills"] = highValueTable("talent_gap_critical_skills", r.TalentGaps.CriticalSkills)
	tables["talent_gap_emerging_opportunities"] = highValueTable("talent_gap_emerging_opportunities", r.TalentGaps.EmergingOpportunities)
	tables["talent_gap_oversupplied_skills"] = highValueTable("talent_gap_oversupplied_skills", r.TalentGaps.OversuppliedSkills)
	tables["talent_gap_undervalued_gems"] = highValueTable("talent_gap_undervalued_gems", r.TalentGaps.UndervaluedGems)

	return tables
}

// TableNames returns the table names in deterministic order
func (r *Report) TableNames() []string {
	tables := r.Tables()
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Report) overallTable() Table {
	return Table{
		Name:    "overall_statistics",
		Headers: []string{"mean", "median", "std", "min", "max", "count", "q25", "q75"},
		Rows: [][]string{{
			formatFloat(r.Overall.Mean, 2),
			formatFloat(r.Overall.Median, 2),
			formatFloat(r.Overall.Std, 2),
			formatFloat(r.Overall.Min, 2),
			formatFloat(r.Overall.Max, 2),
			strconv.Itoa(r.Overall.Count),
			formatFloat(r.Overall.Q25, 2),
			formatFloat(r.Overall.Q75, 2),
		}},
	}
}

func premiumTable(name string, premiums []SkillPremium) Table {
	table := Table{
		Name: name,
		Headers: []string{
			"skill_name", "avg_salary_with_skill", "avg_salary_without_skill",
			"salary_premium", "premium_percentage", "count_with_skill",
			"count_without_skill", "p_value", "is_significant",
		},
	}
	for _, p := range premiums {
		table.Rows = append(table.Rows, []string{
			p.SkillName,
			formatFloat(p.AvgWithSkill, 2),
			formatFloat(p.AvgWithoutSkill, 2),
			formatFloat(p.Premium, 2),
			formatFloat(p.PremiumPct, 2),
			strconv.Itoa(p.CountWith),
			strconv.Itoa(p.CountWithout),
			formatFloat(p.PValue, 4),
			strconv.FormatBool(p.IsSignificant),
		})
	}
	return table
}

func (r *Report) demandTable() Table {
	table := Table{
		Name:    "skills_demand_ranking",
		Headers: []string{"skill_name", "demand_count", "demand_percentage", "rank", "demand_level"},
	}
	for _, d := range r.DemandRanking {
		table.Rows = append(table.Rows, []string{
			d.SkillName,
			strconv.Itoa(d.DemandCount),
			formatFloat(d.DemandPct, 2),
			strconv.Itoa(d.Rank),
			d.DemandLevel,
		})
	}
	return table
}

func (r *Report) cooccurrenceTable() Table {
	table := Table{
		Name:    "skills_cooccurrence",
		Headers: []string{"skill_1", "skill_2", "correlation", "strength"},
	}
	for _, e := range r.Cooccurrence {
		table.Rows = append(table.Rows, []string{
			e.Skill1,
			e.Skill2,
			formatFloat(e.Correlation, 4),
			e.Strength,
		})
	}
	return table
}

func highValueTable(name string, skills []HighValueSkill) Table {
	table := Table{
		Name: name,
		Headers: []string{
			"skill_name", "avg_salary_with_skill", "avg_salary_without_skill",
			"salary_premium", "premium_percentage", "demand_count",
			"demand_percentage", "p_value", "is_significant", "value_score", "value_tier",
		},
	}
	for _, s := range skills {
		table.Rows = append(table.Rows, []string{
			s.SkillName,
			formatFloat(s.AvgWithSkill, 2),
			formatFloat(s.AvgWithoutSkill, 2),
			formatFloat(s.Premium, 2),
			formatFloat(s.PremiumPct, 2),
			strconv.Itoa(s.DemandCount),
			formatFloat(s.DemandPct, 2),
			formatFloat(s.PValue, 4),
			strconv.FormatBool(s.IsSignificant),
			formatFloat(s.ValueScore, 2),
			s.ValueTier,
		})
	}
	return table
}

func (r *Report) recommendationTable() Table {
	table := Table{
		Name: "skills_recommendations",
		Headers: []string{
			"skill_name", "value_score", "value_tier", "premium_percentage",
			"demand_percentage", "learning_roi", "priority",
		},
	}
	for _, rec := range r.Recommendations {
		table.Rows = append(table.Rows, []string{
			rec.SkillName,
			formatFloat(rec.ValueScore, 2),
			rec.ValueTier,
			formatFloat(rec.PremiumPct, 2),
			formatFloat(rec.DemandPct, 2),
			formatFloat(rec.LearningROI, 2),
			rec.Priority,
		})
	}
	return table
}

func (r *Report) combinationTable() Table {
	table := Table{
		Name: "top_skill_combinations",
		Headers: []string{
			"skill_combination", "mean_salary", "median_salary", "count",
			"num_skills", "salary_per_skill",
		},
	}
	for _, c := range r.SkillCombinations {
		table.Rows = append(table.Rows, []string{
			c.Signature,
			formatFloat(c.MeanSalary, 2),
			formatFloat(c.MedianSalary, 2),
			strconv.Itoa(c.Count),
			strconv.Itoa(c.NumSkills),
			formatFloat(c.SalaryPerSkill, 2),
		})
	}
	return table
}

func (r *Report) experienceTable() Table {
	table := Table{
		Name:    "experience_impact",
		Headers: []string{"experience_level", "mean", "median", "std", "count", "pct_increase"},
	}
	for _, exp := range r.ExperienceImpact {
		pctIncrease := "N/A"
		if exp.HasIncrease {
			pctIncrease = formatFloat(exp.PctIncrease, 1)
		}
		table.Rows = append(table.Rows, []string{
			exp.Level,
			formatFloat(exp.Stats.Mean, 2),
			formatFloat(exp.Stats.Median, 2),
			formatFloat(exp.Stats.Std, 2),
			strconv.Itoa(exp.Stats.Count),
			pctIncrease,
		})
	}
	return table
}

func (r *Report) industryTable() Table {
	table := Table{
		Name:    "industry_comparison",
		Headers: []string{"industry", "mean", "median", "std", "count", "premium", "premium_percentage"},
	}
	for _, ind := range r.IndustryComparison {
		table.Rows = append(table.Rows, []string{
			ind.Industry,
			formatFloat(ind.Stats.Mean, 2),
			formatFloat(ind.Stats.Median, 2),
			formatFloat(ind.Stats.Std, 2),
			strconv.Itoa(ind.Stats.Count),
			formatFloat(ind.Premium, 2),
			formatFloat(ind.PremiumPct, 2),
		})
	}
	return table
}

func (r *Report) regionTable() Table {
	table := Table{
		Name:    "geographic_gaps",
		Headers: []string{"location_region", "mean", "median", "std", "count", "gap_from_max", "gap_percentage"},
	}
	for _, region := range r.RegionGaps {
		table.Rows = append(table.Rows, []string{
			region.Region,
			formatFloat(region.Stats.Mean, 2),
			formatFloat(region.Stats.Median, 2),
			formatFloat(region.Stats.Std, 2),
			strconv.Itoa(region.Stats.Count),
			formatFloat(region.GapFromMax, 2),
			formatFloat(region.GapPct, 2),
		})
	}
	return table
}

func (r *Report) companySizeTable() Table {
	table := Table{
		Name:    "company_size_impact",
		Headers: []string{"company_size", "mean", "median", "std", "count"},
	}
	for _, size := range r.CompanySizeImpact {
		table.Rows = append(table.Rows, []string{
			size.Size,
			formatFloat(size.Stats.Mean, 2),
			formatFloat(size.Stats.Median, 2),
			formatFloat(size.Stats.Std, 2),
			strconv.Itoa(size.Stats.Count),
		})
	}
	return table
}

// formatFloat formats a float with fixed precision for table output
func formatFloat(value float64, precision int) string {
	return strconv.FormatFloat(value, 'f', precision, 64)
}
