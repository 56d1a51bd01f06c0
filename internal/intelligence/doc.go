// Package intelligence implements the JobPulse statistical market intelligence engine.
//
// The engine computes descriptive and inferential statistics over an immutable
// snapshot of job postings annotated with binary skill indicators and salary
// figures, and turns them into ranked, classified result tables.
//
// # Core Components
//
// The engine combines six analyses:
//
//  1. Aggregation: group-wise salary statistics (mean, median, std, quartiles)
//  2. Skill Premium: per-skill two-sample comparison with a Welch t-test
//  3. Correlation: Pearson correlation matrix over skill indicator vectors
//     and co-occurrence pair extraction
//  4. Value Scoring: normalized 0-100 blend of relative premium and relative
//     demand, with tier and talent-gap quadrant classification
//  5. Skill Combinations: salary efficiency of exact skill sets
//  6. Recommendations: prioritized skill-acquisition ranking
//
// # Architecture
//
//   - types.go: result structures and AnalysisConfig
//   - stats.go: descriptive statistics and group-by aggregation
//   - ttest.go: significance testing strategy (Welch and conservative)
//   - premium.go: skill premium analyzer with bounded fan-out
//   - correlation.go: correlation matrix and co-occurrence extraction
//   - value.go: value scoring, tiers, and talent-gap classification
//   - combination.go: skill combination grouping and efficiency
//   - recommend.go: recommendation ranking
//   - groups.go: categorical group analyses and demand ranking
//   - report.go: engine orchestrator and full-report entry point
//   - tables.go: row-oriented table rendering for export
//
// # Usage Example
//
//	snap, err := dataset.NewLoader(logger).LoadCSV(ctx, "data/jobs_master.csv", registry)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	engine, err := intelligence.NewEngine(snap, intelligence.DefaultAnalysisConfig(), logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := engine.GenerateReport(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for name, table := range report.Tables() {
//	    fmt.Println(name, len(table.Rows))
//	}
//
// # Statistical Notes
//
// Premiums are descriptive associations, not causal effects. Significance
// uses an independent two-sample Welch t-test; when no tester is available a
// conservative strategy reports p=1.0 so nothing is ever claimed significant
// by default. Skills with degenerate partitions (all rows with or without the
// skill, or a zero without-skill mean) are excluded from results rather than
// failing the report.
package intelligence
