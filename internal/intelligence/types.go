package intelligence

// Correlation strength labels for co-occurrence edges
const (
	StrengthModerate = "Moderate"
	StrengthStrong   = "Strong"
)

// Value tiers by score. Boundaries are fixed constants so tiers stay
// comparable across runs, not dataset-dependent quantiles.
const (
	TierStandard  = "Standard"
	TierHighValue = "High-Value"
	TierPremium   = "Premium"

	tierHighValueFloor = 33.0
	tierPremiumFloor   = 66.0
)

// Recommendation priorities by value score, fixed bins
const (
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"

	priorityHighFloor     = 50.0
	priorityCriticalFloor = 75.0
)

// Demand level labels for the demand ranking
const (
	DemandLow      = "Low"
	DemandMedium   = "Medium"
	DemandHigh     = "High"
	DemandVeryHigh = "Very High"
)

// AnalysisConfig carries every threshold the engine applies. The zero value
// is not usable; construct with DefaultAnalysisConfig and override fields.
type AnalysisConfig struct {
	// Significance level for the two-sample test
	SignificanceLevel float64 `json:"significance_level"`

	// Correlation thresholds for co-occurrence extraction
	MinCorrelation    float64 `json:"min_correlation"`
	StrongCorrelation float64 `json:"strong_correlation"`

	// Skill combination filtering
	MinComboCount   int `json:"min_combo_count"`
	TopCombinations int `json:"top_combinations"`

	// Talent-gap quadrant thresholds, all percentages
	CriticalDemandPct      float64 `json:"critical_demand_pct"`
	CriticalPremiumPct     float64 `json:"critical_premium_pct"`
	EmergingDemandLowPct   float64 `json:"emerging_demand_low_pct"`
	EmergingDemandHighPct  float64 `json:"emerging_demand_high_pct"`
	EmergingPremiumPct     float64 `json:"emerging_premium_pct"`
	OversuppliedDemandPct  float64 `json:"oversupplied_demand_pct"`
	OversuppliedPremiumPct float64 `json:"oversupplied_premium_pct"`
	UndervaluedDemandPct   float64 `json:"undervalued_demand_pct"`
	UndervaluedPremiumPct  float64 `json:"undervalued_premium_pct"`

	// Maximum concurrent per-skill computations
	MaxConcurrency int `json:"max_concurrency"`
}

// DefaultAnalysisConfig returns the standard thresholds
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		SignificanceLevel: 0.05,
		MinCorrelation:    0.3,
		StrongCorrelation: 0.6,
		MinComboCount:     5,
		TopCombinations:   20,

		CriticalDemandPct:      20,
		CriticalPremiumPct:     10,
		EmergingDemandLowPct:   10,
		EmergingDemandHighPct:  20,
		EmergingPremiumPct:     20,
		OversuppliedDemandPct:  20,
		OversuppliedPremiumPct: 5,
		UndervaluedDemandPct:   15,
		UndervaluedPremiumPct:  15,

		MaxConcurrency: 4,
	}
}

// IsValid checks the configuration invariants
func (c AnalysisConfig) IsValid() bool {
	return c.SignificanceLevel > 0 && c.SignificanceLevel <= 1 &&
		c.MinCorrelation >= 0 && c.MinCorrelation <= 1 &&
		c.StrongCorrelation >= c.MinCorrelation && c.StrongCorrelation <= 1 &&
		c.MinComboCount > 0 &&
		c.EmergingDemandLowPct <= c.EmergingDemandHighPct &&
		c.MaxConcurrency > 0
}

// SalaryStatistics is the standard descriptive summary of a salary sample.
// Derived and immutable; recomputed per query.
type SalaryStatistics struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Count  int     `json:"count"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
}

// SkillPremium is the two-population comparison result for one skill
type SkillPremium struct {
	SkillName       string  `json:"skill_name"`
	AvgWithSkill    float64 `json:"avg_salary_with_skill"`
	AvgWithoutSkill float64 `json:"avg_salary_without_skill"`
	Premium         float64 `json:"salary_premium"`
	PremiumPct      float64 `json:"premium_percentage"`
	CountWith       int     `json:"count_with_skill"`
	CountWithout    int     `json:"count_without_skill"`
	PValue          float64 `json:"p_value"`
	IsSignificant   bool    `json:"is_significant"`
}

// CorrelationEdge is one upper-triangle skill pair from the correlation matrix
type CorrelationEdge struct {
	Skill1      string  `json:"skill_1"`
	Skill2      string  `json:"skill_2"`
	Correlation float64 `json:"correlation"`
	Strength    string  `json:"strength"`
}

// HighValueSkill extends a premium result with demand and value scoring
type HighValueSkill struct {
	SkillPremium

	DemandCount int     `json:"demand_count"`
	DemandPct   float64 `json:"demand_percentage"`
	ValueScore  float64 `json:"value_score"`
	ValueTier   string  `json:"value_tier"`
}

// TalentGapCategories holds the four strategic skill subsets. The filters
// are independent, so a skill may appear in more than one category.
type TalentGapCategories struct {
	CriticalSkills        []HighValueSkill `json:"critical_skills"`
	EmergingOpportunities []HighValueSkill `json:"emerging_opportunities"`
	OversuppliedSkills    []HighValueSkill `json:"oversupplied_skills"`
	UndervaluedGems       []HighValueSkill `json:"undervalued_gems"`
}

// SkillCombination summarizes rows sharing the exact same set of skills
type SkillCombination struct {
	Signature      string  `json:"skill_combination"`
	MeanSalary     float64 `json:"mean_salary"`
	MedianSalary   float64 `json:"median_salary"`
	Count          int     `json:"count"`
	NumSkills      int     `json:"num_skills"`
	SalaryPerSkill float64 `json:"salary_per_skill"`
}

// Recommendation is one entry of the prioritized skill-acquisition list
type Recommendation struct {
	HighValueSkill

	LearningROI float64 `json:"learning_roi"`
	Priority    string  `json:"priority"`
}

// DemandRank is one row of the skill demand ranking
type DemandRank struct {
	SkillName   string  `json:"skill_name"`
	DemandCount int     `json:"demand_count"`
	DemandPct   float64 `json:"demand_percentage"`
	Rank        int     `json:"rank"`
	DemandLevel string  `json:"demand_level"`
}

// ExperienceImpact is one experience level's salary summary with the
// percent increase from the previous level in ordinal order
type ExperienceImpact struct {
	Level       string           `json:"experience_level"`
	Ordinal     int              `json:"ordinal"`
	Stats       SalaryStatistics `json:"stats"`
	PctIncrease float64          `json:"pct_increase"`
	HasIncrease bool             `json:"has_increase"`
}

// IndustryComparison is one industry's salary summary with its premium
// against the overall dataset mean
type IndustryComparison struct {
	Industry   string           `json:"industry"`
	Stats      SalaryStatistics `json:"stats"`
	Premium    float64          `json:"premium"`
	PremiumPct float64          `json:"premium_percentage"`
}

// RegionGap is one region's salary summary with its gap from the highest
// paying region
type RegionGap struct {
	Region     string           `json:"location_region"`
	Stats      SalaryStatistics `json:"stats"`
	GapFromMax float64          `json:"gap_from_max"`
	GapPct     float64          `json:"gap_percentage"`
}

// CompanySizeStat is one company-size bucket's salary summary
type CompanySizeStat struct {
	Size  string           `json:"company_size"`
	Stats SalaryStatistics `json:"stats"`
}
