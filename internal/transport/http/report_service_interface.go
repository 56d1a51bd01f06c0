package http

import (
	"context"
	"time"

	"jobpulse/internal/intelligence"
)

// ReportProvider is the service interface the intelligence handlers depend
// on. Defined on the consumer side so handler tests can substitute a mock.
type ReportProvider interface {
	// Latest returns the cached report, generating one on first use
	Latest(ctx context.Context) (*intelligence.Report, error)

	// Refresh reloads the dataset and regenerates the report
	Refresh(ctx context.Context) (*intelligence.Report, error)

	// Recommendations recomputes the recommendation list with exclusions
	Recommendations(ctx context.Context, exclude []string) ([]intelligence.Recommendation, error)

	// Combinations recomputes skill combinations with a minimum group size
	Combinations(ctx context.Context, minCount int) ([]intelligence.SkillCombination, error)

	// LoadedAt returns when the cached report was generated, zero if none
	LoadedAt() time.Time
}
