package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/spf13/cast"

	apierrors "jobpulse/internal/errors"
)

// IntelligenceHandler handles market intelligence HTTP requests
type IntelligenceHandler struct {
	service      ReportProvider
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewIntelligenceHandler creates a new intelligence handler
func NewIntelligenceHandler(service ReportProvider, logger *slog.Logger) *IntelligenceHandler {
	return &IntelligenceHandler{
		service:      service,
		logger:       logger,
		errorHandler: apierrors.NewErrorHandler(logger, false),
	}
}

// RegisterRoutes registers the intelligence routes
func (h *IntelligenceHandler) RegisterRoutes(r chi.Router) {
	r.Get("/report", h.GetReport)
	r.Post("/report/refresh", h.RefreshReport)

	r.Route("/skills", func(r chi.Router) {
		r.Get("/premiums", h.GetPremiums)
		r.Get("/demand", h.GetDemandRanking)
		r.Get("/cooccurrence", h.GetCooccurrence)
		r.Get("/high-value", h.GetHighValueSkills)
		r.Get("/talent-gaps", h.GetTalentGaps)
		r.Get("/recommendations", h.GetRecommendations)
	})

	r.Get("/combinations", h.GetCombinations)
}

// GetReport returns the full latest report
func (h *IntelligenceHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	report, err := h.service.Latest(ctx)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, report)
}

// RefreshReport reloads the dataset and regenerates the report
func (h *IntelligenceHandler) RefreshReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	h.logger.InfoContext(ctx, "report refresh requested")

	report, err := h.service.Refresh(ctx)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"report_id":    report.ID,
		"generated_at": report.GeneratedAt,
		"total_rows":   report.TotalRows,
		"total_skills": report.TotalSkills,
	})
}

// GetPremiums returns the skill premium analysis
func (h *IntelligenceHandler) GetPremiums(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Latest(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, report.SkillPremiums)
}

// GetDemandRanking returns the skill demand ranking
func (h *IntelligenceHandler) GetDemandRanking(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Latest(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, report.DemandRanking)
}

// GetCooccurrence returns the skill co-occurrence edges
func (h *IntelligenceHandler) GetCooccurrence(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Latest(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, report.Cooccurrence)
}

// GetHighValueSkills returns the value-scored skill list
func (h *IntelligenceHandler) GetHighValueSkills(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Latest(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, report.HighValueSkills)
}

// GetTalentGaps returns the talent-gap quadrant classification
func (h *IntelligenceHandler) GetTalentGaps(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Latest(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, report.TalentGaps)
}

// GetRecommendations returns the prioritized skill recommendations.
// The optional exclude parameter is a comma-separated list of skills the
// caller already has.
func (h *IntelligenceHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var exclude []string
	if raw := r.URL.Query().Get("exclude"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				exclude = append(exclude, trimmed)
			}
		}
	}

	h.logger.InfoContext(ctx, "recommendations requested",
		slog.Int("excluded_skills", len(exclude)))

	recommendations, err := h.service.Recommendations(ctx, exclude)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, recommendations)
}

// GetCombinations returns skill combination statistics. The optional
// min_count parameter overrides the configured minimum group size.
func (h *IntelligenceHandler) GetCombinations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	minCount := 0
	if raw := r.URL.Query().Get("min_count"); raw != "" {
		parsed, err := cast.ToIntE(raw)
		if err != nil || parsed < 1 {
			h.logger.WarnContext(ctx, "invalid min_count parameter", slog.String("min_count", raw))
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation(
				"min_count", "must be a positive integer"))
			return
		}
		minCount = parsed
	}

	combinations, err := h.service.Combinations(ctx, minCount)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, combinations)
}
