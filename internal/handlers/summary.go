package handlers

import (
	"aftercare-app-server/internal/ai"
	"aftercare-app-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// SummaryHandler handles progress summary generation requests.
type SummaryHandler struct {
	Generator *ai.Generator
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(generator *ai.Generator) *SummaryHandler {
	return &SummaryHandler{Generator: generator}
}

// GenerateSummaryRequest represents the request body for generating a summary.
type GenerateSummaryRequest struct {
	EmrText     string            `json:"emrText"`
	AgreedItems []AgreedItemInput `json:"agreedItems"`
}

// GenerateSummaryResponse wraps the generated summary text.
type GenerateSummaryResponse struct {
	Summary string `json:"summary"`
}

// GenerateSummary handles generating a clinician-facing progress summary from
// EMR text and agreed items.
func (h *SummaryHandler) GenerateSummary(c *gin.Context) {
	var req GenerateSummaryRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	summary, err := h.Generator.GenerateSummary(c.Request.Context(), req.EmrText, toAgreedItems(req.AgreedItems))
	if err != nil {
		respondAIError(c, err)
		return
	}

	utils.Success(c, "Summary generated successfully", GenerateSummaryResponse{Summary: summary})
}
