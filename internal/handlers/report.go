package handlers

import (
	"aftercare-app-server/internal/ai"
	"aftercare-app-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReportHandler handles follow-up report generation requests.
type ReportHandler struct {
	DB        *gorm.DB
	Generator *ai.Generator
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(db *gorm.DB, generator *ai.Generator) *ReportHandler {
	return &ReportHandler{DB: db, Generator: generator}
}

// SelectedCardInput represents one answered follow-up card in a request body.
type SelectedCardInput struct {
	ID          string `json:"id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Rationale   string `json:"rationale"`
	Category    string `json:"category"`
	Answer      any    `json:"answer"`
}

// GenerateReportRequest represents the request body for generating a report.
type GenerateReportRequest struct {
	UserID        string              `json:"userId" binding:"required"`
	SelectedCards []SelectedCardInput `json:"selectedCards" binding:"required,min=1,dive"`
}

// GenerateReportResponse wraps the generated report text.
type GenerateReportResponse struct {
	Report string `json:"report"`
}

// GenerateReport handles generating a clinician-facing follow-up report from
// the client's EMR record and the answered follow-up cards.
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	var req GenerateReportRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	emrText, ok := fetchEmrContext(c, h.DB, req.UserID)
	if !ok {
		return
	}

	cards := make([]ai.AnsweredCard, len(req.SelectedCards))
	for i, in := range req.SelectedCards {
		cards[i] = ai.AnsweredCard{
			Card: ai.Card{
				ID:          in.ID,
				Title:       in.Title,
				Description: in.Description,
				Rationale:   in.Rationale,
				Category:    in.Category,
			},
			Answer: in.Answer,
		}
	}

	report, err := h.Generator.GenerateReport(c.Request.Context(), emrText, cards)
	if err != nil {
		respondAIError(c, err)
		return
	}

	utils.Success(c, "Report generated successfully", GenerateReportResponse{Report: report})
}
