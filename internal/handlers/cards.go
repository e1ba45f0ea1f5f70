package handlers

import (
	"strings"

	"aftercare-app-server/internal/ai"
	"aftercare-app-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CardHandler handles follow-up card generation requests.
type CardHandler struct {
	DB        *gorm.DB
	Generator *ai.Generator
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(db *gorm.DB, generator *ai.Generator) *CardHandler {
	return &CardHandler{DB: db, Generator: generator}
}

// GenerateCardsRequest represents the request body for generating follow-up cards.
type GenerateCardsRequest struct {
	UserID         string `json:"userId" binding:"required"`
	TranscriptText string `json:"transcriptText"`
}

// GenerateCards handles generating follow-up after-care cards from a client's
// EMR record, optionally combined with transcript-derived notes from the most
// recent visit.
func (h *CardHandler) GenerateCards(c *gin.Context) {
	var req GenerateCardsRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	emrText, ok := fetchEmrContext(c, h.DB, req.UserID)
	if !ok {
		return
	}

	includeTranscript := strings.TrimSpace(req.TranscriptText) != ""
	cards, err := h.Generator.GenerateCards(c.Request.Context(), emrText, req.TranscriptText, includeTranscript)
	if err != nil {
		respondAIError(c, err)
		return
	}

	utils.Success(c, "Cards generated successfully", cards)
}
