package handlers

import (
	"aftercare-app-server/internal/ai"
	"aftercare-app-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// TranscriptHandler handles transcript labeling and EMR synthesis requests.
type TranscriptHandler struct {
	Generator *ai.Generator
}

// NewTranscriptHandler creates a new TranscriptHandler.
func NewTranscriptHandler(generator *ai.Generator) *TranscriptHandler {
	return &TranscriptHandler{Generator: generator}
}

// ProcessTranscriptRequest represents the request body for transcript processing.
type ProcessTranscriptRequest struct {
	RawTranscript string `json:"rawTranscript" binding:"required"`
}

// ProcessTranscript handles labeling a raw transcript as clinician vs client
// utterances and structuring the dialogue.
func (h *TranscriptHandler) ProcessTranscript(c *gin.Context) {
	var req ProcessTranscriptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	processed, err := h.Generator.ProcessTranscript(c.Request.Context(), req.RawTranscript)
	if err != nil {
		respondAIError(c, err)
		return
	}

	utils.Success(c, "Transcript processed successfully", processed)
}

// GenerateEmrRequest represents the request body for EMR note synthesis.
type GenerateEmrRequest struct {
	Processed ai.ProcessedTranscript `json:"processed"`
}

// GenerateEmrResponse wraps the synthesized visit notes.
type GenerateEmrResponse struct {
	EmrNotes string `json:"emrNotes"`
}

// GenerateEmr handles generating EMR visit notes from a labeled transcript.
func (h *TranscriptHandler) GenerateEmr(c *gin.Context) {
	var req GenerateEmrRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	notes, err := h.Generator.GenerateEmrNotes(c.Request.Context(), &req.Processed)
	if err != nil {
		respondAIError(c, err)
		return
	}

	utils.Success(c, "EMR notes generated successfully", GenerateEmrResponse{EmrNotes: notes})
}

// FullPipeline handles processing a raw transcript and generating EMR visit
// notes in one call. A labeling failure aborts before synthesis.
func (h *TranscriptHandler) FullPipeline(c *gin.Context) {
	var req ProcessTranscriptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	result, err := h.Generator.RunTranscriptPipeline(c.Request.Context(), req.RawTranscript)
	if err != nil {
		respondAIError(c, err)
		return
	}

	utils.Success(c, "Transcript pipeline completed successfully", result)
}
