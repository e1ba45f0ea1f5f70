package handlers

import (
	"errors"
	"strconv"

	"aftercare-app-server/internal/streaming"
	"aftercare-app-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// StreamingHandler handles temporary streaming token requests.
type StreamingHandler struct {
	Client *streaming.Client
}

// NewStreamingHandler creates a new StreamingHandler.
func NewStreamingHandler(client *streaming.Client) *StreamingHandler {
	return &StreamingHandler{Client: client}
}

// GetToken handles minting a temporary token for browser-side streaming
// transcription.
func (h *StreamingHandler) GetToken(c *gin.Context) {
	expiresIn := 300
	if raw := c.Query("expiresInSeconds"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.BadRequest(c, "expiresInSeconds must be an integer")
			return
		}
		expiresIn = parsed
	}

	token, err := h.Client.MintToken(c.Request.Context(), expiresIn)
	if err != nil {
		switch {
		case errors.Is(err, streaming.ErrPaymentRequired):
			utils.PaymentRequired(c, err.Error())
		case errors.Is(err, streaming.ErrNotConfigured):
			utils.InternalServerError(c, err.Error())
		default:
			utils.InternalServerError(c, "Failed to get streaming token: "+err.Error())
		}
		return
	}

	utils.Success(c, "Streaming token minted successfully", token)
}
