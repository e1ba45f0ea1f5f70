package handlers

import (
	"aftercare-app-server/internal/models"
	"aftercare-app-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// EmrHandler handles EMR record requests.
type EmrHandler struct {
	DB *gorm.DB
}

// NewEmrHandler creates a new EmrHandler.
func NewEmrHandler(db *gorm.DB) *EmrHandler {
	return &EmrHandler{DB: db}
}

// GetEmrByUserID handles fetching the EMR record for a user.
func (h *EmrHandler) GetEmrByUserID(c *gin.Context) {
	userID := c.Param("userId")

	var record models.EmrRecord
	if err := h.DB.First(&record, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "EMR not found for user")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	record.Normalize()
	utils.Success(c, "EMR fetched successfully", record)
}

// fetchEmrContext loads the EMR record for a user and renders it as prompt
// text. A missing record writes a 404 response and returns false.
func fetchEmrContext(c *gin.Context, db *gorm.DB, userID string) (string, bool) {
	var record models.EmrRecord
	if err := db.First(&record, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "EMR not found for user")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return "", false
	}
	return record.ContextText(), true
}
