package handlers

import (
	"time"

	"aftercare-app-server/internal/models"
	"aftercare-app-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserHandler handles user-related requests.
type UserHandler struct {
	DB *gorm.DB
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{DB: db}
}

// GetUsers handles fetching all users.
func (h *UserHandler) GetUsers(c *gin.Context) {
	var users []models.User
	if err := h.DB.Order("id").Find(&users).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch users: "+err.Error())
		return
	}

	utils.Success(c, "Users fetched successfully", users)
}

// GetUserByID handles fetching a single user by ID.
func (h *UserHandler) GetUserByID(c *gin.Context) {
	userID := c.Param("id")

	var user models.User
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "User not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}
	utils.Success(c, "User fetched successfully", user)
}

// GetClients handles fetching all clients with a human-readable last visit
// label for the client picker.
func (h *UserHandler) GetClients(c *gin.Context) {
	var clients []models.User
	if err := h.DB.Preload("EmrRecord").Where("role = ?", models.RoleClient).Order("name").Find(&clients).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch clients: "+err.Error())
		return
	}

	now := time.Now()
	result := make([]models.ClientWithLastVisit, len(clients))
	for i, client := range clients {
		var lastVisit *time.Time
		if client.EmrRecord != nil {
			lastVisit = client.EmrRecord.LastVisit
		}
		result[i] = models.ClientWithLastVisit{
			ID:             client.ID,
			Name:           client.Name,
			LastVisitLabel: models.LastVisitLabel(lastVisit, now),
		}
	}

	utils.Success(c, "Clients fetched successfully", result)
}
