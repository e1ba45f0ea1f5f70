package handlers

import (
	"aftercare-app-server/internal/ai"
	"aftercare-app-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles clinician task generation requests.
type TaskHandler struct {
	Generator *ai.Generator
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(generator *ai.Generator) *TaskHandler {
	return &TaskHandler{Generator: generator}
}

// AgreedItemInput represents one agreed follow-up item in a request body.
type AgreedItemInput struct {
	Title    string `json:"title" binding:"required"`
	Detail   string `json:"detail"`
	Severity string `json:"severity" binding:"omitempty,oneof=low medium high"`
}

func toAgreedItems(inputs []AgreedItemInput) []ai.AgreedItem {
	items := make([]ai.AgreedItem, len(inputs))
	for i, in := range inputs {
		items[i] = ai.AgreedItem{Title: in.Title, Detail: in.Detail, Severity: in.Severity}
	}
	return items
}

// GenerateTasksRequest represents the request body for generating clinician tasks.
type GenerateTasksRequest struct {
	EmrText     string            `json:"emrText"`
	AgreedItems []AgreedItemInput `json:"agreedItems"`
}

// GenerateTasks handles generating clinician tasks from patient context.
// With neither EMR text nor agreed items, an empty list is returned without
// a model call.
func (h *TaskHandler) GenerateTasks(c *gin.Context) {
	var req GenerateTasksRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	tasks, err := h.Generator.GenerateTasks(c.Request.Context(), req.EmrText, toAgreedItems(req.AgreedItems))
	if err != nil {
		respondAIError(c, err)
		return
	}

	utils.Success(c, "Tasks generated successfully", tasks)
}
