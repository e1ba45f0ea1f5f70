package routes

import (
	"aftercare-app-server/internal/ai"
	"aftercare-app-server/internal/handlers"
	"aftercare-app-server/internal/streaming"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, generator *ai.Generator, streamingClient *streaming.Client) {
	// Initialize handlers
	userHandler := handlers.NewUserHandler(db)
	emrHandler := handlers.NewEmrHandler(db)
	cardHandler := handlers.NewCardHandler(db, generator)
	taskHandler := handlers.NewTaskHandler(generator)
	reportHandler := handlers.NewReportHandler(db, generator)
	summaryHandler := handlers.NewSummaryHandler(generator)
	transcriptHandler := handlers.NewTranscriptHandler(generator)
	streamingHandler := handlers.NewStreamingHandler(streamingClient)

	api := router.Group("/api/v1")
	{
		userRoutes := api.Group("/users")
		{
			userRoutes.GET("", userHandler.GetUsers)
			userRoutes.GET("/clients", userHandler.GetClients)
			userRoutes.GET("/:id", userHandler.GetUserByID)
		}

		api.GET("/emr/:userId", emrHandler.GetEmrByUserID)

		api.POST("/cards/generate", cardHandler.GenerateCards)
		api.POST("/tasks/generate", taskHandler.GenerateTasks)
		api.POST("/report/generate", reportHandler.GenerateReport)
		api.POST("/summary/generate", summaryHandler.GenerateSummary)

		transcriptRoutes := api.Group("/transcript")
		{
			transcriptRoutes.POST("/process", transcriptHandler.ProcessTranscript)
			transcriptRoutes.POST("/generate-emr", transcriptHandler.GenerateEmr)
			transcriptRoutes.POST("/full-pipeline", transcriptHandler.FullPipeline)
		}

		api.GET("/streaming/token", streamingHandler.GetToken)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
