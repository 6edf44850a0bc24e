package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"zain-site-backend/controllers"
	"zain-site-backend/database"
	"zain-site-backend/middleware"
	"zain-site-backend/services"
)

// SetupRoutes wires stores, services and controllers. Collaborators are
// injected explicitly: the chatbot service receives its conversation store
// and event sink rather than reaching for globals.
func SetupRoutes(router *gin.Engine, redisClient *redis.Client, rateLimitPerMin int) {
	db := database.GetMongoDB()

	conversationStore := database.NewMongoConversationStore(db)
	contactStore := database.NewMongoContactStore(db)
	analyticsStore := database.NewMongoAnalyticsStore(db)

	chatbotService := services.NewChatbotService(conversationStore, analyticsStore)
	contactService := services.NewContactService(contactStore, analyticsStore)
	analyticsService := services.NewAnalyticsService(analyticsStore)

	chatbotController := controllers.NewChatbotController(chatbotService)
	wsController := controllers.NewWebSocketController(chatbotService)
	contactController := controllers.NewContactController(contactService)
	analyticsController := controllers.NewAnalyticsController(analyticsService)

	limiter := middleware.NewRateLimiter(redisClient, rateLimitPerMin)

	// Widget-facing routes, rate limited per client.
	public := router.Group("/api/v1")
	public.Use(limiter.Handler())
	{
		public.POST("/chat", chatbotController.HandleChat)
		public.POST("/chat/quick-action", chatbotController.HandleQuickAction)
		public.GET("/ws", wsController.HandleWebSocket)

		public.POST("/conversations", chatbotController.StartConversation)
		public.GET("/conversations/:id/messages", chatbotController.GetChatHistory)
		public.POST("/conversations/:id/close", chatbotController.CloseConversation)

		public.GET("/intents", chatbotController.GetSupportedIntents)
		public.GET("/actions", chatbotController.GetActions)

		public.POST("/contact", contactController.SubmitContact)

		public.POST("/events", analyticsController.TrackEvent)
		public.POST("/events/batch", analyticsController.TrackEventBatch)
	}

	// Admin endpoints; authentication is left to the deployment's reverse
	// proxy for now.
	admin := router.Group("/api/v1/admin")
	{
		admin.GET("/contacts", contactController.ListContacts)
		admin.GET("/analytics", analyticsController.GetAnalytics)
		admin.GET("/stats", analyticsController.GetStats)
		admin.GET("/export", analyticsController.ExportData)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error": "Route not found",
			"path":  c.Request.URL.Path,
		})
	})
}
