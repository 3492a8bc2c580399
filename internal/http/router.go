package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"persona-lab/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	tokens *service.ShareTokenService,
	sessionH *SessionHandler,
	responseH *ResponseHandler,
	reportH *ReportHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares básicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/questions", responseH.ListQuestions)

	sessions := r.Group("/sessions")
	sessions.POST("", sessionH.CreateSession)
	sessions.POST("/:id/invite", sessionH.InviteValidator)
	sessions.POST("/:id/responses", responseH.SubmitFounderResponse)
	sessions.GET("/:id/persona", reportH.GetPersona)
	sessions.GET("/:id/clarity", reportH.GetClarity)
	sessions.GET("/:id/report", reportH.GetReport)
	sessions.GET("/:id/context/similar", reportH.SimilarContext)

	share := r.Group("/share")
	share.POST("/:token/auth", sessionH.AuthorizeShare)
	share.POST("/responses", ShareAuthMiddleware(tokens), responseH.SubmitValidatorResponse)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
