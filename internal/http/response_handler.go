package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"persona-lab/internal/domain"
	"persona-lab/internal/schema"
	"persona-lab/internal/service"
)

// ResponseHandler recibe respuestas del founder y de los validadores.
type ResponseHandler struct {
	logger     *zap.Logger
	validation *service.ValidationService
	extraction *service.ExtractionService
}

// NewResponseHandler crea una instancia de ResponseHandler.
func NewResponseHandler(logger *zap.Logger, validation *service.ValidationService, extraction *service.ExtractionService) *ResponseHandler {
	return &ResponseHandler{logger: logger, validation: validation, extraction: extraction}
}

type submitResponseRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
	Value      any    `json:"value"`
	IsUnsure   bool   `json:"is_unsure"`
	Confidence int    `json:"confidence"`
	Context    string `json:"context"`
}

// SubmitFounderResponse maneja POST /sessions/:id/responses (brain dump).
func (h *ResponseHandler) SubmitFounderResponse(c *gin.Context) {
	var req submitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sessionID := c.Param("id")
	response, err := h.validation.SubmitResponse(c.Request.Context(), domain.Response{
		SessionID:    sessionID,
		RespondentID: sessionID, // el founder es único por sesión
		Role:         domain.RespondentRoleFounder,
		QuestionID:   req.QuestionID,
		Value:        req.Value,
		IsUnsure:     req.IsUnsure,
		Confidence:   clampConfidence(req.Confidence),
		Context:      req.Context,
	})
	if err != nil {
		h.logger.Warn("founder response rejected", zap.String("session_id", sessionID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid response"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"response": response})
}

// SubmitValidatorResponse maneja POST /share/responses, detrás del middleware.
func (h *ResponseHandler) SubmitValidatorResponse(c *gin.Context) {
	claims, ok := GetShareClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing claims"})
		return
	}

	var req submitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	response, err := h.validation.SubmitResponse(c.Request.Context(), domain.Response{
		SessionID:    claims.SessionID,
		RespondentID: claims.RespondentID,
		Role:         domain.RespondentRoleValidator,
		QuestionID:   req.QuestionID,
		Value:        req.Value,
		IsUnsure:     req.IsUnsure,
		Confidence:   clampConfidence(req.Confidence),
		Context:      req.Context,
	})
	if err != nil {
		h.logger.Warn("validator response rejected", zap.String("session_id", claims.SessionID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid response"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"response": response})
}

// ListQuestions maneja GET /questions: el banco, con redacción contextualizada
// al producto si se pasa ?product=.
func (h *ResponseHandler) ListQuestions(c *gin.Context) {
	questions := schema.Questions()
	if product := c.Query("product"); product != "" && h.extraction != nil {
		for i := range questions {
			questions[i].Text = h.extraction.CustomizeQuestionText(c.Request.Context(), questions[i], product)
		}
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

func clampConfidence(confidence int) int {
	if confidence < 0 {
		return 0
	}
	if confidence > 100 {
		return 100
	}
	return confidence
}
