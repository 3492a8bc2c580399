package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"persona-lab/internal/repository"
	"persona-lab/internal/service"
)

// ReportHandler expone los valores derivados: persona, claridad y alineación.
type ReportHandler struct {
	logger     *zap.Logger
	validation *service.ValidationService
	personas   repository.PersonaRepository
}

// NewReportHandler crea una instancia de ReportHandler.
func NewReportHandler(logger *zap.Logger, validation *service.ValidationService, personas repository.PersonaRepository) *ReportHandler {
	return &ReportHandler{logger: logger, validation: validation, personas: personas}
}

// GetPersona maneja GET /sessions/:id/persona.
func (h *ReportHandler) GetPersona(c *gin.Context) {
	persona, err := h.personas.GetBySessionID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "persona not built yet"})
		return
	}
	if err != nil {
		h.logger.Error("get persona failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load persona"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"persona": persona})
}

// GetClarity maneja GET /sessions/:id/clarity.
func (h *ReportHandler) GetClarity(c *gin.Context) {
	snapshot, err := h.validation.ClaritySnapshot(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("clarity snapshot failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute clarity"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// GetReport maneja GET /sessions/:id/report.
func (h *ReportHandler) GetReport(c *gin.Context) {
	report, err := h.validation.ValidationReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("validation report failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}

// SimilarContext maneja GET /sessions/:id/context/similar?q=...&k=5.
func (h *ReportHandler) SimilarContext(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}
	k, _ := strconv.Atoi(c.DefaultQuery("k", "5"))

	matches, err := h.validation.SimilarContext(c.Request.Context(), c.Param("id"), query, k)
	if err != nil {
		h.logger.Error("similar context search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not search"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}
