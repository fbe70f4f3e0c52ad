package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ai-hunter/internal/domain"
	"ai-hunter/internal/service"
)

// DiagnosticRunner executa o pipeline completo e devolve o HTML do relatório.
type DiagnosticRunner interface {
	Run(ctx context.Context, lead domain.LeadProfile) (string, error)
}

// DiagnosticHandler atende POST /api/v2/diagnostico.
type DiagnosticHandler struct {
	logger      *zap.Logger
	diagnostics DiagnosticRunner
	limiter     service.LeadRateLimiter // nil = sem rate limit
}

func NewDiagnosticHandler(logger *zap.Logger, diagnostics DiagnosticRunner, limiter service.LeadRateLimiter) *DiagnosticHandler {
	return &DiagnosticHandler{
		logger:      logger,
		diagnostics: diagnostics,
		limiter:     limiter,
	}
}

// RunDiagnostic valida o questionário, roda o pipeline e responde com o
// relatório em HTML. Erros de corpo seguem o formato {"detail": ...}.
func (h *DiagnosticHandler) RunDiagnostic(c *gin.Context) {
	var lead domain.LeadProfile
	if err := c.ShouldBindJSON(&lead); err != nil {
		h.logger.Warn("questionário inválido", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid questionnaire payload: " + err.Error()})
		return
	}

	if h.limiter != nil && !h.limiter.Allow(lead.Email) {
		h.logger.Warn("diagnóstico bloqueado por rate limit", zap.String("email", lead.Email))
		c.JSON(http.StatusTooManyRequests, gin.H{"detail": "too many diagnostic requests for this email"})
		return
	}

	h.logger.Info("processando diagnóstico", zap.String("name", lead.Name), zap.String("email", lead.Email))

	html, err := h.diagnostics.Run(c.Request.Context(), lead)
	if err != nil {
		h.logger.Error("diagnóstico falhou", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "an unexpected error occurred while generating the report"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
