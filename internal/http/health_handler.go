package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"ai-hunter/internal/db"
)

const apiVersion = "2.0.0"

// HealthHandler atende os endpoints periféricos de status. O pool pode ser
// nil quando o serviço sobe sem banco.
type HealthHandler struct {
	logger *zap.Logger
	pool   *pgxpool.Pool
}

func NewHealthHandler(logger *zap.Logger, pool *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{logger: logger, pool: pool}
}

func (h *HealthHandler) dbStatus() string {
	if h.pool == nil {
		return "disconnected"
	}
	return "connected"
}

// Root atende GET /.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Bem-vindo ao Diagnóstico IA Hunter v2!",
		"db_status": h.dbStatus(),
		"version":   apiVersion,
	})
}

// Health atende GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": h.dbStatus(),
		"version":  apiVersion,
	})
}

// TestDB atende GET /test-db com uma query mínima de conectividade.
func (h *HealthHandler) TestDB(c *gin.Context) {
	if h.pool == nil {
		c.JSON(http.StatusOK, gin.H{"status": "no_connection", "message": "database pool not initialized"})
		return
	}

	now, err := db.Health(c.Request.Context(), h.pool)
	if err != nil {
		h.logger.Warn("test-db falhou", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "timestamp": now.String()})
}

// DBInfo atende GET /db-info com metadados da conexão.
func (h *HealthHandler) DBInfo(c *gin.Context) {
	if h.pool == nil {
		c.JSON(http.StatusOK, gin.H{"status": "disconnected"})
		return
	}

	info, err := db.CollectInfo(c.Request.Context(), h.pool)
	if err != nil {
		h.logger.Warn("db-info falhou", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "connected", "info": info})
}
