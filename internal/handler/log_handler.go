package handler

import (
	"net/http"

	"task-manager-api/internal/service"

	"github.com/gin-gonic/gin"
)

type LogHandler struct {
	auditService *service.AuditService
}

func NewLogHandler(auditService *service.AuditService) *LogHandler {
	return &LogHandler{auditService: auditService}
}

// ListLogs handles GET /api/logs
func (h *LogHandler) ListLogs(c *gin.Context) {
	logs, err := h.auditService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}
