package v1

import (
	"net/http"

	"github.com/flexprice/playbill/internal/api/dto"
	"github.com/flexprice/playbill/internal/config"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	config *config.Configuration
}

func NewHealthHandler(config *config.Configuration) *HealthHandler {
	return &HealthHandler{config: config}
}

// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Storage: string(h.config.Storage.Type),
	})
}
