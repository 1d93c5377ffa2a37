package v1

import (
	"net/http"

	"github.com/flexprice/playbill/internal/api/dto"
	ierr "github.com/flexprice/playbill/internal/errors"
	"github.com/flexprice/playbill/internal/logger"
	"github.com/flexprice/playbill/internal/service"
	"github.com/flexprice/playbill/internal/types"
	"github.com/gin-gonic/gin"
)

type PlayHandler struct {
	service service.PlayService
	logger  *logger.Logger
}

func NewPlayHandler(service service.PlayService, logger *logger.Logger) *PlayHandler {
	return &PlayHandler{
		service: service,
		logger:  logger,
	}
}

// CreatePlay godoc
// @Summary Create a play
// @Tags Plays
// @Accept json
// @Produce json
// @Param play body dto.CreatePlayRequest true "Play"
// @Success 201 {object} dto.PlayResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /plays [post]
func (h *PlayHandler) CreatePlay(c *gin.Context) {
	var req dto.CreatePlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreatePlay(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetPlay godoc
// @Summary Get a play
// @Tags Plays
// @Produce json
// @Param id path string true "Play ID"
// @Success 200 {object} dto.PlayResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /plays/{id} [get]
func (h *PlayHandler) GetPlay(c *gin.Context) {
	resp, err := h.service.GetPlay(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListPlays godoc
// @Summary List plays
// @Tags Plays
// @Produce json
// @Param filter query types.PlayFilter false "Filter"
// @Success 200 {object} dto.ListPlaysResponse
// @Router /plays [get]
func (h *PlayHandler) ListPlays(c *gin.Context) {
	filter := types.PlayFilter{QueryFilter: types.NewDefaultQueryFilter()}
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.logger.Errorw("failed to bind query parameters", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListPlays(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
