package v1

import (
	"net/http"

	"github.com/flexprice/playbill/internal/api/dto"
	ierr "github.com/flexprice/playbill/internal/errors"
	"github.com/flexprice/playbill/internal/logger"
	"github.com/flexprice/playbill/internal/service"
	"github.com/gin-gonic/gin"
)

// formatText selects a text/plain response instead of JSON
const formatText = "text"

type StatementHandler struct {
	service service.StatementService
	logger  *logger.Logger
}

func NewStatementHandler(service service.StatementService, logger *logger.Logger) *StatementHandler {
	return &StatementHandler{
		service: service,
		logger:  logger,
	}
}

// CreateStatement godoc
// @Summary Generate a statement
// @Description Price an invoice against the given plays and render its statement
// @Tags Statements
// @Accept json
// @Produce json,plain
// @Param request body dto.GenerateStatementRequest true "Invoice and plays"
// @Param format query string false "text for a plain text statement"
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /statements [post]
func (h *StatementHandler) CreateStatement(c *gin.Context) {
	var req dto.GenerateStatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateStatement(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	h.respond(c, resp)
}

// CreateStatements godoc
// @Summary Generate statements in bulk
// @Description Price several invoices against one set of plays
// @Tags Statements
// @Accept json
// @Produce json
// @Param request body dto.GenerateStatementsRequest true "Invoices and plays"
// @Success 200 {object} dto.ListStatementsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /statements/bulk [post]
func (h *StatementHandler) CreateStatements(c *gin.Context) {
	var req dto.GenerateStatementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateStatements(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetInvoiceStatement godoc
// @Summary Get the statement of a stored invoice
// @Tags Statements
// @Produce json,plain
// @Param id path string true "Invoice ID"
// @Param format query string false "text for a plain text statement"
// @Success 200 {object} dto.StatementResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /invoices/{id}/statement [get]
func (h *StatementHandler) GetInvoiceStatement(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("invoice id is required").
			WithHint("Invoice ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GenerateStatementForInvoice(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	h.respond(c, resp)
}

func (h *StatementHandler) respond(c *gin.Context, resp *dto.StatementResponse) {
	if c.Query("format") == formatText {
		c.String(http.StatusOK, resp.Text)
		return
	}
	c.JSON(http.StatusOK, resp)
}
