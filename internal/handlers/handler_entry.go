package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// entryHandler handles HTTP requests related to ledger entries.
type entryHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newEntryHandler(ls portssvc.LedgerSvcFacade) *entryHandler {
	return &entryHandler{ledgerService: ls}
}

// RegisterEntryRoutes registers routes related to entries.
func RegisterEntryRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newEntryHandler(ledgerService)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.postEntry)
		entries.POST("/validate", h.validateEntry)
		entries.GET("/:entryID", h.getEntry)
		entries.POST("/:entryID/reverse", h.reverseEntry)
	}
}

// postEntry godoc
// @Summary Post a journal entry
// @Description Validates and posts an entry. Rule violations come back as 422 with every violated rule listed.
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.PostEntryRequest true "Entry to post"
// @Success 201 {object} dto.PostResultResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} dto.PostResultResponse "Entry violates ledger rules"
// @Failure 500 {object} dto.PostResultResponse "Failed to post entry"
// @Security BearerAuth
// @Router /entries [post]
func (h *entryHandler) postEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PostEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("entry_date", req.Date), slog.Int("line_count", len(req.Lines)))

	result := h.ledgerService.PostEntry(c.Request.Context(), req.ToDomain(), userID)
	respondPostResult(c, logger, result)
}

// validateEntry godoc
// @Summary Validate a journal entry
// @Description Runs every posting rule against an entry without writing anything
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.PostEntryRequest true "Entry to validate"
// @Success 200 {object} dto.ValidateEntryResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /entries/validate [post]
func (h *entryHandler) validateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PostEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ValidateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	errs := h.ledgerService.ValidateEntry(c.Request.Context(), req.ToDomain())
	c.JSON(http.StatusOK, dto.ToValidateEntryResponse(errs))
}

// getEntry godoc
// @Summary Get an entry by ID
// @Description Retrieves a posted entry with its lines
// @Tags entries
// @Produce  json
// @Param   entryID path int true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid entry ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve entry"
// @Security BearerAuth
// @Router /entries/{entryID} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID, err := strconv.ParseInt(c.Param("entryID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID"})
		return
	}
	logger = logger.With(slog.Int64("entry_id", entryID))

	entry, err := h.ledgerService.GetEntry(c.Request.Context(), entryID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// reverseEntry godoc
// @Summary Reverse an entry
// @Description Posts a mirror entry that swaps the debit and credit of every line
// @Tags entries
// @Produce  json
// @Param   entryID path int true "Entry ID to reverse"
// @Success 201 {object} dto.PostResultResponse
// @Failure 400 {object} map[string]string "Invalid entry ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} dto.PostResultResponse "Entry not found"
// @Failure 409 {object} dto.PostResultResponse "Entry already reversed"
// @Failure 422 {object} dto.PostResultResponse "Reversal violates ledger rules"
// @Security BearerAuth
// @Router /entries/{entryID}/reverse [post]
func (h *entryHandler) reverseEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID, err := strconv.ParseInt(c.Param("entryID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID"})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.Int64("reversed_entry_id", entryID))

	result := h.ledgerService.Reverse(c.Request.Context(), entryID, userID)
	respondPostResult(c, logger, result)
}
