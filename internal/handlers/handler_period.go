package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// periodHandler handles HTTP requests related to accounting periods.
type periodHandler struct {
	periodService portssvc.PeriodSvcFacade
}

func newPeriodHandler(ps portssvc.PeriodSvcFacade) *periodHandler {
	return &periodHandler{periodService: ps}
}

// RegisterPeriodRoutes registers routes related to periods.
func RegisterPeriodRoutes(rg *gin.RouterGroup, periodService portssvc.PeriodSvcFacade) {
	h := newPeriodHandler(periodService)

	periods := rg.Group("/periods")
	{
		periods.POST("", h.createPeriod)
		periods.GET("/:year", h.listPeriods)
		periods.POST("/:year/close", h.closeYear)
		periods.POST("/:year/:month/close", h.closeMonth)
		periods.POST("/:year/:month/reopen", h.reopenMonth)
	}
}

// createPeriod godoc
// @Summary Register an accounting period
// @Description Registers a period of a fiscal year, open unless a status is given
// @Tags periods
// @Accept  json
// @Produce  json
// @Param   period body dto.CreatePeriodRequest true "Period details"
// @Success 201 {object} dto.PeriodResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Period overlaps an existing one"
// @Failure 500 {object} map[string]string "Failed to create period"
// @Security BearerAuth
// @Router /periods [post]
func (h *periodHandler) createPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	// Binding already checked the layout.
	start, _ := domain.ParseDate(req.StartDate)
	end, _ := domain.ParseDate(req.EndDate)
	status := domain.PeriodOpen
	if req.Status != "" {
		status = domain.PeriodStatus(req.Status)
	}

	period, err := h.periodService.CreatePeriod(c.Request.Context(), req.Year, start, end, status, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create period")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPeriodResponse(period))
}

// listPeriods godoc
// @Summary List periods and locks of a year
// @Tags periods
// @Produce  json
// @Param   year path int true "Fiscal year"
// @Success 200 {object} dto.ListPeriodsResponse
// @Failure 400 {object} map[string]string "Invalid year"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list periods"
// @Security BearerAuth
// @Router /periods/{year} [get]
func (h *periodHandler) listPeriods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, err := intParam(c, "year")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}

	periods, err := h.periodService.ListPeriods(c.Request.Context(), year)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list periods")
		return
	}
	locks, err := h.periodService.ListLocks(c.Request.Context(), year)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list period locks")
		return
	}

	c.JSON(http.StatusOK, dto.ToListPeriodsResponse(year, periods, locks))
}

// closeMonth godoc
// @Summary Close a month
// @Description Closes a month so no entry dated inside it can be posted. Closing twice is a no-op.
// @Tags periods
// @Produce  json
// @Param   year path int true "Fiscal year"
// @Param   month path int true "Month (1-12)"
// @Success 200 {object} dto.PeriodResponse
// @Failure 400 {object} map[string]string "Invalid year or month"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Ledger busy"
// @Security BearerAuth
// @Router /periods/{year}/{month}/close [post]
func (h *periodHandler) closeMonth(c *gin.Context) {
	h.transitionMonth(c, "close", h.periodService.CloseMonth)
}

// reopenMonth godoc
// @Summary Reopen a month
// @Tags periods
// @Produce  json
// @Param   year path int true "Fiscal year"
// @Param   month path int true "Month (1-12)"
// @Success 200 {object} dto.PeriodResponse
// @Success 204 "Month was never registered"
// @Failure 400 {object} map[string]string "Invalid year or month"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Year is closed"
// @Security BearerAuth
// @Router /periods/{year}/{month}/reopen [post]
func (h *periodHandler) reopenMonth(c *gin.Context) {
	h.transitionMonth(c, "reopen", h.periodService.ReopenMonth)
}

func (h *periodHandler) transitionMonth(c *gin.Context, action string,
	transition func(ctx context.Context, year, month int, userID string) (*domain.Period, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, yErr := intParam(c, "year")
	month, mErr := intParam(c, "month")
	if yErr != nil || mErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year or month"})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("action", action), slog.Int("year", year), slog.Int("month", month))

	period, err := transition(c.Request.Context(), year, month, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to "+action+" month")
		return
	}
	if period == nil {
		// Reopening a month that was never registered.
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// closeYear godoc
// @Summary Close a fiscal year
// @Description Closes the whole year. Every month of the year must already be closed.
// @Tags periods
// @Produce  json
// @Param   year path int true "Fiscal year"
// @Success 200 {object} dto.PeriodResponse
// @Failure 400 {object} map[string]string "Invalid year"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Year not ready to close"
// @Failure 500 {object} map[string]string "Failed to close year"
// @Security BearerAuth
// @Router /periods/{year}/close [post]
func (h *periodHandler) closeYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, err := intParam(c, "year")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	period, err := h.periodService.CloseYear(c.Request.Context(), year, userID)
	if err != nil {
		respondServiceError(c, logger.With(slog.Int("year", year)), err, "Failed to close year")
		return
	}

	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}
