package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"freightway/internal/delivery/http/response"
	"freightway/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UsageHandler holds dependencies for usage reporting handlers.
type UsageHandler struct {
	usageUC usecase.UsageUsecase
	logger  *slog.Logger
}

// NewUsageHandler is the constructor for UsageHandler, injected by Fx.
func NewUsageHandler(usageUC usecase.UsageUsecase, logger *slog.Logger) *UsageHandler {
	return &UsageHandler{
		usageUC: usageUC,
		logger:  logger,
	}
}

// Summary returns bucketed usage for a trailing window
func (h *UsageHandler) Summary(c echo.Context) error {
	period := usecase.UsagePeriod(c.QueryParam("period"))
	if period == "" {
		period = usecase.PeriodDaily
	}

	switch period {
	case usecase.PeriodDaily, usecase.PeriodWeekly, usecase.PeriodMonthly:
	default:
		return response.BadRequest(c, "INVALID_PERIOD", "Period must be daily, weekly or monthly")
	}

	rows, err := h.usageUC.Summary(c.Request().Context(), period)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, rows, "Usage summary retrieved")
}

// ByType returns usage broken down per API type within a date range
func (h *UsageHandler) ByType(c echo.Context) error {
	from, to, err := h.dateRange(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_RANGE", err.Error())
	}

	rows, err := h.usageUC.ByAPIType(c.Request().Context(), from, to)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, rows, "Usage by API type retrieved")
}

// Failures returns the newest failed API calls
func (h *UsageHandler) Failures(c echo.Context) error {
	limit, err := h.intQuery(c, "limit", 0)
	if err != nil {
		return response.BadRequest(c, "INVALID_LIMIT", "Limit must be a positive integer")
	}

	rows, err := h.usageUC.RecentFailures(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, rows, "Recent failures retrieved")
}

// Slow returns the slowest API calls above a latency threshold
func (h *UsageHandler) Slow(c echo.Context) error {
	thresholdMs, err := h.intQuery(c, "threshold_ms", 0)
	if err != nil {
		return response.BadRequest(c, "INVALID_THRESHOLD", "Threshold must be a positive integer")
	}

	limit, err := h.intQuery(c, "limit", 0)
	if err != nil {
		return response.BadRequest(c, "INVALID_LIMIT", "Limit must be a positive integer")
	}

	rows, err := h.usageUC.SlowCalls(c.Request().Context(), thresholdMs, limit)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, rows, "Slow calls retrieved")
}

// MonthlyCost returns the per-day cost rollup for one calendar month
func (h *UsageHandler) MonthlyCost(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 2000 || year > 2100 {
		return response.BadRequest(c, "INVALID_YEAR", "Invalid year")
	}

	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		return response.BadRequest(c, "INVALID_MONTH", "Invalid month")
	}

	rows, err := h.usageUC.MonthlyCost(c.Request().Context(), year, time.Month(month))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, rows, "Monthly cost retrieved")
}

// dateRange parses the from/to query params, defaulting to the last 30 days.
func (h *UsageHandler) dateRange(c echo.Context) (time.Time, time.Time, error) {
	const layout = "2006-01-02"

	to := time.Now().UTC()
	if raw := c.QueryParam("to"); raw != "" {
		parsed, err := time.Parse(layout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed
	}

	from := to.AddDate(0, 0, -30)
	if raw := c.QueryParam("from"); raw != "" {
		parsed, err := time.Parse(layout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}

	return from, to, nil
}

// intQuery parses an optional non-negative integer query param.
func (h *UsageHandler) intQuery(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, echo.ErrBadRequest
	}

	return value, nil
}
