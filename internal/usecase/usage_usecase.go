package usecase

import (
	"context"
	"time"

	"freightway/internal/domain/entity"
	"freightway/internal/domain/repository"
)

// UsagePeriod selects the bucket size for usage summaries.
type UsagePeriod string

const (
	PeriodDaily   UsagePeriod = "daily"
	PeriodWeekly  UsagePeriod = "weekly"
	PeriodMonthly UsagePeriod = "monthly"
)

// UsageUsecase is the read side of API usage metering, consumed by the
// operations dashboard. There are deliberately no mutation operations:
// usage rows are written once by the calculation flow and never touched
// again.
type UsageUsecase interface {
	// Summary aggregates usage over a trailing window sized to the period:
	// the last 30 days, 12 weeks or 12 months.
	Summary(ctx context.Context, period UsagePeriod) ([]repository.UsageSummaryRow, error)

	// ByAPIType breaks calls and cost down per API type within [from, to).
	ByAPIType(ctx context.Context, from, to time.Time) ([]repository.UsageByTypeRow, error)

	// RecentFailures lists the newest failed calls.
	RecentFailures(ctx context.Context, limit int) ([]*entity.APIUsage, error)

	// SlowCalls lists the slowest calls at or above the latency threshold.
	SlowCalls(ctx context.Context, thresholdMs, limit int) ([]*entity.APIUsage, error)

	// MonthlyCost rolls up per-day cost for one calendar month.
	MonthlyCost(ctx context.Context, year int, month time.Month) ([]repository.DailyCostRow, error)
}
