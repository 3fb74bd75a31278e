package repository

import (
	"context"
	"time"

	"freightway/internal/domain/entity"
)

// UsageBucket is the time grouping for usage summaries.
type UsageBucket string

const (
	BucketDay   UsageBucket = "day"
	BucketWeek  UsageBucket = "week"
	BucketMonth UsageBucket = "month"
)

// UsageSummaryRow is one aggregated bucket of API usage.
type UsageSummaryRow struct {
	Bucket            time.Time `json:"bucket"`
	TotalCalls        int64     `json:"total_calls"`
	SuccessCalls      int64     `json:"success_calls"`
	AvgResponseTimeMs float64   `json:"avg_response_time_ms"`
	TotalCost         int64     `json:"total_cost"`
}

// UsageByTypeRow is the per-API-type call and cost breakdown.
type UsageByTypeRow struct {
	APIType      entity.APIType `json:"api_type"`
	TotalCalls   int64          `json:"total_calls"`
	SuccessCalls int64          `json:"success_calls"`
	TotalCost    int64          `json:"total_cost"`
}

// DailyCostRow is one day of the monthly cost rollup.
type DailyCostRow struct {
	Day   time.Time `json:"day"`
	Calls int64     `json:"calls"`
	Cost  int64     `json:"cost"`
}

// APIUsageRepository defines the interface for API usage metering persistence.
// The write side is append-only; there are deliberately no update or delete
// operations, so the audit trail cannot be destroyed through this service.
type APIUsageRepository interface {
	// Create persists one usage record for an external API call attempt.
	Create(ctx context.Context, usage *entity.APIUsage) error

	// SummarizeByBucket aggregates call totals, success counts, average
	// latency and cost per time bucket within [from, to).
	SummarizeByBucket(ctx context.Context, bucket UsageBucket, from, to time.Time) ([]UsageSummaryRow, error)

	// CountByAPIType aggregates calls and cost per API type within [from, to).
	CountByAPIType(ctx context.Context, from, to time.Time) ([]UsageByTypeRow, error)

	// FindRecentFailures retrieves the newest failed calls, most recent first.
	FindRecentFailures(ctx context.Context, limit int) ([]*entity.APIUsage, error)

	// FindSlowCalls retrieves the slowest calls at or above the latency
	// threshold, slowest first.
	FindSlowCalls(ctx context.Context, thresholdMs, limit int) ([]*entity.APIUsage, error)

	// DailyCost rolls up per-day call counts and cost for one calendar month.
	DailyCost(ctx context.Context, year int, month time.Month) ([]DailyCostRow, error)
}
