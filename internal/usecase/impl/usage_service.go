package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"freightway/internal/domain/entity"
	domainerrors "freightway/internal/domain/errors"
	"freightway/internal/domain/repository"
	"freightway/internal/domain/service"
	"freightway/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultQueryLimit    = 20
	maxQueryLimit        = 100
	defaultSlowThreshold = 1000 // milliseconds
)

type usageService struct {
	usageRepo repository.APIUsageRepository
	logger    *slog.Logger
	now       func() time.Time
}

// NewUsageService creates the usage metering service. The same instance
// serves as the write-side recorder for the calculation flow and the
// read side for the operations dashboard.
func NewUsageService(usageRepo repository.APIUsageRepository, logger *slog.Logger) (usecase.UsageUsecase, service.UsageRecorder) {
	svc := &usageService{
		usageRepo: usageRepo,
		logger:    logger,
		now:       time.Now,
	}

	return svc, svc
}

// Record persists one usage record. Failures are swallowed and logged: the
// caller-facing distance result matters more than the audit trail, so a
// metering outage must never abort the primary flow.
func (s *usageService) Record(ctx context.Context, usage *entity.APIUsage) uuid.UUID {
	if usage == nil {
		return uuid.Nil
	}

	if usage.ID == uuid.Nil {
		usage.ID = uuid.New()
	}
	if usage.CreatedAt.IsZero() {
		usage.CreatedAt = s.now()
	}

	if err := s.usageRepo.Create(ctx, usage); err != nil {
		s.logger.Error("failed to record API usage",
			slog.String("apiType", string(usage.APIType)),
			slog.String("endpoint", usage.Endpoint),
			slog.Bool("callSuccess", usage.Success),
			slog.String("error", err.Error()),
		)

		return uuid.Nil
	}

	return usage.ID
}

// Summary aggregates usage over a trailing window sized to the period.
func (s *usageService) Summary(ctx context.Context, period usecase.UsagePeriod) ([]repository.UsageSummaryRow, error) {
	now := s.now()

	var bucket repository.UsageBucket
	var from time.Time
	switch period {
	case usecase.PeriodDaily:
		bucket = repository.BucketDay
		from = now.AddDate(0, 0, -30)
	case usecase.PeriodWeekly:
		bucket = repository.BucketWeek
		from = now.AddDate(0, 0, -12*7)
	case usecase.PeriodMonthly:
		bucket = repository.BucketMonth
		from = now.AddDate(-1, 0, 0)
	default:
		return nil, domainerrors.ErrInvalidInput.WithDetails(fmt.Sprintf("unknown usage period %q", period))
	}

	rows, err := s.usageRepo.SummarizeByBucket(ctx, bucket, from, now)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize API usage: %w", err)
	}

	return rows, nil
}

// ByAPIType breaks calls and cost down per API type within [from, to).
func (s *usageService) ByAPIType(ctx context.Context, from, to time.Time) ([]repository.UsageByTypeRow, error) {
	if !from.Before(to) {
		return nil, domainerrors.ErrInvalidInput.WithDetails("from must be before to")
	}

	rows, err := s.usageRepo.CountByAPIType(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to count usage by API type: %w", err)
	}

	return rows, nil
}

// RecentFailures lists the newest failed calls.
func (s *usageService) RecentFailures(ctx context.Context, limit int) ([]*entity.APIUsage, error) {
	records, err := s.usageRepo.FindRecentFailures(ctx, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to find recent failures: %w", err)
	}

	return records, nil
}

// SlowCalls lists the slowest calls at or above the latency threshold.
func (s *usageService) SlowCalls(ctx context.Context, thresholdMs, limit int) ([]*entity.APIUsage, error) {
	if thresholdMs <= 0 {
		thresholdMs = defaultSlowThreshold
	}

	records, err := s.usageRepo.FindSlowCalls(ctx, thresholdMs, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to find slow calls: %w", err)
	}

	return records, nil
}

// MonthlyCost rolls up per-day cost for one calendar month.
func (s *usageService) MonthlyCost(ctx context.Context, year int, month time.Month) ([]repository.DailyCostRow, error) {
	if year <= 0 || month < time.January || month > time.December {
		return nil, domainerrors.ErrInvalidInput.WithDetails("invalid year or month")
	}

	rows, err := s.usageRepo.DailyCost(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to roll up monthly cost: %w", err)
	}

	return rows, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultQueryLimit
	}
	if limit > maxQueryLimit {
		return maxQueryLimit
	}

	return limit
}
