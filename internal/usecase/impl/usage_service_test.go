package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"freightway/internal/domain/entity"
	domainerrors "freightway/internal/domain/errors"
	"freightway/internal/domain/repository"
	"freightway/internal/domain/service"
	mockRepo "freightway/internal/mocks/repository"
	"freightway/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// usageServiceFixtures holds all test dependencies for usage service tests.
type usageServiceFixtures struct {
	usecase   usecase.UsageUsecase
	recorder  service.UsageRecorder
	usageRepo *mockRepo.MockAPIUsageRepository
}

func createTestUsageService(t *testing.T) usageServiceFixtures {
	usageRepo := mockRepo.NewMockAPIUsageRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	uc, recorder := NewUsageService(usageRepo, logger)

	return usageServiceFixtures{
		usecase:   uc,
		recorder:  recorder,
		usageRepo: usageRepo,
	}
}

func TestUsageService_Record_AssignsIDAndTimestamp(t *testing.T) {
	fx := createTestUsageService(t)

	ctx := context.Background()
	record := &entity.APIUsage{
		APIType:  entity.APITypeDirections,
		Endpoint: "/v1/directions",
		Success:  true,
	}

	fx.usageRepo.EXPECT().
		Create(ctx, record).
		Return(nil)

	id := fx.recorder.Record(ctx, record)
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, record.ID, id)
	assert.False(t, record.CreatedAt.IsZero())
}

func TestUsageService_Record_SwallowsWriteFailure(t *testing.T) {
	fx := createTestUsageService(t)

	ctx := context.Background()
	record := &entity.APIUsage{APIType: entity.APITypeDirections}

	fx.usageRepo.EXPECT().
		Create(ctx, record).
		Return(errors.New("table is locked"))

	id := fx.recorder.Record(ctx, record)
	assert.Equal(t, uuid.Nil, id)
}

func TestUsageService_Record_NilRecord(t *testing.T) {
	fx := createTestUsageService(t)

	id := fx.recorder.Record(context.Background(), nil)
	assert.Equal(t, uuid.Nil, id)
	fx.usageRepo.AssertNotCalled(t, "Create")
}

func TestUsageService_Summary_PeriodMapping(t *testing.T) {
	cases := []struct {
		period usecase.UsagePeriod
		bucket repository.UsageBucket
		span   time.Duration
	}{
		{usecase.PeriodDaily, repository.BucketDay, 30 * 24 * time.Hour},
		{usecase.PeriodWeekly, repository.BucketWeek, 12 * 7 * 24 * time.Hour},
	}

	for _, tc := range cases {
		t.Run(string(tc.period), func(t *testing.T) {
			fx := createTestUsageService(t)
			ctx := context.Background()

			var gotFrom, gotTo time.Time
			fx.usageRepo.EXPECT().
				SummarizeByBucket(ctx, tc.bucket, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
				Run(func(_ context.Context, _ repository.UsageBucket, from time.Time, to time.Time) {
					gotFrom = from
					gotTo = to
				}).
				Return([]repository.UsageSummaryRow{{TotalCalls: 7}}, nil)

			rows, err := fx.usecase.Summary(ctx, tc.period)
			require.NoError(t, err)
			require.Len(t, rows, 1)
			assert.Equal(t, int64(7), rows[0].TotalCalls)
			assert.Equal(t, tc.span, gotTo.Sub(gotFrom))
		})
	}
}

func TestUsageService_Summary_UnknownPeriod(t *testing.T) {
	fx := createTestUsageService(t)

	_, err := fx.usecase.Summary(context.Background(), "hourly")
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_INPUT", appErr.ErrorCode())
	fx.usageRepo.AssertNotCalled(t, "SummarizeByBucket")
}

func TestUsageService_ByAPIType(t *testing.T) {
	fx := createTestUsageService(t)

	ctx := context.Background()
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	fx.usageRepo.EXPECT().
		CountByAPIType(ctx, from, to).
		Return([]repository.UsageByTypeRow{
			{APIType: entity.APITypeDirections, TotalCalls: 120, SuccessCalls: 118, TotalCost: 600},
		}, nil)

	rows, err := fx.usecase.ByAPIType(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, entity.APITypeDirections, rows[0].APIType)
}

func TestUsageService_ByAPIType_InvertedRange(t *testing.T) {
	fx := createTestUsageService(t)

	now := time.Now()
	_, err := fx.usecase.ByAPIType(context.Background(), now, now.Add(-time.Hour))
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_INPUT", appErr.ErrorCode())
}

func TestUsageService_RecentFailures_ClampsLimit(t *testing.T) {
	fx := createTestUsageService(t)
	ctx := context.Background()

	// Zero falls back to the default page size, oversized requests are capped.
	fx.usageRepo.EXPECT().
		FindRecentFailures(ctx, 20).
		Return([]*entity.APIUsage{}, nil).
		Once()
	fx.usageRepo.EXPECT().
		FindRecentFailures(ctx, 100).
		Return([]*entity.APIUsage{}, nil).
		Once()

	_, err := fx.usecase.RecentFailures(ctx, 0)
	require.NoError(t, err)
	_, err = fx.usecase.RecentFailures(ctx, 5000)
	require.NoError(t, err)
}

func TestUsageService_SlowCalls_DefaultThreshold(t *testing.T) {
	fx := createTestUsageService(t)
	ctx := context.Background()

	fx.usageRepo.EXPECT().
		FindSlowCalls(ctx, 1000, 20).
		Return([]*entity.APIUsage{{ResponseTimeMs: 2400}}, nil)

	records, err := fx.usecase.SlowCalls(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 2400, records[0].ResponseTimeMs)
}

func TestUsageService_MonthlyCost(t *testing.T) {
	fx := createTestUsageService(t)
	ctx := context.Background()

	fx.usageRepo.EXPECT().
		DailyCost(ctx, 2026, time.August).
		Return([]repository.DailyCostRow{{Calls: 40, Cost: 200}}, nil)

	rows, err := fx.usecase.MonthlyCost(ctx, 2026, time.August)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(200), rows[0].Cost)
}

func TestUsageService_MonthlyCost_InvalidMonth(t *testing.T) {
	fx := createTestUsageService(t)

	_, err := fx.usecase.MonthlyCost(context.Background(), 2026, time.Month(13))
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_INPUT", appErr.ErrorCode())
}

func TestUsageService_RepositoryErrorsAreWrapped(t *testing.T) {
	fx := createTestUsageService(t)
	ctx := context.Background()

	fx.usageRepo.EXPECT().
		SummarizeByBucket(ctx, repository.BucketDay, mock.Anything, mock.Anything).
		Return(nil, errors.New("query canceled"))

	_, err := fx.usecase.Summary(ctx, usecase.PeriodDaily)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to summarize API usage")
}
