package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"freightway/config"
	"freightway/internal/domain/entity"
	domainerrors "freightway/internal/domain/errors"
	"freightway/internal/domain/repository"
	"freightway/internal/domain/service"
	mockRepo "freightway/internal/mocks/repository"
	mockSvc "freightway/internal/mocks/service"
	"freightway/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// distanceServiceFixtures holds all test dependencies for distance service tests.
type distanceServiceFixtures struct {
	service   usecase.DistanceUsecase
	cacheRepo *mockRepo.MockDistanceCacheRepository
	changeLog *mockRepo.MockAddressChangeLogRepository
	provider  *mockSvc.MockRouteProvider
	usage     *mockSvc.MockUsageRecorder
	limiter   *mockSvc.MockRateLimiter
}

func testConfig() *config.Config {
	return &config.Config{
		Kakao:         &config.KakaoConfig{CostPerCall: 5},
		RateLimit:     &config.RateLimitConfig{Window: time.Minute, MaxCalls: 10},
		DistanceCache: &config.DistanceCacheConfig{Enabled: true},
	}
}

func createTestDistanceService(t *testing.T, cfg *config.Config) distanceServiceFixtures {
	cacheRepo := mockRepo.NewMockDistanceCacheRepository(t)
	changeLog := mockRepo.NewMockAddressChangeLogRepository(t)
	provider := mockSvc.NewMockRouteProvider(t)
	usage := mockSvc.NewMockUsageRecorder(t)
	limiter := mockSvc.NewMockRateLimiter(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewDistanceService(cacheRepo, changeLog, provider, usage, limiter, cfg, logger)

	return distanceServiceFixtures{
		service:   svc,
		cacheRepo: cacheRepo,
		changeLog: changeLog,
		provider:  provider,
		usage:     usage,
		limiter:   limiter,
	}
}

func testInput() *usecase.CalculateDistanceInput {
	return &usecase.CalculateDistanceInput{
		PickupAddressID:    uuid.New(),
		DeliveryAddressID:  uuid.New(),
		PickupCoordinate:   entity.Coordinate{Lat: 37.4979, Lng: 127.0276},
		DeliveryCoordinate: entity.Coordinate{Lat: 35.1796, Lng: 129.0756},
	}
}

func directionsSuccess(meters, seconds int) *service.DirectionsResult {
	return &service.DirectionsResult{
		Routes: []service.RouteSummary{{
			DistanceMeters:  meters,
			DurationSeconds: seconds,
			Priority:        entity.PriorityRecommend,
		}},
		RawBody:    []byte(`{"routes":[]}`),
		StatusCode: 200,
	}
}

func TestDistanceService_CalculateDistance_CacheHit(t *testing.T) {
	fx := createTestDistanceService(t, testConfig())

	ctx := context.Background()
	input := testInput()
	cacheID := uuid.New()
	createdAt := time.Now().Add(-time.Hour)

	fx.cacheRepo.EXPECT().
		FindLatestValid(ctx, input.PickupAddressID, input.DeliveryAddressID, entity.PriorityRecommend).
		Return(&entity.DistanceCache{
			ID:              cacheID,
			DistanceKm:      12.35,
			DurationMinutes: 13,
			IsValid:         true,
			CreatedAt:       createdAt,
		}, nil)

	fx.changeLog.EXPECT().
		HasChangeSince(ctx, input.PickupAddressID, input.DeliveryAddressID, createdAt).
		Return(false, nil)

	result, err := fx.service.CalculateDistance(ctx, input)
	require.NoError(t, err)
	assert.True(t, result.CacheHit)
	assert.Equal(t, usecase.MethodCached, result.Method)
	assert.Equal(t, 12.35, result.DistanceKm)
	assert.Equal(t, 13, result.DurationMinutes)
	assert.Equal(t, usecase.AccuracyHigh, result.Accuracy)
	require.NotNil(t, result.CacheID)
	assert.Equal(t, cacheID, *result.CacheID)
	// A cache hit never touches the provider or the usage log.
	fx.provider.AssertNotCalled(t, "GetDirections")
	fx.usage.AssertNotCalled(t, "Record")
}

func TestDistanceService_CalculateDistance_StaleEntryGoesToAPI(t *testing.T) {
	fx := createTestDistanceService(t, testConfig())

	ctx := context.Background()
	input := testInput()
	createdAt := time.Now().Add(-2 * time.Hour)

	fx.cacheRepo.EXPECT().
		FindLatestValid(ctx, input.PickupAddressID, input.DeliveryAddressID, entity.PriorityRecommend).
		Return(&entity.DistanceCache{ID: uuid.New(), IsValid: true, CreatedAt: createdAt}, nil)

	// An address edit newer than the entry makes it stale.
	fx.changeLog.EXPECT().
		HasChangeSince(ctx, input.PickupAddressID, input.DeliveryAddressID, createdAt).
		Return(true, nil)

	fx.provider.EXPECT().
		GetDirections(mock.Anything, mock.AnythingOfType("service.DirectionsParams")).
		Return(directionsSuccess(52000, 3600), nil)

	fx.usage.EXPECT().
		Record(mock.Anything, mock.AnythingOfType("*entity.APIUsage")).
		Return(uuid.New())

	fx.cacheRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.DistanceCache")).
		Return(nil)

	result, err := fx.service.CalculateDistance(ctx, input)
	require.NoError(t, err)
	assert.False(t, result.CacheHit)
	assert.Equal(t, usecase.MethodAPI, result.Method)
	assert.Equal(t, 52.0, result.DistanceKm)
	assert.Equal(t, 60, result.DurationMinutes)
}

func TestDistanceService_CalculateDistance_ChangeLogErrorTreatedAsStale(t *testing.T) {
	fx := createTestDistanceService(t, testConfig())

	ctx := context.Background()
	input := testInput()
	createdAt := time.Now().Add(-time.Hour)

	fx.cacheRepo.EXPECT().
		FindLatestValid(ctx, input.PickupAddressID, input.DeliveryAddressID, entity.PriorityRecommend).
		Return(&entity.DistanceCache{ID: uuid.New(), IsValid: true, CreatedAt: createdAt}, nil)

	fx.changeLog.EXPECT().
		HasChangeSince(ctx, input.PickupAddressID, input.DeliveryAddressID, createdAt).
		Return(false, errors.New("log table unavailable"))

	fx.provider.EXPECT().
		GetDirections(mock.Anything, mock.Anything).
		Return(directionsSuccess(1000, 120), nil)

	fx.usage.EXPECT().
		Record(mock.Anything, mock.Anything).
		Return(uuid.New())

	fx.cacheRepo.EXPECT().
		Create(mock.Anything, mock.Anything).
		Return(nil)

	result, err := fx.service.CalculateDistance(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, usecase.MethodAPI, result.Method)
}

func TestDistanceService_CalculateDistance_ForceRefreshSkipsCache(t *testing.T) {
	fx := createTestDistanceService(t, testConfig())

	ctx := context.Background()
	input := testInput()
	input.ForceRefresh = true

	fx.provider.EXPECT().
		GetDirections(mock.Anything, mock.Anything).
		Return(directionsSuccess(12345, 754), nil)

	fx.usage.EXPECT().
		Record(mock.Anything, mock.Anything).
		Return(uuid.New())

	fx.cacheRepo.EXPECT().
		Create(mock.Anything, mock.Anything).
		Return(nil)

	result, err := fx.service.CalculateDistance(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, usecase.MethodAPI, result.Method)
	fx.cacheRepo.AssertNotCalled(t, "FindLatestValid")
}

func TestDistanceService_CalculateDistance_RoundsAndPersistsRoundedValues(t *testing.T) {
	fx := createTestDistanceService(t, testConfig())

	ctx := context.Background()
	input := testInput()
	input.ForceRefresh = true

	fx.provider.EXPECT().
		GetDirections(mock.Anything, mock.Anything).
		Return(directionsSuccess(12345, 754), nil)

	fx.usage.EXPECT().
		Record(mock.Anything, mock.Anything).
		Return(uuid.New())

	var persisted *entity.DistanceCache
	fx.cacheRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.DistanceCache")).
		Run(func(_ context.Context, entry *entity.DistanceCache) {
			persisted = entry
		}).
		Return(nil)

	result, err := fx.service.CalculateDistance(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 12.35, result.DistanceKm)
	assert.Equal(t, 13, result.DurationMinutes)

	// The cache row stores the already rounded values, so a later hit
	// returns exactly what the caller saw now.
	require.NotNil(t, persisted)
	assert.Equal(t, 12.35, persisted.DistanceKm)
	assert.Equal(t, 13, persisted.DurationMinutes)
	assert.Equal(t, input.PickupAddressID, persisted.PickupAddressID)
	assert.Equal(t, input.DeliveryAddressID, persisted.DeliveryAddressID)
	assert.Equal(t, entity.PriorityRecommend, persisted.Priority)
	assert.True(t, persisted.IsValid)
	assert.NotEmpty(t, persisted.RawResponse)
}

func TestDistanceService_CalculateDistance_RecordsUsageOnSuccess(t *testing.T) {
	fx := createTestDistanceService(t, testConfig())

	ctx := context.Background()
	requesterID := uuid.New()
	input := testInput()
	input.ForceRefresh = true
	input.RequesterID = &requesterID
	input.ClientIP = "10.0.0.7"
	input.UserAgent = "dispatch-console/2.4"

	fx.limiter.EXPECT().
		Check(requesterID).
		Return(service.RateLimitStatus{RequesterID: requesterID, CallCount: 1})

	fx.provider.EXPECT().
		GetDirections(mock.Anything, mock.Anything).
		Return(directionsSuccess(52000, 3600), nil)

	usageID := uuid.New()
	var recorded *entity.APIUsage
	fx.usage.EXPECT().
		Record(mock.Anything, mock.AnythingOfType("*entity.APIUsage")).
		Run(func(_ context.Context, usage *entity.APIUsage) {
			recorded = usage
		}).
		Return(usageID)

	fx.cacheRepo.EXPECT().
		Create(mock.Anything, mock.Anything).
		Return(nil)

	result, err := fx.service.CalculateDistance(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, result.APICallID)
	assert.Equal(t, usageID, *result.APICallID)

	require.NotNil(t, recorded)
	assert.Equal(t, entity.APITypeDirections, recorded.APIType)
	assert.Equal(t, "/v1/directions", recorded.Endpoint)
	assert.True(t, recorded.Success)
	assert.Equal(t, 200, recorded.ResponseStatus)
	require.NotNil(t, recorded.ResultCount)
	assert.Equal(t, 1, *recorded.ResultCount)
	assert.Equal(t, &requesterID, recorded.RequesterID)
	assert.Equal(t, "10.0.0.7", recorded.IPAddress)
	assert.Equal(t, "dispatch-console/2.4", recorded.UserAgent)
	assert.Equal(t, 5, recorded.EstimatedCost)
}

func TestDistanceService_CalculateDistance_RecordsUsageOnProviderFailure(t *testing.T) {
	fx := createTestDistanceService(t, testConfig())

	ctx := context.Background()
	input := testInput()
	input.ForceRefresh = true

	fx.provider.EXPECT().
		GetDirections(mock.Anything, mock.Anything).
		Return(nil, &service.ProviderError{StatusCode: 401, Message: "invalid api key"})

	var recorded *entity.APIUsage
	fx.usage.EXPECT().
		Record(mock.Anything, mock.AnythingOfType("*entity.APIUsage")).
		Run(func(_ context.Context, usage *entity.APIUsage) {
			recorded = usage
		}).
		Return(uuid.New())

	result, err := fx.service.CalculateDistance(ctx, input)
	require.Error(t, err)
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ROUTING_PROVIDER_ERROR", appErr.ErrorCode())

	require.NotNil(t, recorded)
	assert.False(t, recorded.Success)
	assert.Equal(t, 401, recorded.ResponseStatus)
	require.NotNil(t, recorded.ErrorMessage)
	require.NotNil(t, recorded.ResultCount)
	assert.Equal(t, 0, *recorded.ResultCount)
	// No cache row is written for a failed call.
	fx.cacheRepo.AssertNotCalled(t, "Create")
}

func TestDistanceService_CalculateDistance_NoRouteIsHardError(t *testing.T) {
	fx := createTestDistanceService(t, testConfig())

	ctx := context.Background()
	input := testInput()
	input.ForceRefresh = true

	fx.provider.EXPECT().
		GetDirections(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(service.ErrNoRouteFound, "result code 104"))

	var recorded *entity.APIUsage
	fx.usage.EXPECT().
		Record(mock.Anything, mock.AnythingOfType("*entity.APIUsage")).
		Run(func(_ context.Context, usage *entity.APIUsage) {
			recorded = usage
		}).
		Return(uuid.New())

	result, err := fx.service.CalculateDistance(ctx, input)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrRouteNotFound)

	// The provider answered normally, just without a route.
	require.NotNil(t, recorded)
	assert.False(t, recorded.Success)
	assert.Equal(t, 200, recorded.ResponseStatus)
	require.NotNil(t, recorded.ResultCount)
	assert.Equal(t, 0, *recorded.ResultCount)
}

func TestDistanceService_CalculateDistance_UsageWriteFailureIsNotFatal(t *testing.T) {
	fx := createTestDistanceService(t, testConfig())

	ctx := context.Background()
	input := testInput()
	input.ForceRefresh = true

	fx.provider.EXPECT().
		GetDirections(mock.Anything, mock.Anything).
		Return(directionsSuccess(52000, 3600), nil)

	// The recorder signals a swallowed write failure with a nil id.
	fx.usage.EXPECT().
		Record(mock.Anything, mock.Anything).
		Return(uuid.Nil)

	fx.cacheRepo.EXPECT().
		Create(mock.Anything, mock.Anything).
		Return(nil)

	result, err := fx.service.CalculateDistance(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 52.0, result.DistanceKm)
	assert.Nil(t, result.APICallID)
}

func TestDistanceService_CalculateDistance_CacheWriteFailureIsNotFatal(t *testing.T) {
	fx := createTestDistanceService(t, testConfig())

	ctx := context.Background()
	input := testInput()
	input.ForceRefresh = true

	fx.provider.EXPECT().
		GetDirections(mock.Anything, mock.Anything).
		Return(directionsSuccess(52000, 3600), nil)

	fx.usage.EXPECT().
		Record(mock.Anything, mock.Anything).
		Return(uuid.New())

	fx.cacheRepo.EXPECT().
		Create(mock.Anything, mock.Anything).
		Return(errors.New("connection reset"))

	result, err := fx.service.CalculateDistance(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 52.0, result.DistanceKm)
	assert.Nil(t, result.CacheID)
}

func TestDistanceService_CalculateDistance_CacheMissFallsThrough(t *testing.T) {
	fx := createTestDistanceService(t, testConfig())

	ctx := context.Background()
	input := testInput()

	fx.cacheRepo.EXPECT().
		FindLatestValid(ctx, input.PickupAddressID, input.DeliveryAddressID, entity.PriorityRecommend).
		Return(nil, repository.ErrCacheEntryNotFound)

	fx.provider.EXPECT().
		GetDirections(mock.Anything, mock.Anything).
		Return(directionsSuccess(1000, 120), nil)

	fx.usage.EXPECT().
		Record(mock.Anything, mock.Anything).
		Return(uuid.New())

	fx.cacheRepo.EXPECT().
		Create(mock.Anything, mock.Anything).
		Return(nil)

	result, err := fx.service.CalculateDistance(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, usecase.MethodAPI, result.Method)
	assert.False(t, result.CacheHit)
}

func TestDistanceService_CalculateDistance_AdvisoryLimitDoesNotBlock(t *testing.T) {
	fx := createTestDistanceService(t, testConfig())

	ctx := context.Background()
	requesterID := uuid.New()
	input := testInput()
	input.RequesterID = &requesterID

	fx.limiter.EXPECT().
		Check(requesterID).
		Return(service.RateLimitStatus{RequesterID: requesterID, CallCount: 17, IsLimited: true})

	cacheID := uuid.New()
	createdAt := time.Now().Add(-time.Minute)
	fx.cacheRepo.EXPECT().
		FindLatestValid(ctx, input.PickupAddressID, input.DeliveryAddressID, entity.PriorityRecommend).
		Return(&entity.DistanceCache{ID: cacheID, DistanceKm: 1.5, DurationMinutes: 4, IsValid: true, CreatedAt: createdAt}, nil)

	fx.changeLog.EXPECT().
		HasChangeSince(ctx, input.PickupAddressID, input.DeliveryAddressID, createdAt).
		Return(false, nil)

	result, err := fx.service.CalculateDistance(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, result.RateLimit)
	assert.True(t, result.RateLimit.IsLimited)
	assert.Equal(t, 17, result.RateLimit.CallCount)
}

func TestDistanceService_CalculateDistance_EnforcedLimitBlocks(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.Enforce = true
	fx := createTestDistanceService(t, cfg)

	ctx := context.Background()
	requesterID := uuid.New()
	input := testInput()
	input.RequesterID = &requesterID

	fx.limiter.EXPECT().
		Check(requesterID).
		Return(service.RateLimitStatus{RequesterID: requesterID, CallCount: 11, IsLimited: true})

	result, err := fx.service.CalculateDistance(ctx, input)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrRateLimited)
	fx.cacheRepo.AssertNotCalled(t, "FindLatestValid")
	fx.provider.AssertNotCalled(t, "GetDirections")
}

func TestDistanceService_CalculateDistance_ValidatesInput(t *testing.T) {
	fx := createTestDistanceService(t, testConfig())
	ctx := context.Background()

	t.Run("missing address ids", func(t *testing.T) {
		input := testInput()
		input.PickupAddressID = uuid.Nil

		_, err := fx.service.CalculateDistance(ctx, input)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_INPUT", appErr.ErrorCode())
	})

	t.Run("out of range coordinates", func(t *testing.T) {
		input := testInput()
		input.PickupCoordinate = entity.Coordinate{Lat: 91, Lng: 127}

		_, err := fx.service.CalculateDistance(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
	})

	t.Run("unknown priority", func(t *testing.T) {
		input := testInput()
		input.Priority = "FASTEST"

		_, err := fx.service.CalculateDistance(ctx, input)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_PRIORITY", appErr.ErrorCode())
	})
}

func TestDistanceService_CalculateDistance_CacheDisabledSkipsLookupAndWrite(t *testing.T) {
	cfg := testConfig()
	cfg.DistanceCache.Enabled = false
	fx := createTestDistanceService(t, cfg)

	ctx := context.Background()
	input := testInput()

	fx.provider.EXPECT().
		GetDirections(mock.Anything, mock.Anything).
		Return(directionsSuccess(1000, 120), nil)

	fx.usage.EXPECT().
		Record(mock.Anything, mock.Anything).
		Return(uuid.New())

	result, err := fx.service.CalculateDistance(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, usecase.MethodAPI, result.Method)
	assert.Nil(t, result.CacheID)
	fx.cacheRepo.AssertNotCalled(t, "FindLatestValid")
	fx.cacheRepo.AssertNotCalled(t, "Create")
}

func TestDistanceService_CalculateDistance_DegradedAccuracyOnPriorityMismatch(t *testing.T) {
	fx := createTestDistanceService(t, testConfig())

	ctx := context.Background()
	input := testInput()
	input.ForceRefresh = true
	input.Priority = entity.PriorityTime

	res := directionsSuccess(52000, 3600)
	res.Routes[0].Priority = entity.PriorityRecommend

	fx.provider.EXPECT().
		GetDirections(mock.Anything, mock.Anything).
		Return(res, nil)

	fx.usage.EXPECT().
		Record(mock.Anything, mock.Anything).
		Return(uuid.New())

	fx.cacheRepo.EXPECT().
		Create(mock.Anything, mock.Anything).
		Return(nil)

	result, err := fx.service.CalculateDistance(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, usecase.AccuracyMedium, result.Accuracy)
}

func TestDistanceService_InvalidateCache(t *testing.T) {
	fx := createTestDistanceService(t, testConfig())

	ctx := context.Background()
	pickupID := uuid.New()
	deliveryID := uuid.New()

	fx.cacheRepo.EXPECT().
		InvalidatePair(ctx, pickupID, deliveryID).
		Return(int64(3), nil)

	affected, err := fx.service.InvalidateCache(ctx, pickupID, deliveryID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)
}

func TestDistanceService_InvalidateCache_Error(t *testing.T) {
	fx := createTestDistanceService(t, testConfig())

	ctx := context.Background()
	pickupID := uuid.New()
	deliveryID := uuid.New()

	fx.cacheRepo.EXPECT().
		InvalidatePair(ctx, pickupID, deliveryID).
		Return(int64(0), errors.New("deadlock detected"))

	_, err := fx.service.InvalidateCache(ctx, pickupID, deliveryID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to invalidate distance cache")
}

func TestDistanceService_CacheStats(t *testing.T) {
	fx := createTestDistanceService(t, testConfig())

	ctx := context.Background()
	fx.cacheRepo.EXPECT().
		CountValid(ctx).
		Return(int64(42), nil)

	stats, err := fx.service.CacheStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), stats.ValidEntries)
}

func TestDistanceService_CheckRateLimit(t *testing.T) {
	fx := createTestDistanceService(t, testConfig())

	requesterID := uuid.New()
	fx.limiter.EXPECT().
		Check(requesterID).
		Return(service.RateLimitStatus{RequesterID: requesterID, CallCount: 4})

	status := fx.service.CheckRateLimit(requesterID)
	assert.Equal(t, 4, status.CallCount)
	assert.False(t, status.IsLimited)
}
