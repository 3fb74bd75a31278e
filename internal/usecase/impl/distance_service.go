package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"freightway/config"
	"freightway/internal/domain/entity"
	domainerrors "freightway/internal/domain/errors"
	"freightway/internal/domain/repository"
	"freightway/internal/domain/service"
	"freightway/internal/usecase"
	"freightway/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

const directionsEndpoint = "/v1/directions"

type distanceService struct {
	cacheRepo repository.DistanceCacheRepository
	changeLog repository.AddressChangeLogRepository
	provider  service.RouteProvider
	usage     service.UsageRecorder
	limiter   service.RateLimiter
	config    *config.Config
	logger    *slog.Logger
	flight    singleflight.Group
	now       func() time.Time
}

// NewDistanceService creates a new distance calculation service instance
func NewDistanceService(
	cacheRepo repository.DistanceCacheRepository,
	changeLog repository.AddressChangeLogRepository,
	provider service.RouteProvider,
	usage service.UsageRecorder,
	limiter service.RateLimiter,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DistanceUsecase {
	// If the cache or provider sections are not configured, provide defaults
	if cfg.DistanceCache == nil {
		cfg.DistanceCache = &config.DistanceCacheConfig{Enabled: true}
	}
	if cfg.Kakao == nil {
		cfg.Kakao = &config.KakaoConfig{}
	}
	if cfg.RateLimit == nil {
		cfg.RateLimit = &config.RateLimitConfig{}
	}

	return &distanceService{
		cacheRepo: cacheRepo,
		changeLog: changeLog,
		provider:  provider,
		usage:     usage,
		limiter:   limiter,
		config:    cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// CalculateDistance resolves the road distance for an address pair,
// cache-first with the directions API as fallback.
func (s *distanceService) CalculateDistance(ctx context.Context, input *usecase.CalculateDistanceInput) (*usecase.DistanceResult, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidInput
	}
	if input.PickupAddressID == uuid.Nil || input.DeliveryAddressID == uuid.Nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("pickup and delivery address ids are required")
	}
	if !input.PickupCoordinate.Valid() || !input.DeliveryCoordinate.Valid() {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	priority := input.Priority
	if priority == "" {
		priority = entity.PriorityRecommend
	}
	if !priority.Valid() {
		return nil, domainerrors.ErrInvalidPriority.WithDetails(string(input.Priority))
	}

	var limit *service.RateLimitStatus
	if input.RequesterID != nil {
		status := s.limiter.Check(*input.RequesterID)
		limit = &status

		if status.IsLimited {
			s.logger.Warn("requester exceeded the distance calculation limit",
				slog.String("requesterId", input.RequesterID.String()),
				slog.Int("callCount", status.CallCount),
				slog.Bool("enforced", s.config.RateLimit.Enforce),
			)
			if s.config.RateLimit.Enforce {
				return nil, domainerrors.ErrRateLimited
			}
		}
	}

	if !input.ForceRefresh && s.config.DistanceCache.Enabled {
		if result := s.lookupCache(ctx, input, priority); result != nil {
			result.RateLimit = limit

			return result, nil
		}
	}

	result, err := s.refreshFromAPI(ctx, input, priority)
	if err != nil {
		return nil, err
	}
	result.RateLimit = limit

	return result, nil
}

// lookupCache returns a result built from the newest valid, non-stale cache
// entry, or nil when the flow must fall through to the directions API.
func (s *distanceService) lookupCache(ctx context.Context, input *usecase.CalculateDistanceInput, priority entity.RoutePriority) *usecase.DistanceResult {
	entry, err := s.cacheRepo.FindLatestValid(ctx, input.PickupAddressID, input.DeliveryAddressID, priority)
	if err != nil {
		if !errors.Is(err, repository.ErrCacheEntryNotFound) {
			// A broken cache read degrades to an API call, it is not fatal.
			s.logger.Warn("distance cache lookup failed",
				slog.String("pickupAddressId", input.PickupAddressID.String()),
				slog.String("deliveryAddressId", input.DeliveryAddressID.String()),
				slog.String("error", err.Error()),
			)
		}

		return nil
	}

	stale, err := s.changeLog.HasChangeSince(ctx, input.PickupAddressID, input.DeliveryAddressID, entry.CreatedAt)
	if err != nil {
		// An unverifiable entry is treated as stale: a wrong "fresh" verdict
		// risks serving bad distances, a wrong "stale" verdict only costs
		// one extra provider call.
		s.logger.Warn("address change check failed, treating cache entry as stale",
			slog.String("cacheId", entry.ID.String()),
			slog.String("error", err.Error()),
		)
		stale = true
	}
	if stale {
		// Read-time staleness only steers this call to the API. The entry
		// stays valid until an explicit InvalidateCache.
		return nil
	}

	cacheID := entry.ID

	return &usecase.DistanceResult{
		DistanceKm:      entry.DistanceKm,
		DurationMinutes: entry.DurationMinutes,
		Method:          usecase.MethodCached,
		CacheHit:        true,
		CacheID:         &cacheID,
		Accuracy:        usecase.AccuracyHigh,
		Metadata: usecase.DistanceResultMetadata{
			CalculatedAt:      entry.CreatedAt,
			TrafficConsidered: true,
		},
	}
}

// apiOutcome is the shared result of one provider call, possibly served to
// several concurrent callers through the singleflight group.
type apiOutcome struct {
	distanceKm      float64
	durationMinutes int
	cacheID         *uuid.UUID
	apiCallID       *uuid.UUID
	alternatives    int
	accuracy        string
	calculatedAt    time.Time
}

func (s *distanceService) refreshFromAPI(ctx context.Context, input *usecase.CalculateDistanceInput, priority entity.RoutePriority) (*usecase.DistanceResult, error) {
	// Concurrent misses for the same key share one provider call and one
	// cache write instead of each paying for their own.
	key := input.PickupAddressID.String() + "|" + input.DeliveryAddressID.String() + "|" + string(priority)

	v, err, _ := s.flight.Do(key, func() (any, error) {
		return s.callProvider(ctx, input, priority)
	})
	if err != nil {
		return nil, err
	}

	outcome, ok := v.(*apiOutcome)
	if !ok {
		return nil, errors.New("unexpected directions outcome type")
	}

	return &usecase.DistanceResult{
		DistanceKm:      outcome.distanceKm,
		DurationMinutes: outcome.durationMinutes,
		Method:          usecase.MethodAPI,
		CacheHit:        false,
		CacheID:         outcome.cacheID,
		APICallID:       outcome.apiCallID,
		Accuracy:        outcome.accuracy,
		Metadata: usecase.DistanceResultMetadata{
			CalculatedAt:      outcome.calculatedAt,
			AlternativeRoutes: outcome.alternatives,
			TrafficConsidered: true,
		},
	}, nil
}

func (s *distanceService) callProvider(ctx context.Context, input *usecase.CalculateDistanceInput, priority entity.RoutePriority) (*apiOutcome, error) {
	params := service.DirectionsParams{
		Origin:      input.PickupCoordinate.String(),
		Destination: input.DeliveryCoordinate.String(),
		Priority:    priority,
		SummaryOnly: true,
	}

	start := s.now()
	res, callErr := s.provider.GetDirections(ctx, params)
	elapsedMs := int(s.now().Sub(start) / time.Millisecond)

	// One usage record per attempt, success or failure.
	usageID := s.recordUsage(ctx, input, params, res, callErr, elapsedMs)

	if callErr != nil {
		if errors.Is(callErr, service.ErrNoRouteFound) {
			return nil, domainerrors.ErrRouteNotFound.WrapMessage(callErr.Error())
		}

		var provErr *service.ProviderError
		if errors.As(callErr, &provErr) {
			return nil, domainerrors.ErrRoutingProvider.WithDetails(provErr.Error())
		}

		return nil, errors.Wrap(callErr, "directions call failed")
	}

	head := res.Routes[0]
	distanceKm := util.RoundDistanceKm(head.DistanceMeters)
	durationMinutes := util.RoundDurationMinutes(head.DurationSeconds)

	accuracy := usecase.AccuracyHigh
	if head.Priority != "" && head.Priority != priority {
		// Provider answered with a different routing strategy than requested.
		accuracy = usecase.AccuracyMedium
	}

	calculatedAt := s.now()
	outcome := &apiOutcome{
		distanceKm:      distanceKm,
		durationMinutes: durationMinutes,
		alternatives:    len(res.Routes) - 1,
		accuracy:        accuracy,
		calculatedAt:    calculatedAt,
	}
	if usageID != uuid.Nil {
		outcome.apiCallID = &usageID
	}

	if s.config.DistanceCache.Enabled {
		entry := &entity.DistanceCache{
			ID:                 uuid.New(),
			PickupAddressID:    input.PickupAddressID,
			DeliveryAddressID:  input.DeliveryAddressID,
			Priority:           priority,
			PickupCoordinate:   input.PickupCoordinate,
			DeliveryCoordinate: input.DeliveryCoordinate,
			DistanceKm:         distanceKm,
			DurationMinutes:    durationMinutes,
			RawResponse:        res.RawBody,
			IsValid:            true,
			CreatedAt:          calculatedAt,
		}

		if err := s.cacheRepo.Create(ctx, entry); err != nil {
			// The result is still good; only the next caller pays for the miss.
			s.logger.Warn("failed to persist distance cache entry",
				slog.String("pickupAddressId", input.PickupAddressID.String()),
				slog.String("deliveryAddressId", input.DeliveryAddressID.String()),
				slog.String("error", err.Error()),
			)
		} else {
			cacheID := entry.ID
			outcome.cacheID = &cacheID
		}
	}

	return outcome, nil
}

func (s *distanceService) recordUsage(ctx context.Context, input *usecase.CalculateDistanceInput, params service.DirectionsParams, res *service.DirectionsResult, callErr error, elapsedMs int) uuid.UUID {
	rawParams, err := json.Marshal(params)
	if err != nil {
		rawParams = nil
	}

	record := &entity.APIUsage{
		APIType:        entity.APITypeDirections,
		Endpoint:       directionsEndpoint,
		RequestParams:  rawParams,
		ResponseTimeMs: elapsedMs,
		RequesterID:    input.RequesterID,
		IPAddress:      input.ClientIP,
		UserAgent:      input.UserAgent,
		EstimatedCost:  s.config.Kakao.CostPerCall,
	}

	if callErr != nil {
		msg := callErr.Error()
		zero := 0
		record.Success = false
		record.ErrorMessage = &msg
		record.ResultCount = &zero

		var provErr *service.ProviderError
		switch {
		case errors.As(callErr, &provErr):
			record.ResponseStatus = provErr.StatusCode
		case errors.Is(callErr, service.ErrNoRouteFound):
			// The provider answered, just without a route.
			record.ResponseStatus = http.StatusOK
		}
	} else {
		count := len(res.Routes)
		record.Success = true
		record.ResponseStatus = res.StatusCode
		record.ResultCount = &count
	}

	return s.usage.Record(ctx, record)
}

// InvalidateCache soft-invalidates all cache entries for the address pair.
func (s *distanceService) InvalidateCache(ctx context.Context, pickupID, deliveryID uuid.UUID) (int64, error) {
	affected, err := s.cacheRepo.InvalidatePair(ctx, pickupID, deliveryID)
	if err != nil {
		return 0, fmt.Errorf("failed to invalidate distance cache: %w", err)
	}

	s.logger.Info("distance cache invalidated",
		slog.String("pickupAddressId", pickupID.String()),
		slog.String("deliveryAddressId", deliveryID.String()),
		slog.Int64("affected", affected),
	)

	return affected, nil
}

// CheckRateLimit exposes the advisory limiter state for a requester.
func (s *distanceService) CheckRateLimit(requesterID uuid.UUID) service.RateLimitStatus {
	return s.limiter.Check(requesterID)
}

// CacheStats reports the current number of valid cache entries.
func (s *distanceService) CacheStats(ctx context.Context) (usecase.CacheStats, error) {
	count, err := s.cacheRepo.CountValid(ctx)
	if err != nil {
		return usecase.CacheStats{}, fmt.Errorf("failed to count distance cache entries: %w", err)
	}

	return usecase.CacheStats{ValidEntries: count}, nil
}
