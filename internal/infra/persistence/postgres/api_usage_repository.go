package postgres

import (
	"context"
	"time"

	"freightway/internal/domain/entity"
	domainerrors "freightway/internal/domain/errors"
	"freightway/internal/domain/repository"
	"freightway/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// apiUsageRepository implements the repository.APIUsageRepository interface.
// The interface is append-plus-aggregate only: usage rows are immutable by
// policy, so no update or delete methods exist.
type apiUsageRepository struct {
	db *gorm.DB
}

// NewAPIUsageRepository is the constructor for apiUsageRepository.
func NewAPIUsageRepository(db *gorm.DB) repository.APIUsageRepository {
	return &apiUsageRepository{
		db: db,
	}
}

// Create persists one usage record for an external API call attempt.
func (repo *apiUsageRepository) Create(ctx context.Context, usage *entity.APIUsage) error {
	usageM := fromAPIUsageDomain(usage)

	if err := repo.db.WithContext(ctx).Create(usageM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("missing required usage information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create API usage record")
	}

	// Update the entity with generated values
	usage.ID = usageM.ID
	usage.CreatedAt = usageM.CreatedAt

	return nil
}

// SummarizeByBucket aggregates call totals, success counts, average latency and cost per time bucket.
func (repo *apiUsageRepository) SummarizeByBucket(ctx context.Context, bucket repository.UsageBucket, from, to time.Time) ([]repository.UsageSummaryRow, error) {
	switch bucket {
	case repository.BucketDay, repository.BucketWeek, repository.BucketMonth:
	default:
		return nil, errors.Errorf("unsupported usage bucket %q", bucket)
	}

	var rows []repository.UsageSummaryRow

	if err := repo.db.WithContext(ctx).
		Model(&model.APIUsageModel{}).
		Select("date_trunc(?, created_at) AS bucket, "+
			"count(*) AS total_calls, "+
			"count(*) FILTER (WHERE success) AS success_calls, "+
			"coalesce(avg(response_time_ms), 0) AS avg_response_time_ms, "+
			"coalesce(sum(estimated_cost), 0) AS total_cost", string(bucket)).
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("1").
		Order("bucket").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to summarize API usage")
	}

	return rows, nil
}

// CountByAPIType aggregates calls and cost per API type within [from, to).
func (repo *apiUsageRepository) CountByAPIType(ctx context.Context, from, to time.Time) ([]repository.UsageByTypeRow, error) {
	var rows []repository.UsageByTypeRow

	if err := repo.db.WithContext(ctx).
		Model(&model.APIUsageModel{}).
		Select("api_type, "+
			"count(*) AS total_calls, "+
			"count(*) FILTER (WHERE success) AS success_calls, "+
			"coalesce(sum(estimated_cost), 0) AS total_cost").
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("api_type").
		Order("total_calls DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count API usage by type")
	}

	return rows, nil
}

// FindRecentFailures retrieves the newest failed calls, most recent first.
func (repo *apiUsageRepository) FindRecentFailures(ctx context.Context, limit int) ([]*entity.APIUsage, error) {
	var usageModels []*model.APIUsageModel

	if err := repo.db.WithContext(ctx).
		Where("success = ?", false).
		Order("created_at DESC").
		Limit(limit).
		Find(&usageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent failures")
	}

	return toAPIUsageDomainList(usageModels), nil
}

// FindSlowCalls retrieves the slowest calls at or above the latency threshold.
func (repo *apiUsageRepository) FindSlowCalls(ctx context.Context, thresholdMs, limit int) ([]*entity.APIUsage, error) {
	var usageModels []*model.APIUsageModel

	if err := repo.db.WithContext(ctx).
		Where("response_time_ms >= ?", thresholdMs).
		Order("response_time_ms DESC").
		Limit(limit).
		Find(&usageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find slow calls")
	}

	return toAPIUsageDomainList(usageModels), nil
}

// DailyCost rolls up per-day call counts and cost for one calendar month.
func (repo *apiUsageRepository) DailyCost(ctx context.Context, year int, month time.Month) ([]repository.DailyCostRow, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	var rows []repository.DailyCostRow

	if err := repo.db.WithContext(ctx).
		Model(&model.APIUsageModel{}).
		Select("date_trunc('day', created_at) AS day, "+
			"count(*) AS calls, "+
			"coalesce(sum(estimated_cost), 0) AS cost").
		Where("created_at >= ? AND created_at < ?", monthStart, monthEnd).
		Group("1").
		Order("day").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to roll up daily cost")
	}

	return rows, nil
}

// fromAPIUsageDomain converts the domain entity to the GORM model.
func fromAPIUsageDomain(usage *entity.APIUsage) *model.APIUsageModel {
	return &model.APIUsageModel{
		ID:             usage.ID,
		APIType:        string(usage.APIType),
		Endpoint:       usage.Endpoint,
		RequestParams:  datatypes.JSON(usage.RequestParams),
		ResponseStatus: usage.ResponseStatus,
		ResponseTimeMs: usage.ResponseTimeMs,
		Success:        usage.Success,
		ErrorMessage:   usage.ErrorMessage,
		ResultCount:    usage.ResultCount,
		RequesterID:    usage.RequesterID,
		IPAddress:      usage.IPAddress,
		UserAgent:      usage.UserAgent,
		EstimatedCost:  usage.EstimatedCost,
		CreatedAt:      usage.CreatedAt,
	}
}

// toAPIUsageDomain converts the GORM model to the domain entity.
func toAPIUsageDomain(usageM *model.APIUsageModel) *entity.APIUsage {
	return &entity.APIUsage{
		ID:             usageM.ID,
		APIType:        entity.APIType(usageM.APIType),
		Endpoint:       usageM.Endpoint,
		RequestParams:  []byte(usageM.RequestParams),
		ResponseStatus: usageM.ResponseStatus,
		ResponseTimeMs: usageM.ResponseTimeMs,
		Success:        usageM.Success,
		ErrorMessage:   usageM.ErrorMessage,
		ResultCount:    usageM.ResultCount,
		RequesterID:    usageM.RequesterID,
		IPAddress:      usageM.IPAddress,
		UserAgent:      usageM.UserAgent,
		EstimatedCost:  usageM.EstimatedCost,
		CreatedAt:      usageM.CreatedAt,
	}
}

func toAPIUsageDomainList(usageModels []*model.APIUsageModel) []*entity.APIUsage {
	usages := make([]*entity.APIUsage, 0, len(usageModels))
	for _, usageM := range usageModels {
		usages = append(usages, toAPIUsageDomain(usageM))
	}

	return usages
}
