package usecase

import (
	"context"
	"log/slog"
	"time"

	"jobtrack/internal/domain/job"
	"jobtrack/internal/repository"

	"github.com/google/uuid"
)

// monthlyBuckets is how far back the monthly aggregation reaches.
const monthlyBuckets = 6

type DefaultStats struct {
	Pending   int `json:"pending"`
	Interview int `json:"interview"`
	Declined  int `json:"declined"`
}

type MonthlyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type JobStatsResult struct {
	DefaultStats        DefaultStats   `json:"defaultStats"`
	MonthlyApplications []MonthlyCount `json:"monthlyApplications"`
}

type JobStatsUsecase interface {
	GetStats(ctx context.Context, userID uuid.UUID) (JobStatsResult, error)
}

type JobStats struct {
	jobs   repository.JobRepository
	cache  Cache
	logger *slog.Logger
}

func NewJobStatsUsecase(jobs repository.JobRepository, cache Cache, logger *slog.Logger) *JobStats {
	return &JobStats{jobs: jobs, cache: cache, logger: logger}
}

func (u *JobStats) GetStats(ctx context.Context, userID uuid.UUID) (JobStatsResult, error) {
	key := JobsStatsCacheKey(userID)
	if u.cache != nil {
		var cached JobStatsResult
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Debug("jobs stats cache hit", slog.String("key", key))
			}
			return cached, nil
		}
	}

	byStatus, err := u.jobs.CountByStatus(ctx, userID)
	if err != nil {
		return JobStatsResult{}, err
	}

	byMonth, err := u.jobs.CountByMonth(ctx, userID, monthlyBuckets)
	if err != nil {
		return JobStatsResult{}, err
	}

	result := JobStatsResult{
		DefaultStats:        shapeDefaultStats(byStatus),
		MonthlyApplications: shapeMonthly(byMonth),
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, result, 0); err != nil && u.logger != nil {
			u.logger.Debug("jobs stats cache store failed", slog.String("error", err.Error()))
		}
	}

	return result, nil
}

// shapeDefaultStats zero-fills the three recognized statuses; anything
// else in the grouped result is ignored.
func shapeDefaultStats(byStatus map[job.Status]int) DefaultStats {
	return DefaultStats{
		Pending:   byStatus[job.StatusPending],
		Interview: byStatus[job.StatusInterview],
		Declined:  byStatus[job.StatusDeclined],
	}
}

// shapeMonthly takes the buckets newest-first and renders them oldest-first
// with a display label.
func shapeMonthly(byMonth []repository.MonthCount) []MonthlyCount {
	out := make([]MonthlyCount, 0, len(byMonth))
	for i := len(byMonth) - 1; i >= 0; i-- {
		m := byMonth[i]
		label := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
		out = append(out, MonthlyCount{Date: label, Count: m.Count})
	}
	return out
}
