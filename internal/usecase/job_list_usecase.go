package usecase

import (
	"context"
	"log/slog"

	"jobtrack/internal/domain/job"
	"jobtrack/internal/repository"

	"github.com/google/uuid"
)

const (
	// defaultPage mirrors the long-standing production default. It is
	// almost certainly meant to be 1; see DESIGN.md before changing it.
	defaultPage  = 3
	defaultLimit = 10

	// filterAll is the query-string sentinel for "no filter".
	filterAll = "all"
)

type JobListParams struct {
	Status  string
	JobType string
	Search  string
	Sort    string
	Page    int
	Limit   int
}

type JobListResult struct {
	Jobs       []job.Job `json:"jobs"`
	TotalJobs  int       `json:"totalJobs"`
	NumOfPages int       `json:"numOfPages"`
}

type JobListUsecase interface {
	ListJobs(ctx context.Context, userID uuid.UUID, params JobListParams) (JobListResult, error)
}

type JobList struct {
	jobs   repository.JobRepository
	cache  Cache
	logger *slog.Logger
}

func NewJobListUsecase(jobs repository.JobRepository, cache Cache, logger *slog.Logger) *JobList {
	return &JobList{jobs: jobs, cache: cache, logger: logger}
}

func (u *JobList) ListJobs(ctx context.Context, userID uuid.UUID, params JobListParams) (JobListResult, error) {
	params = normalizeListParams(params)

	key := JobsListCacheKey(userID, params)
	if u.cache != nil {
		var cached JobListResult
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Debug("jobs list cache hit", slog.String("key", key))
			}
			return cached, nil
		}
	}

	f := repository.ListFilter{
		CreatedBy: userID,
		Search:    params.Search,
		Status:    params.Status,
		JobType:   params.JobType,
		Sort:      params.Sort,
		Limit:     params.Limit,
		Offset:    (params.Page - 1) * params.Limit,
	}

	jobs, err := u.jobs.List(ctx, f)
	if err != nil {
		return JobListResult{}, err
	}

	total, err := u.jobs.Count(ctx, f)
	if err != nil {
		return JobListResult{}, err
	}

	result := JobListResult{
		Jobs:       jobs,
		TotalJobs:  total,
		NumOfPages: pageCount(total, params.Limit),
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, result, 0); err != nil && u.logger != nil {
			u.logger.Debug("jobs list cache store failed", slog.String("error", err.Error()))
		}
	}

	return result, nil
}

func normalizeListParams(p JobListParams) JobListParams {
	if p.Page <= 0 {
		p.Page = defaultPage
	}
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Status == filterAll {
		p.Status = ""
	}
	if p.JobType == filterAll {
		p.JobType = ""
	}

	switch p.Sort {
	case "latest", "oldest", "a-z", "z-a":
	default:
		p.Sort = "latest"
	}

	return p
}

func pageCount(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
