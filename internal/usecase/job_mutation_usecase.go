package usecase

import (
	"context"
	"errors"
	"log/slog"

	"jobtrack/internal/domain/job"
	"jobtrack/internal/repository"

	"github.com/google/uuid"
)

const emptyFieldsMessage = "Company, Position and location fields cannot be empty"

type CreateJobInput struct {
	Company  string
	Position string
	Status   string
	JobType  string
	Location string
}

// UpdateJobInput distinguishes absent fields (nil) from fields supplied
// as empty strings, which the contract rejects.
type UpdateJobInput struct {
	Company  *string
	Position *string
	Status   *string
	JobType  *string
	Location *string
}

type JobMutationUsecase interface {
	CreateJob(ctx context.Context, userID uuid.UUID, in CreateJobInput) (job.Job, error)
	GetJob(ctx context.Context, userID, jobID uuid.UUID) (job.Job, error)
	UpdateJob(ctx context.Context, userID, jobID uuid.UUID, in UpdateJobInput) (job.Job, error)
	DeleteJob(ctx context.Context, userID, jobID uuid.UUID) error
}

type JobMutation struct {
	jobs     repository.JobRepository
	cache    Cache
	notifier JobEventNotifier
	logger   *slog.Logger
}

func NewJobMutationUsecase(jobs repository.JobRepository, cache Cache, notifier JobEventNotifier, logger *slog.Logger) *JobMutation {
	return &JobMutation{jobs: jobs, cache: cache, notifier: notifier, logger: logger}
}

func (u *JobMutation) CreateJob(ctx context.Context, userID uuid.UUID, in CreateJobInput) (job.Job, error) {
	if in.Status == "" {
		in.Status = string(job.StatusPending)
	}
	if in.JobType == "" {
		in.JobType = string(job.TypeFullTime)
	}

	j := job.Job{
		ID:        uuid.New(),
		Company:   in.Company,
		Position:  in.Position,
		Status:    job.Status(in.Status),
		JobType:   job.Type(in.JobType),
		Location:  in.Location,
		CreatedBy: userID,
	}
	if err := j.Validate(); err != nil {
		return job.Job{}, NewValidationError(err.Error())
	}

	created, err := u.jobs.Create(ctx, j)
	if err != nil {
		return job.Job{}, err
	}

	u.afterMutation(ctx, userID, created.ID, "created")
	return created, nil
}

func (u *JobMutation) GetJob(ctx context.Context, userID, jobID uuid.UUID) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, jobID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (u *JobMutation) UpdateJob(ctx context.Context, userID, jobID uuid.UUID, in UpdateJobInput) (job.Job, error) {
	if isEmpty(in.Company) || isEmpty(in.Position) || isEmpty(in.Location) {
		return job.Job{}, NewValidationError(emptyFieldsMessage)
	}
	if in.Status != nil && !job.ValidStatus(job.Status(*in.Status)) {
		return job.Job{}, NewValidationError("`" + *in.Status + "` is not a valid status")
	}
	if in.JobType != nil && !job.ValidType(job.Type(*in.JobType)) {
		return job.Job{}, NewValidationError("`" + *in.JobType + "` is not a valid job type")
	}

	patch := repository.JobPatch{
		Company:  in.Company,
		Position: in.Position,
		Status:   in.Status,
		JobType:  in.JobType,
		Location: in.Location,
	}

	updated, err := u.jobs.Update(ctx, jobID, userID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, err
	}

	u.afterMutation(ctx, userID, jobID, "updated")
	return updated, nil
}

func (u *JobMutation) DeleteJob(ctx context.Context, userID, jobID uuid.UUID) error {
	if err := u.jobs.Delete(ctx, jobID, userID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrNotFound
		}
		return err
	}

	u.afterMutation(ctx, userID, jobID, "deleted")
	return nil
}

// afterMutation drops the owner's cached listings and stats and emits a
// change event. Failures here never fail the mutation.
func (u *JobMutation) afterMutation(ctx context.Context, userID, jobID uuid.UUID, action string) {
	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, JobsListCachePattern(userID)); err != nil && u.logger != nil {
			u.logger.Warn("jobs list cache invalidation failed", slog.String("error", err.Error()))
		}
		if err := u.cache.Delete(ctx, JobsStatsCacheKey(userID)); err != nil && u.logger != nil {
			u.logger.Warn("jobs stats cache invalidation failed", slog.String("error", err.Error()))
		}
	}
	if u.notifier != nil {
		u.notifier.JobChanged(userID, jobID, action)
	}
}

func isEmpty(s *string) bool {
	return s != nil && *s == ""
}
