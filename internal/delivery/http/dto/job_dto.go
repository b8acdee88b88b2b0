package dto

import (
	"time"

	"jobtrack/internal/domain/job"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID        uuid.UUID `json:"id"`
	Company   string    `json:"company"`
	Position  string    `json:"position"`
	Status    string    `json:"status"`
	JobType   string    `json:"jobType"`
	Location  string    `json:"location"`
	CreatedBy uuid.UUID `json:"createdBy"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

func FromJob(j job.Job) JobResponse {
	return JobResponse{
		ID:        j.ID,
		Company:   j.Company,
		Position:  j.Position,
		Status:    string(j.Status),
		JobType:   string(j.JobType),
		Location:  j.Location,
		CreatedBy: j.CreatedBy,
		CreatedAt: j.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: j.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func FromJobs(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}

type JobEnvelope struct {
	Job JobResponse `json:"job"`
}

type ListJobsResponse struct {
	Jobs       []JobResponse `json:"jobs"`
	TotalJobs  int           `json:"totalJobs"`
	NumOfPages int           `json:"numOfPages"`
}

type CreateJobRequest struct {
	Company  string `json:"company"`
	Position string `json:"position"`
	Status   string `json:"status"`
	JobType  string `json:"jobType"`
	Location string `json:"location"`
}

type UpdateJobRequest struct {
	Company  *string `json:"company"`
	Position *string `json:"position"`
	Status   *string `json:"status"`
	JobType  *string `json:"jobType"`
	Location *string `json:"location"`
}
