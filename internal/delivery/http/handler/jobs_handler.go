package handler

import (
	"errors"
	"strconv"

	"jobtrack/internal/delivery/http/dto"
	"jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/pkg/response"
	"jobtrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobsHandler struct {
	list  usecase.JobListUsecase
	stats usecase.JobStatsUsecase
	mut   usecase.JobMutationUsecase
}

func NewJobsHandler(list usecase.JobListUsecase, stats usecase.JobStatsUsecase, mut usecase.JobMutationUsecase) *JobsHandler {
	return &JobsHandler{list: list, stats: stats, mut: mut}
}

func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	params := usecase.JobListParams{
		Status:  c.Query("status"),
		JobType: c.Query("jobType"),
		Search:  c.Query("search"),
		Sort:    c.Query("sort"),
		Page:    parseQueryInt(c, "page"),
		Limit:   parseQueryInt(c, "limit"),
	}

	result, err := h.list.ListJobs(c.Context(), userID, params)
	if err != nil {
		return mapJobError(err, "")
	}

	return c.Status(fiber.StatusOK).JSON(dto.ListJobsResponse{
		Jobs:       dto.FromJobs(result.Jobs),
		TotalJobs:  result.TotalJobs,
		NumOfPages: result.NumOfPages,
	})
}

func (h *JobsHandler) HandleStats(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	result, err := h.stats.GetStats(c.Context(), userID)
	if err != nil {
		return mapJobError(err, "")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *JobsHandler) HandleGetJob(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	rawID := c.Params("id")
	jobID, err := uuid.Parse(rawID)
	if err != nil {
		return notFoundError(rawID, err)
	}

	j, err := h.mut.GetJob(c.Context(), userID, jobID)
	if err != nil {
		return mapJobError(err, rawID)
	}

	return c.Status(fiber.StatusOK).JSON(dto.JobEnvelope{Job: dto.FromJob(j)})
}

func (h *JobsHandler) HandleCreateJob(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	var req dto.CreateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	created, err := h.mut.CreateJob(c.Context(), userID, usecase.CreateJobInput{
		Company:  req.Company,
		Position: req.Position,
		Status:   req.Status,
		JobType:  req.JobType,
		Location: req.Location,
	})
	if err != nil {
		return mapJobError(err, "")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.JobEnvelope{Job: dto.FromJob(created)})
}

func (h *JobsHandler) HandleUpdateJob(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	rawID := c.Params("id")
	jobID, err := uuid.Parse(rawID)
	if err != nil {
		return notFoundError(rawID, err)
	}

	var req dto.UpdateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	updated, err := h.mut.UpdateJob(c.Context(), userID, jobID, usecase.UpdateJobInput{
		Company:  req.Company,
		Position: req.Position,
		Status:   req.Status,
		JobType:  req.JobType,
		Location: req.Location,
	})
	if err != nil {
		return mapJobError(err, rawID)
	}

	return c.Status(fiber.StatusOK).JSON(dto.JobEnvelope{Job: dto.FromJob(updated)})
}

func (h *JobsHandler) HandleDeleteJob(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	rawID := c.Params("id")
	jobID, err := uuid.Parse(rawID)
	if err != nil {
		return notFoundError(rawID, err)
	}

	if err := h.mut.DeleteJob(c.Context(), userID, jobID); err != nil {
		return mapJobError(err, rawID)
	}

	return c.Status(fiber.StatusOK).Send(nil)
}

// parseQueryInt is deliberately loose: anything non-numeric falls back
// to the service default instead of erroring.
func parseQueryInt(c fiber.Ctx, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}

func notFoundError(rawID string, cause error) error {
	return middleware.NewAppError(fiber.StatusNotFound, "No job with id "+rawID, cause)
}

func mapJobError(err error, rawID string) error {
	var ve *usecase.ValidationError
	switch {
	case errors.As(err, &ve):
		return middleware.NewAppError(fiber.StatusBadRequest, ve.Error(), err)
	case errors.Is(err, usecase.ErrNotFound):
		return notFoundError(rawID, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternal, err)
	}
}
