package handler

import (
	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/usecase"
	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/gofiber/fiber/v2"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/jobs", h.Create)
	app.Get("/jobs", h.List)
	app.Get("/jobs/:id", h.Get)
	app.Put("/jobs/:id", h.Update)
	app.Delete("/jobs/:id", h.Delete)
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	var req dto.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	job, err := h.uc.CreateJob(userID, req)
	if err != nil {
		return respondError(c, err, "failed to create job application")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create job application",
		Data:    job,
	})
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)
	jobs, pagination, err := h.uc.ListJobs(userID, page, pageSize)
	if err != nil {
		return respondError(c, err, "failed to list job applications")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:       fiber.StatusOK,
		Message:    "Success get job applications",
		Data:       jobs,
		Pagination: pagination,
	})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	job, err := h.uc.GetJob(userID, c.Params("id"))
	if err != nil {
		return respondError(c, err, "failed to get job application")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get job application",
		Data:    job,
	})
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	var req dto.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	job, err := h.uc.UpdateJob(userID, c.Params("id"), req)
	if err != nil {
		return respondError(c, err, "failed to update job application")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success update job application",
		Data:    job,
	})
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	if err := h.uc.DeleteJob(userID, c.Params("id")); err != nil {
		return respondError(c, err, "failed to delete job application")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success delete job application",
	})
}
