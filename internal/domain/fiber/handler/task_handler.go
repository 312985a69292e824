package handler

import (
	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/usecase"
	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/gofiber/fiber/v2"
)

type TaskHandler struct {
	uc *usecase.TaskUsecase
}

func NewTaskHandler(uc *usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

func (h *TaskHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/tasks", h.Create)
	app.Get("/tasks", h.List)
	app.Get("/tasks/:id", h.Get)
	app.Put("/tasks/:id", h.Update)
	app.Patch("/tasks/:id/toggle", h.ToggleComplete)
	app.Delete("/tasks/:id", h.Delete)
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	var req dto.TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	task, err := h.uc.CreateTask(userID, req)
	if err != nil {
		return respondError(c, err, "failed to create task")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create task",
		Data:    task,
	})
}

// List returns all tasks, or only one job's tasks when ?job_id= is set.
func (h *TaskHandler) List(c *fiber.Ctx) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	tasks, err := h.uc.ListTasks(userID, c.Query("job_id"))
	if err != nil {
		return respondError(c, err, "failed to list tasks")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get tasks",
		Data:    tasks,
	})
}

func (h *TaskHandler) Get(c *fiber.Ctx) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	task, err := h.uc.GetTask(userID, c.Params("id"))
	if err != nil {
		return respondError(c, err, "failed to get task")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get task",
		Data:    task,
	})
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	var req dto.TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	task, err := h.uc.UpdateTask(userID, c.Params("id"), req)
	if err != nil {
		return respondError(c, err, "failed to update task")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success update task",
		Data:    task,
	})
}

func (h *TaskHandler) ToggleComplete(c *fiber.Ctx) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	task, err := h.uc.ToggleComplete(userID, c.Params("id"))
	if err != nil {
		return respondError(c, err, "failed to toggle task")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success toggle task",
		Data:    task,
	})
}

func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	if err := h.uc.DeleteTask(userID, c.Params("id")); err != nil {
		return respondError(c, err, "failed to delete task")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success delete task",
	})
}
