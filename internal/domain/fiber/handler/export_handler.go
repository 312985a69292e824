package handler

import (
	"fmt"
	"time"

	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/middleware"
	"github.com/fadilmartias/job-tracker/internal/usecase"
	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ExportHandler struct {
	exportUC    *usecase.ExportUsecase
	scheduledUC *usecase.ScheduledExportUsecase
}

func NewExportHandler(exportUC *usecase.ExportUsecase, scheduledUC *usecase.ScheduledExportUsecase) *ExportHandler {
	return &ExportHandler{exportUC: exportUC, scheduledUC: scheduledUC}
}

func (h *ExportHandler) RegisterRoutes(app *fiber.App) {
	// exports walk the whole job table, keep them on a tighter limit
	app.Post("/exports", middleware.RateLimiter(10, 1*time.Minute), h.Export)
	app.Post("/scheduled-exports", h.CreateScheduled)
	app.Get("/scheduled-exports", h.ListScheduled)
	app.Delete("/scheduled-exports/:id", h.DeleteScheduled)
}

// Export renders the filtered applications and returns them as a file
// download with the matching MIME type.
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	var req dto.ExportRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	opts, err := usecase.BuildExportOptions(req)
	if err != nil {
		return respondError(c, err, "failed to build export options")
	}
	result, err := h.exportUC.Export(userID, opts)
	if err != nil {
		return respondError(c, err, "failed to export data")
	}

	c.Set(fiber.HeaderContentType, result.MIMEType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", result.FileName))
	return c.SendString(result.Content)
}

func (h *ExportHandler) CreateScheduled(c *fiber.Ctx) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	var req dto.ScheduledExportRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	cfg, err := h.scheduledUC.Create(userID, req)
	if err != nil {
		return respondError(c, err, "failed to create scheduled export")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create scheduled export",
		Data:    cfg,
	})
}

func (h *ExportHandler) ListScheduled(c *fiber.Ctx) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	configs, err := h.scheduledUC.List(userID)
	if err != nil {
		return respondError(c, err, "failed to list scheduled exports")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get scheduled exports",
		Data:    configs,
	})
}

func (h *ExportHandler) DeleteScheduled(c *fiber.Ctx) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid scheduled export id",
		}, err)
	}
	if err := h.scheduledUC.Delete(userID, id); err != nil {
		return respondError(c, err, "failed to delete scheduled export")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success delete scheduled export",
	})
}
