package handler

import (
	"github.com/fadilmartias/job-tracker/internal/usecase"
	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/gofiber/fiber/v2"
)

type AnalyticsHandler struct {
	uc *usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(uc *usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func (h *AnalyticsHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/analytics/summary", h.Summary)
}

func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	summary, err := h.uc.GetSummary(userID)
	if err != nil {
		return respondError(c, err, "failed to compute analytics")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get analytics summary",
		Data:    summary,
	})
}
