package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"yugayatra/internship-portal/internal/models"
	"yugayatra/internship-portal/internal/repositories"
	"yugayatra/internship-portal/internal/services"
)

// AnalysisHandler exposes the operational surface of the analysis queue to
// admin tooling. Applicant-facing routes live elsewhere.
type AnalysisHandler struct {
	queue services.AnalysisQueue
}

func NewAnalysisHandler(queue services.AnalysisQueue) *AnalysisHandler {
	return &AnalysisHandler{
		queue: queue,
	}
}

// HandleQueueStatus handles GET /analysis/queue/status
func (h *AnalysisHandler) HandleQueueStatus(c *fiber.Ctx) error {
	status := h.queue.GetStatus()

	return c.JSON(models.QueueStatusResponse{
		QueueLength: status.QueueLength,
		Processing:  status.Processing,
		IsRunning:   status.IsRunning,
	})
}

// HandleAnalysisStatus handles GET /analysis/:id/status
func (h *AnalysisHandler) HandleAnalysisStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "application id is required",
		})
	}

	status, err := h.queue.GetAnalysisStatus(id)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Application not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read analysis status",
		})
	}

	return c.JSON(models.AnalysisStatusResponse{
		ID:     id,
		Status: string(status),
	})
}

// HandleRetrigger handles POST /analysis/:id/retrigger
func (h *AnalysisHandler) HandleRetrigger(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "application id is required",
		})
	}

	if err := h.queue.RetriggerAnalysis(id); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Application not found or no resume uploaded",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to re-trigger analysis",
		})
	}

	return c.Status(fiber.StatusAccepted).JSON(models.RetriggerResponse{
		ID:      id,
		Message: "Analysis re-queued",
	})
}
