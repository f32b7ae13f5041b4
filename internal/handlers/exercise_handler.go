package handlers

import (
	"context"
	"fmt"

	"github.com/Esther-Sonia/Fitflex-tracker-app/internal/models"
	"github.com/gofiber/fiber/v2"
)

type catalogApplicationService interface {
	SeedDefaults(ctx context.Context) (int, error)
	ListAll(ctx context.Context) ([]models.Exercise, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type ExerciseHandler struct {
	service catalogApplicationService
}

func NewExerciseHandler(service catalogApplicationService) *ExerciseHandler {
	return &ExerciseHandler{service: service}
}

func (h *ExerciseHandler) ListExercises(c *fiber.Ctx) error {
	exercises, err := h.service.ListAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Failed to list exercises"})
	}
	return c.JSON(exercises)
}

func (h *ExerciseHandler) SeedExercises(c *fiber.Ctx) error {
	added, err := h.service.SeedDefaults(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Failed to seed exercises"})
	}
	return c.JSON(fiber.Map{"message": fmt.Sprintf("%d exercises seeded.", added)})
}

func (h *ExerciseHandler) DeleteAllExercises(c *fiber.Ctx) error {
	deleted, err := h.service.DeleteAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Failed to delete exercises"})
	}
	return c.JSON(fiber.Map{"message": fmt.Sprintf("%d exercises deleted.", deleted)})
}
