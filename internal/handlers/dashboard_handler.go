package handlers

import (
	"context"

	"github.com/Esther-Sonia/Fitflex-tracker-app/internal/models"
	"github.com/gofiber/fiber/v2"
)

type statsApplicationService interface {
	Stats(ctx context.Context, userID int64) (*models.DashboardStats, error)
}

type DashboardHandler struct {
	service statsApplicationService
}

func NewDashboardHandler(service statsApplicationService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

type latestWorkoutResponse struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

type dashboardStatsResponse struct {
	TotalWorkouts         int64                  `json:"total_workouts"`
	TotalExercises        int64                  `json:"total_exercises"`
	TotalTimeSpentMinutes int64                  `json:"total_time_spent_minutes"`
	LatestWorkout         *latestWorkoutResponse `json:"latest_workout"`
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"detail": "Could not validate credentials"})
	}

	stats, err := h.service.Stats(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Failed to compute dashboard stats"})
	}

	response := dashboardStatsResponse{
		TotalWorkouts:         stats.TotalWorkouts,
		TotalExercises:        stats.TotalExercises,
		TotalTimeSpentMinutes: stats.TotalTimeSpentMinutes,
	}
	if stats.LatestWorkout != nil {
		response.LatestWorkout = &latestWorkoutResponse{
			Name: stats.LatestWorkout.Name,
			Date: stats.LatestWorkout.Date.Format(dateLayout),
		}
	}

	return c.JSON(response)
}
