package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/Esther-Sonia/Fitflex-tracker-app/internal/models"
	"github.com/Esther-Sonia/Fitflex-tracker-app/internal/repository"
	"github.com/Esther-Sonia/Fitflex-tracker-app/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type workoutApplicationService interface {
	Create(ctx context.Context, userID int64, input services.WorkoutInput) (*models.WorkoutDetail, error)
	ListForUser(ctx context.Context, userID int64) ([]models.WorkoutDetail, error)
	Get(ctx context.Context, workoutID, userID int64) (*models.WorkoutDetail, error)
	Update(ctx context.Context, workoutID, userID int64, input services.WorkoutInput) (*models.WorkoutDetail, error)
	Delete(ctx context.Context, workoutID, userID int64) (*models.Workout, error)
}

type WorkoutHandler struct {
	service  workoutApplicationService
	validate *validator.Validate
}

func NewWorkoutHandler(service workoutApplicationService) *WorkoutHandler {
	return &WorkoutHandler{
		service:  service,
		validate: validator.New(),
	}
}

type workoutEntryRequest struct {
	ExerciseID int64 `json:"exercise_id" validate:"required,gt=0"`
	Duration   int   `json:"duration" validate:"required,gt=0"`
}

type workoutRequest struct {
	Name      string                `json:"name" validate:"required"`
	Date      string                `json:"date" validate:"required"`
	Exercises []workoutEntryRequest `json:"exercises" validate:"dive"`
}

type workoutEntryResponse struct {
	ExerciseID int64  `json:"exercise_id"`
	Name       string `json:"name"`
	Duration   int    `json:"duration"`
}

type workoutResponse struct {
	ID            int64                  `json:"id"`
	UserID        int64                  `json:"user_id"`
	Name          string                 `json:"name"`
	Date          string                 `json:"date"`
	Exercises     []workoutEntryResponse `json:"exercises"`
	TotalDuration int                    `json:"total_duration"`
}

func (h *WorkoutHandler) CreateWorkout(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"detail": "Could not validate credentials"})
	}

	input, detail := h.parseWorkoutRequest(c)
	if detail != "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": detail})
	}

	workout, err := h.service.Create(c.Context(), userID, input)
	if err != nil {
		return mapWorkoutError(c, err)
	}

	return c.JSON(newWorkoutResponse(workout))
}

func (h *WorkoutHandler) ListWorkouts(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"detail": "Could not validate credentials"})
	}

	workouts, err := h.service.ListForUser(c.Context(), userID)
	if err != nil {
		return mapWorkoutError(c, err)
	}

	responses := make([]*workoutResponse, 0, len(workouts))
	for i := range workouts {
		responses = append(responses, newWorkoutResponse(&workouts[i]))
	}
	return c.JSON(responses)
}

func (h *WorkoutHandler) GetWorkout(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"detail": "Could not validate credentials"})
	}

	workoutID, err := parseWorkoutID(c)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).
			JSON(fiber.Map{"detail": "Workout id must be a positive integer"})
	}

	workout, err := h.service.Get(c.Context(), workoutID, userID)
	if err != nil {
		return mapWorkoutError(c, err)
	}

	return c.JSON(newWorkoutResponse(workout))
}

func (h *WorkoutHandler) UpdateWorkout(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"detail": "Could not validate credentials"})
	}

	workoutID, err := parseWorkoutID(c)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).
			JSON(fiber.Map{"detail": "Workout id must be a positive integer"})
	}

	input, detail := h.parseWorkoutRequest(c)
	if detail != "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": detail})
	}

	workout, err := h.service.Update(c.Context(), workoutID, userID, input)
	if err != nil {
		return mapWorkoutError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":    "Workout updated successfully",
		"workout_id": workout.ID,
	})
}

// DeleteWorkout answers 200 with the removed workout, or a JSON null when
// nothing matched. This endpoint never 404s; clients rely on the null body.
func (h *WorkoutHandler) DeleteWorkout(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"detail": "Could not validate credentials"})
	}

	workoutID, err := parseWorkoutID(c)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).
			JSON(fiber.Map{"detail": "Workout id must be a positive integer"})
	}

	workout, err := h.service.Delete(c.Context(), workoutID, userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.JSON(nil)
		}
		return mapWorkoutError(c, err)
	}

	return c.JSON(workoutResponse{
		ID:        workout.ID,
		UserID:    workout.UserID,
		Name:      workout.Name,
		Date:      workout.Date.Format(dateLayout),
		Exercises: []workoutEntryResponse{},
	})
}

func (h *WorkoutHandler) parseWorkoutRequest(c *fiber.Ctx) (services.WorkoutInput, string) {
	var req workoutRequest
	if err := c.BodyParser(&req); err != nil {
		return services.WorkoutInput{}, "Invalid request body"
	}
	if err := h.validate.Struct(req); err != nil {
		return services.WorkoutInput{}, validationDetail(err)
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return services.WorkoutInput{}, "Date must be in YYYY-MM-DD format"
	}

	entries := make([]repository.WorkoutEntryInput, 0, len(req.Exercises))
	for _, entry := range req.Exercises {
		entries = append(entries, repository.WorkoutEntryInput{
			ExerciseID: entry.ExerciseID,
			Duration:   entry.Duration,
		})
	}

	return services.WorkoutInput{
		Name:    req.Name,
		Date:    date,
		Entries: entries,
	}, ""
}

func parseWorkoutID(c *fiber.Ctx) (int64, error) {
	workoutID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || workoutID <= 0 {
		return 0, strconv.ErrSyntax
	}
	return workoutID, nil
}

func mapWorkoutError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Workout not found"})
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusUnprocessableEntity).
			JSON(fiber.Map{"detail": "Duration must be positive"})
	case errors.Is(err, services.ErrUnknownExercise):
		return c.Status(fiber.StatusUnprocessableEntity).
			JSON(fiber.Map{"detail": "Unknown exercise in workout"})
	default:
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Failed to process workout request"})
	}
}

func newWorkoutResponse(workout *models.WorkoutDetail) *workoutResponse {
	if workout == nil {
		return nil
	}

	entries := make([]workoutEntryResponse, 0, len(workout.Exercises))
	for _, entry := range workout.Exercises {
		entries = append(entries, workoutEntryResponse{
			ExerciseID: entry.ExerciseID,
			Name:       entry.Name,
			Duration:   entry.Duration,
		})
	}

	return &workoutResponse{
		ID:            workout.ID,
		UserID:        workout.UserID,
		Name:          workout.Name,
		Date:          workout.Date.Format(dateLayout),
		Exercises:     entries,
		TotalDuration: workout.TotalDuration,
	}
}
