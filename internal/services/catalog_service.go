package services

import (
	"context"

	"github.com/Esther-Sonia/Fitflex-tracker-app/internal/models"
)

// defaultExercises is the reference catalog seeded by /seed-exercises.
var defaultExercises = []models.Exercise{
	{Name: "Squats", Category: "Strength", Description: "Lower body strength"},
	{Name: "Push-ups", Category: "Strength", Description: "Upper body strength"},
	{Name: "Jumping Jacks", Category: "Cardio", Description: "Full-body cardio warm-up"},
	{Name: "Plank", Category: "Core", Description: "Core stability"},
	{Name: "Dumbbell Rows", Category: "Strength", Description: "Back and biceps strength"},
	{Name: "Lunges", Category: "Strength", Description: "Leg strength and balance"},
	{Name: "Leg Press", Category: "Strength", Description: "Lower body machine workout"},
	{Name: "Deadlifts", Category: "Strength", Description: "Full body power exercise"},
	{Name: "Calf Raises", Category: "Strength", Description: "Calf muscle isolation"},
	{Name: "Bench Press", Category: "Strength", Description: "Chest and triceps strength"},
	{Name: "Shoulder Press", Category: "Strength", Description: "Deltoid and triceps focus"},
	{Name: "Pull-ups", Category: "Strength", Description: "Back and arm strength"},
	{Name: "Bicep Curls", Category: "Strength", Description: "Bicep isolation exercise"},
	{Name: "Tricep Dips", Category: "Strength", Description: "Triceps bodyweight exercise"},
	{Name: "Sit-ups", Category: "Core", Description: "Abdominal exercise"},
	{Name: "Russian Twists", Category: "Core", Description: "Oblique exercise"},
	{Name: "Leg Raises", Category: "Core", Description: "Lower ab exercise"},
	{Name: "Bicycle Crunches", Category: "Core", Description: "Dynamic core workout"},
	{Name: "Burpees", Category: "HIIT", Description: "Full body explosive move"},
	{Name: "Mountain Climbers", Category: "HIIT", Description: "Cardio and core activation"},
	{Name: "Jump Squats", Category: "HIIT", Description: "Explosive lower body"},
	{Name: "High Knees", Category: "HIIT", Description: "Cardio burst exercise"},
	{Name: "Jump Rope", Category: "Cardio", Description: "Cardio endurance workout"},
	{Name: "Running (Treadmill)", Category: "Cardio", Description: "Endurance training"},
	{Name: "Rowing Machine", Category: "Cardio", Description: "Full body cardio machine"},
	{Name: "Cycling", Category: "Cardio", Description: "Lower body cardio endurance"},
}

type exerciseStore interface {
	Create(ctx context.Context, exercise *models.Exercise) error
	ExistsByName(ctx context.Context, name string) (bool, error)
	ListAll(ctx context.Context) ([]models.Exercise, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type CatalogService struct {
	exerciseRepo exerciseStore
}

func NewCatalogService(exerciseRepo exerciseStore) *CatalogService {
	return &CatalogService{exerciseRepo: exerciseRepo}
}

// SeedDefaults inserts every default exercise whose name is not already
// present (case-insensitive). Repeated calls add nothing.
func (s *CatalogService) SeedDefaults(ctx context.Context) (int, error) {
	added := 0
	for _, exercise := range defaultExercises {
		exists, err := s.exerciseRepo.ExistsByName(ctx, exercise.Name)
		if err != nil {
			return added, err
		}
		if exists {
			continue
		}
		if err := s.exerciseRepo.Create(ctx, &exercise); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

func (s *CatalogService) ListAll(ctx context.Context) ([]models.Exercise, error) {
	return s.exerciseRepo.ListAll(ctx)
}

func (s *CatalogService) DeleteAll(ctx context.Context) (int64, error) {
	return s.exerciseRepo.DeleteAll(ctx)
}
