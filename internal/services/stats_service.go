package services

import (
	"context"

	"github.com/Esther-Sonia/Fitflex-tracker-app/internal/models"
)

type statsStore interface {
	StatsForUser(ctx context.Context, userID int64) (*models.DashboardStats, error)
}

type StatsService struct {
	workoutRepo statsStore
}

func NewStatsService(workoutRepo statsStore) *StatsService {
	return &StatsService{workoutRepo: workoutRepo}
}

func (s *StatsService) Stats(ctx context.Context, userID int64) (*models.DashboardStats, error) {
	return s.workoutRepo.StatsForUser(ctx, userID)
}
