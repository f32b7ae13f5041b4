package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Esther-Sonia/Fitflex-tracker-app/internal/models"
	"github.com/Esther-Sonia/Fitflex-tracker-app/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrUnknownExercise = errors.New("unknown exercise")

type workoutStore interface {
	GetByIDForUser(ctx context.Context, workoutID, userID int64) (*models.Workout, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.Workout, error)
	ListEntries(ctx context.Context, workoutID int64) ([]models.WorkoutEntry, error)
	Delete(ctx context.Context, workoutID, userID int64) (*models.Workout, error)
}

type WorkoutService struct {
	db          *pgxpool.Pool
	workoutRepo workoutStore
}

func NewWorkoutService(db *pgxpool.Pool, workoutRepo workoutStore) *WorkoutService {
	return &WorkoutService{db: db, workoutRepo: workoutRepo}
}

type WorkoutInput struct {
	Name    string
	Date    time.Time
	Entries []repository.WorkoutEntryInput
}

func validateWorkoutInput(input WorkoutInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrInvalidInput
	}
	for _, entry := range input.Entries {
		if entry.ExerciseID <= 0 || entry.Duration <= 0 {
			return ErrInvalidInput
		}
	}
	return nil
}

// Create validates every entry before touching the store, then writes the
// workout and its entries in one transaction.
func (s *WorkoutService) Create(ctx context.Context, userID int64, input WorkoutInput) (*models.WorkoutDetail, error) {
	if err := validateWorkoutInput(input); err != nil {
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	txRepo := repository.NewWorkoutRepository(tx)
	workout, err := txRepo.Create(ctx, repository.CreateWorkoutInput{
		UserID: userID,
		Name:   strings.TrimSpace(input.Name),
		Date:   input.Date,
	})
	if err != nil {
		return nil, err
	}

	if err := txRepo.InsertEntries(ctx, workout.ID, input.Entries); err != nil {
		return nil, mapEntryError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return s.buildDetail(ctx, workout)
}

func (s *WorkoutService) ListForUser(ctx context.Context, userID int64) ([]models.WorkoutDetail, error) {
	workouts, err := s.workoutRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	details := make([]models.WorkoutDetail, 0, len(workouts))
	for _, workout := range workouts {
		detail, err := s.buildDetail(ctx, &workout)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

func (s *WorkoutService) Get(ctx context.Context, workoutID, userID int64) (*models.WorkoutDetail, error) {
	workout, err := s.workoutRepo.GetByIDForUser(ctx, workoutID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.buildDetail(ctx, workout)
}

// Update replaces name and date, drops every existing entry and inserts
// the new set, all in one transaction. Entries are never diffed.
func (s *WorkoutService) Update(ctx context.Context, workoutID, userID int64, input WorkoutInput) (*models.WorkoutDetail, error) {
	if err := validateWorkoutInput(input); err != nil {
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	txRepo := repository.NewWorkoutRepository(tx)
	rows, err := txRepo.Update(ctx, workoutID, userID, strings.TrimSpace(input.Name), input.Date)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrNotFound
	}

	if err := txRepo.DeleteEntries(ctx, workoutID); err != nil {
		return nil, err
	}
	if err := txRepo.InsertEntries(ctx, workoutID, input.Entries); err != nil {
		return nil, mapEntryError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return s.Get(ctx, workoutID, userID)
}

func (s *WorkoutService) Delete(ctx context.Context, workoutID, userID int64) (*models.Workout, error) {
	workout, err := s.workoutRepo.Delete(ctx, workoutID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return workout, nil
}

func (s *WorkoutService) buildDetail(ctx context.Context, workout *models.Workout) (*models.WorkoutDetail, error) {
	entries, err := s.workoutRepo.ListEntries(ctx, workout.ID)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, entry := range entries {
		total += entry.Duration
	}

	return &models.WorkoutDetail{
		Workout:       *workout,
		Exercises:     entries,
		TotalDuration: total,
	}, nil
}

// mapEntryError turns a foreign-key violation on exercise_id into a
// caller error instead of a 5xx.
func mapEntryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return ErrUnknownExercise
	}
	return err
}
