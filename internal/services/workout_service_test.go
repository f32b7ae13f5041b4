package services

import (
	"context"
	"testing"
	"time"

	"github.com/Esther-Sonia/Fitflex-tracker-app/internal/models"
	"github.com/Esther-Sonia/Fitflex-tracker-app/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWorkoutStore struct {
	getResult    *models.Workout
	getErr       error
	listResult   []models.Workout
	listErr      error
	entries      map[int64][]models.WorkoutEntry
	deleteResult *models.Workout
	deleteErr    error
	calls        int
}

func (s *stubWorkoutStore) GetByIDForUser(_ context.Context, _, _ int64) (*models.Workout, error) {
	s.calls++
	return s.getResult, s.getErr
}

func (s *stubWorkoutStore) ListByUserID(_ context.Context, _ int64) ([]models.Workout, error) {
	s.calls++
	return s.listResult, s.listErr
}

func (s *stubWorkoutStore) ListEntries(_ context.Context, workoutID int64) ([]models.WorkoutEntry, error) {
	s.calls++
	return s.entries[workoutID], nil
}

func (s *stubWorkoutStore) Delete(_ context.Context, _, _ int64) (*models.Workout, error) {
	s.calls++
	return s.deleteResult, s.deleteErr
}

func workoutDate(t *testing.T) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", "2026-08-01")
	require.NoError(t, err)
	return date
}

func TestCreateRejectsNonPositiveDurationBeforePersisting(t *testing.T) {
	store := &stubWorkoutStore{}
	// nil pool: a validation failure must never reach the database
	service := NewWorkoutService(nil, store)

	_, err := service.Create(context.Background(), 1, WorkoutInput{
		Name: "Leg day",
		Date: workoutDate(t),
		Entries: []repository.WorkoutEntryInput{
			{ExerciseID: 1, Duration: 10},
			{ExerciseID: 2, Duration: 0},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, store.calls)
}

func TestCreateRejectsMissingName(t *testing.T) {
	service := NewWorkoutService(nil, &stubWorkoutStore{})

	_, err := service.Create(context.Background(), 1, WorkoutInput{
		Name:    "   ",
		Date:    workoutDate(t),
		Entries: []repository.WorkoutEntryInput{{ExerciseID: 1, Duration: 10}},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateRejectsNonPositiveDurationBeforePersisting(t *testing.T) {
	store := &stubWorkoutStore{}
	service := NewWorkoutService(nil, store)

	_, err := service.Update(context.Background(), 5, 1, WorkoutInput{
		Name:    "Leg day",
		Date:    workoutDate(t),
		Entries: []repository.WorkoutEntryInput{{ExerciseID: 1, Duration: -3}},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, store.calls)
}

func TestListForUserSumsDurations(t *testing.T) {
	store := &stubWorkoutStore{
		listResult: []models.Workout{
			{ID: 7, UserID: 1, Name: "Full body", Date: workoutDate(t)},
		},
		entries: map[int64][]models.WorkoutEntry{
			7: {
				{ExerciseID: 1, Name: "Squats", Duration: 10},
				{ExerciseID: 2, Name: "Push-ups", Duration: 20},
			},
		},
	}
	service := NewWorkoutService(nil, store)

	details, err := service.ListForUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, 30, details[0].TotalDuration)
	assert.Len(t, details[0].Exercises, 2)
}

func TestListForUserEmpty(t *testing.T) {
	service := NewWorkoutService(nil, &stubWorkoutStore{listResult: []models.Workout{}})

	details, err := service.ListForUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, details)
}

func TestGetMapsMissingRowToNotFound(t *testing.T) {
	service := NewWorkoutService(nil, &stubWorkoutStore{getErr: pgx.ErrNoRows})

	_, err := service.Get(context.Background(), 99, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetWithNoEntriesHasZeroTotal(t *testing.T) {
	store := &stubWorkoutStore{
		getResult: &models.Workout{ID: 3, UserID: 1, Name: "Rest day walk", Date: workoutDate(t)},
		entries:   map[int64][]models.WorkoutEntry{},
	}
	service := NewWorkoutService(nil, store)

	detail, err := service.Get(context.Background(), 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, detail.TotalDuration)
	assert.Empty(t, detail.Exercises)
}

func TestDeleteMapsMissingRowToNotFound(t *testing.T) {
	service := NewWorkoutService(nil, &stubWorkoutStore{deleteErr: pgx.ErrNoRows})

	_, err := service.Delete(context.Background(), 99, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
