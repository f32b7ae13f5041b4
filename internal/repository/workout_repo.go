package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Esther-Sonia/Fitflex-tracker-app/internal/models"
	"github.com/jackc/pgx/v5"
)

type CreateWorkoutInput struct {
	UserID int64
	Name   string
	Date   time.Time
}

type WorkoutEntryInput struct {
	ExerciseID int64
	Duration   int
}

type WorkoutRepository struct {
	db DBTX
}

func NewWorkoutRepository(db DBTX) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

func (r *WorkoutRepository) Create(ctx context.Context, input CreateWorkoutInput) (*models.Workout, error) {
	query := `
		INSERT INTO workouts (user_id, name, date)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, name, date
	`
	var workout models.Workout
	err := r.db.QueryRow(ctx, query, input.UserID, input.Name, input.Date).Scan(
		&workout.ID,
		&workout.UserID,
		&workout.Name,
		&workout.Date,
	)
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *WorkoutRepository) InsertEntries(ctx context.Context, workoutID int64, entries []WorkoutEntryInput) error {
	query := `
		INSERT INTO workout_exercises (workout_id, exercise_id, duration)
		VALUES ($1, $2, $3)
	`
	for _, entry := range entries {
		if _, err := r.db.Exec(ctx, query, workoutID, entry.ExerciseID, entry.Duration); err != nil {
			return err
		}
	}
	return nil
}

// GetByIDForUser filters by owner, so a workout owned by someone else is
// indistinguishable from a missing one.
func (r *WorkoutRepository) GetByIDForUser(ctx context.Context, workoutID, userID int64) (*models.Workout, error) {
	query := `
		SELECT id, user_id, name, date
		FROM workouts
		WHERE id = $1 AND user_id = $2
	`
	var workout models.Workout
	err := r.db.QueryRow(ctx, query, workoutID, userID).Scan(
		&workout.ID,
		&workout.UserID,
		&workout.Name,
		&workout.Date,
	)
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *WorkoutRepository) ListByUserID(ctx context.Context, userID int64) ([]models.Workout, error) {
	query := `
		SELECT id, user_id, name, date
		FROM workouts
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := make([]models.Workout, 0)
	for rows.Next() {
		var workout models.Workout
		if err := rows.Scan(
			&workout.ID,
			&workout.UserID,
			&workout.Name,
			&workout.Date,
		); err != nil {
			return nil, err
		}
		workouts = append(workouts, workout)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workouts, nil
}

func (r *WorkoutRepository) ListEntries(ctx context.Context, workoutID int64) ([]models.WorkoutEntry, error) {
	query := `
		SELECT we.exercise_id, e.name, we.duration
		FROM workout_exercises we
		JOIN exercises e ON e.id = we.exercise_id
		WHERE we.workout_id = $1
		ORDER BY we.id
	`
	rows, err := r.db.Query(ctx, query, workoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.WorkoutEntry, 0)
	for rows.Next() {
		var entry models.WorkoutEntry
		if err := rows.Scan(&entry.ExerciseID, &entry.Name, &entry.Duration); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *WorkoutRepository) Update(ctx context.Context, workoutID, userID int64, name string, date time.Time) (int64, error) {
	query := `
		UPDATE workouts
		SET name = $1, date = $2
		WHERE id = $3 AND user_id = $4
	`
	tag, err := r.db.Exec(ctx, query, name, date, workoutID, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *WorkoutRepository) DeleteEntries(ctx context.Context, workoutID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM workout_exercises WHERE workout_id = $1`, workoutID)
	return err
}

// Delete removes the workout; workout_exercises rows go with it via the
// ON DELETE CASCADE constraint.
func (r *WorkoutRepository) Delete(ctx context.Context, workoutID, userID int64) (*models.Workout, error) {
	query := `
		DELETE FROM workouts
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, name, date
	`
	var workout models.Workout
	err := r.db.QueryRow(ctx, query, workoutID, userID).Scan(
		&workout.ID,
		&workout.UserID,
		&workout.Name,
		&workout.Date,
	)
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *WorkoutRepository) StatsForUser(ctx context.Context, userID int64) (*models.DashboardStats, error) {
	query := `
		SELECT COUNT(DISTINCT w.id), COUNT(we.id), COALESCE(SUM(we.duration), 0)
		FROM workouts w
		LEFT JOIN workout_exercises we ON we.workout_id = w.id
		WHERE w.user_id = $1
	`
	var stats models.DashboardStats
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&stats.TotalWorkouts,
		&stats.TotalExercises,
		&stats.TotalTimeSpentMinutes,
	)
	if err != nil {
		return nil, err
	}

	latestQuery := `
		SELECT name, date
		FROM workouts
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
		LIMIT 1
	`
	var latest models.LatestWorkout
	err = r.db.QueryRow(ctx, latestQuery, userID).Scan(&latest.Name, &latest.Date)
	switch {
	case err == nil:
		stats.LatestWorkout = &latest
	case errors.Is(err, pgx.ErrNoRows):
		// no workouts yet
	default:
		return nil, err
	}

	return &stats, nil
}
