package repository

import (
	"context"

	"github.com/Esther-Sonia/Fitflex-tracker-app/internal/models"
)

type ExerciseRepository struct {
	db DBTX
}

func NewExerciseRepository(db DBTX) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) Create(ctx context.Context, exercise *models.Exercise) error {
	query := `
		INSERT INTO exercises (name, category, description)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query, exercise.Name, exercise.Category, exercise.Description).
		Scan(&exercise.ID)
}

// ExistsByName matches case-insensitively, mirroring the catalog's
// uniqueness rule.
func (r *ExerciseRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM exercises WHERE LOWER(name) = LOWER($1)
		)
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *ExerciseRepository) ListAll(ctx context.Context) ([]models.Exercise, error) {
	query := `
		SELECT id, name, category, description
		FROM exercises
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]models.Exercise, 0)
	for rows.Next() {
		var exercise models.Exercise
		if err := rows.Scan(
			&exercise.ID,
			&exercise.Name,
			&exercise.Category,
			&exercise.Description,
		); err != nil {
			return nil, err
		}
		exercises = append(exercises, exercise)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}

func (r *ExerciseRepository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM exercises`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
