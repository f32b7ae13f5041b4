package models

import "time"

type Workout struct {
	ID     int64     `json:"id"`
	UserID int64     `json:"user_id"`
	Name   string    `json:"name"`
	Date   time.Time `json:"date"`
}

type WorkoutExercise struct {
	ID         int64 `json:"id"`
	WorkoutID  int64 `json:"workout_id"`
	ExerciseID int64 `json:"exercise_id"`
	Duration   int   `json:"duration"`
}

// WorkoutEntry is a workout exercise with its catalog name resolved.
type WorkoutEntry struct {
	ExerciseID int64  `json:"exercise_id"`
	Name       string `json:"name"`
	Duration   int    `json:"duration"`
}

// WorkoutDetail is a workout with its entries and the derived total
// duration. TotalDuration is always the sum of the entry durations,
// never stored.
type WorkoutDetail struct {
	Workout
	Exercises     []WorkoutEntry `json:"exercises"`
	TotalDuration int            `json:"total_duration"`
}
