package models

import "time"

type LatestWorkout struct {
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}

type DashboardStats struct {
	TotalWorkouts         int64          `json:"total_workouts"`
	TotalExercises        int64          `json:"total_exercises"`
	TotalTimeSpentMinutes int64          `json:"total_time_spent_minutes"`
	LatestWorkout         *LatestWorkout `json:"latest_workout"`
}
