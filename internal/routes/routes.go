package routes

import (
	"time"

	"github.com/Esther-Sonia/Fitflex-tracker-app/internal/config"
	"github.com/Esther-Sonia/Fitflex-tracker-app/internal/handlers"
	"github.com/Esther-Sonia/Fitflex-tracker-app/internal/middleware"
	"github.com/Esther-Sonia/Fitflex-tracker-app/internal/repository"
	"github.com/Esther-Sonia/Fitflex-tracker-app/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	userRepo := repository.NewUserRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)

	authService := services.NewAuthService(
		userRepo,
		cfg.JWTSecret,
		time.Duration(cfg.TokenExpiryMinutes)*time.Minute,
	)
	catalogService := services.NewCatalogService(exerciseRepo)
	workoutService := services.NewWorkoutService(db, workoutRepo)
	statsService := services.NewStatsService(workoutRepo)

	authHandler := handlers.NewAuthHandler(authService)
	exerciseHandler := handlers.NewExerciseHandler(catalogService)
	workoutHandler := handlers.NewWorkoutHandler(workoutService)
	dashboardHandler := handlers.NewDashboardHandler(statsService)

	authRequired := middleware.AuthRequired(cfg.JWTSecret, userRepo)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": " Welcome to the FitFlex API "})
	})

	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)
	app.Post("/reset-password-request", authHandler.RequestPasswordReset)
	app.Post("/reset-password", authHandler.ResetPassword)
	app.Get("/me", authRequired, authHandler.Me)

	app.Post("/workouts", authRequired, workoutHandler.CreateWorkout)
	app.Get("/workouts", authRequired, workoutHandler.ListWorkouts)
	app.Get("/workouts/:id", authRequired, workoutHandler.GetWorkout)
	app.Put("/workouts/:id", authRequired, workoutHandler.UpdateWorkout)
	app.Delete("/workouts/:id", authRequired, workoutHandler.DeleteWorkout)

	app.Get("/exercises", exerciseHandler.ListExercises)
	app.Post("/seed-exercises", exerciseHandler.SeedExercises)
	app.Delete("/exercises/delete-all", exerciseHandler.DeleteAllExercises)

	app.Get("/dashboard/stats", authRequired, dashboardHandler.GetStats)
}
