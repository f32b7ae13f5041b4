package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Esther-Sonia/Fitflex-tracker-app/internal/models"
	"github.com/gofiber/fiber/v2"
)

type stubCatalogService struct {
	seedResult   int
	seedErr      error
	listResult   []models.Exercise
	listErr      error
	deleteResult int64
	deleteErr    error
}

func (s *stubCatalogService) SeedDefaults(_ context.Context) (int, error) {
	return s.seedResult, s.seedErr
}

func (s *stubCatalogService) ListAll(_ context.Context) ([]models.Exercise, error) {
	return s.listResult, s.listErr
}

func (s *stubCatalogService) DeleteAll(_ context.Context) (int64, error) {
	return s.deleteResult, s.deleteErr
}

func newExerciseTestApp(service catalogApplicationService) *fiber.App {
	handler := NewExerciseHandler(service)

	app := fiber.New()
	app.Get("/exercises", handler.ListExercises)
	app.Post("/seed-exercises", handler.SeedExercises)
	app.Delete("/exercises/delete-all", handler.DeleteAllExercises)
	return app
}

func TestSeedExercisesReportsCount(t *testing.T) {
	app := newExerciseTestApp(&stubCatalogService{seedResult: 26})

	req := httptest.NewRequest(http.MethodPost, "/seed-exercises", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, resp, &body)
	if body.Message != "26 exercises seeded." {
		t.Errorf("Expected seed message, got %q", body.Message)
	}
}

func TestDeleteAllExercisesReportsCount(t *testing.T) {
	app := newExerciseTestApp(&stubCatalogService{deleteResult: 26})

	req := httptest.NewRequest(http.MethodDelete, "/exercises/delete-all", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, resp, &body)
	if body.Message != "26 exercises deleted." {
		t.Errorf("Expected delete message, got %q", body.Message)
	}
}

func TestListExercises(t *testing.T) {
	app := newExerciseTestApp(&stubCatalogService{
		listResult: []models.Exercise{
			{ID: 1, Name: "Squats", Category: "Strength", Description: "Lower body strength"},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/exercises", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var body []models.Exercise
	decodeBody(t, resp, &body)
	if len(body) != 1 || body[0].Name != "Squats" {
		t.Errorf("Expected one squats entry, got %+v", body)
	}
}
