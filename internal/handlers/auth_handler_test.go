package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Esther-Sonia/Fitflex-tracker-app/internal/models"
	"github.com/Esther-Sonia/Fitflex-tracker-app/internal/services"
	"github.com/gofiber/fiber/v2"
)

type stubAuthService struct {
	registerResult *models.User
	registerErr    error
	loginResult    *services.LoginResult
	loginErr       error
	resetReqErr    error
	resetErr       error
	userResult     *models.User
	userErr        error
	lastInput      services.RegisterInput
	lastEmail      string
}

func (s *stubAuthService) Register(_ context.Context, input services.RegisterInput) (*models.User, error) {
	s.lastInput = input
	return s.registerResult, s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (*services.LoginResult, error) {
	s.lastEmail = email
	return s.loginResult, s.loginErr
}

func (s *stubAuthService) RequestPasswordReset(_ context.Context, email string) error {
	s.lastEmail = email
	return s.resetReqErr
}

func (s *stubAuthService) ResetPassword(_ context.Context, email, _ string) error {
	s.lastEmail = email
	return s.resetErr
}

func (s *stubAuthService) GetByUsername(_ context.Context, _ string) (*models.User, error) {
	return s.userResult, s.userErr
}

func newAuthTestApp(service authApplicationService) *fiber.App {
	handler := NewAuthHandler(service)

	app := fiber.New()
	app.Post("/register", handler.Register)
	app.Post("/login", handler.Login)
	app.Post("/reset-password-request", handler.RequestPasswordReset)
	app.Post("/reset-password", handler.ResetPassword)
	app.Get("/me", func(c *fiber.Ctx) error {
		c.Locals("username", "sonia")
		return c.Next()
	}, handler.Me)
	return app
}

func TestRegisterDuplicateEmailIs400(t *testing.T) {
	service := &stubAuthService{registerErr: services.ErrDuplicateEmail}
	app := newAuthTestApp(service)

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{
		"username": "sonia",
		"email": "sonia@example.com",
		"password": "hunter22",
		"age": 28,
		"weight": 63.5,
		"gender": "female"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", resp.StatusCode)
	}

	var body struct {
		Detail string `json:"detail"`
	}
	decodeBody(t, resp, &body)
	if body.Detail != "Email already registered" {
		t.Errorf("Expected duplicate email detail, got %q", body.Detail)
	}
}

func TestRegisterInvalidEmailIs422(t *testing.T) {
	service := &stubAuthService{}
	app := newAuthTestApp(service)

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{
		"username": "sonia",
		"email": "not-an-email",
		"password": "hunter22",
		"age": 28,
		"weight": 63.5,
		"gender": "female"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("Expected status 422, got %d", resp.StatusCode)
	}
}

func TestRegisterOmitsPasswordHash(t *testing.T) {
	service := &stubAuthService{
		registerResult: &models.User{
			ID:           1,
			Username:     "sonia",
			Email:        "sonia@example.com",
			PasswordHash: "bcrypt-hash",
			Age:          28,
			Weight:       63.5,
			Gender:       "female",
		},
	}
	app := newAuthTestApp(service)

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{
		"username": "sonia",
		"email": "sonia@example.com",
		"password": "hunter22",
		"age": 28,
		"weight": 63.5,
		"gender": "female"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var body map[string]any
	decodeBody(t, resp, &body)
	if _, leaked := body["password_hash"]; leaked {
		t.Error("Expected password_hash to be omitted from the response")
	}
	if body["username"] != "sonia" {
		t.Errorf("Expected username sonia, got %v", body["username"])
	}
}

func TestLoginReturnsTokenEnvelope(t *testing.T) {
	service := &stubAuthService{
		loginResult: &services.LoginResult{AccessToken: "token-123", Username: "sonia"},
	}
	app := newAuthTestApp(service)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{
		"email": "sonia@example.com",
		"password": "hunter22"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		Username    string `json:"username"`
	}
	decodeBody(t, resp, &body)
	if body.AccessToken != "token-123" || body.TokenType != "bearer" || body.Username != "sonia" {
		t.Errorf("Unexpected login body: %+v", body)
	}
}

func TestLoginBadCredentialsIs401(t *testing.T) {
	service := &stubAuthService{loginErr: services.ErrInvalidCredentials}
	app := newAuthTestApp(service)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{
		"email": "sonia@example.com",
		"password": "wrong"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("Expected status 401, got %d", resp.StatusCode)
	}
}

func TestResetPasswordRequestUnknownEmailIs404(t *testing.T) {
	service := &stubAuthService{resetReqErr: services.ErrNotFound}
	app := newAuthTestApp(service)

	req := httptest.NewRequest(http.MethodPost, "/reset-password-request", strings.NewReader(`{
		"email": "nobody@example.com"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", resp.StatusCode)
	}
}

func TestMeReturnsCurrentUser(t *testing.T) {
	service := &stubAuthService{
		userResult: &models.User{ID: 1, Username: "sonia", Email: "sonia@example.com"},
	}
	app := newAuthTestApp(service)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var body struct {
		Username string `json:"username"`
	}
	decodeBody(t, resp, &body)
	if body.Username != "sonia" {
		t.Errorf("Expected username sonia, got %s", body.Username)
	}
}
