package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/Esther-Sonia/Fitflex-tracker-app/internal/models"
	"github.com/Esther-Sonia/Fitflex-tracker-app/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type authApplicationService interface {
	Register(ctx context.Context, input services.RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.LoginResult, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, newPassword string) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type AuthHandler struct {
	service  authApplicationService
	validate *validator.Validate
}

func NewAuthHandler(service authApplicationService) *AuthHandler {
	return &AuthHandler{
		service:  service,
		validate: validator.New(),
	}
}

type registerRequest struct {
	Username string  `json:"username" validate:"required,min=3"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Age      int     `json:"age" validate:"required,gt=0"`
	Weight   float64 `json:"weight" validate:"required,gt=0"`
	Gender   string  `json:"gender" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type resetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordData struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).
			JSON(fiber.Map{"detail": "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).
			JSON(fiber.Map{"detail": validationDetail(err)})
	}

	user, err := h.service.Register(c.Context(), services.RegisterInput{
		Username: req.Username,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: req.Password,
		Age:      req.Age,
		Weight:   req.Weight,
		Gender:   req.Gender,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateEmail):
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"detail": "Email already registered"})
		case errors.Is(err, services.ErrDuplicateUsername):
			return c.Status(fiber.StatusConflict).
				JSON(fiber.Map{"detail": "Username already taken"})
		case errors.Is(err, services.ErrInvalidInput):
			return c.Status(fiber.StatusUnprocessableEntity).
				JSON(fiber.Map{"detail": "Invalid registration data"})
		default:
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"detail": "Failed to register user"})
		}
	}

	return c.JSON(user)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).
			JSON(fiber.Map{"detail": "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).
			JSON(fiber.Map{"detail": validationDetail(err)})
	}

	result, err := h.service.Login(c.Context(), strings.ToLower(strings.TrimSpace(req.Email)), req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"detail": "Invalid credentials"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Failed to log in"})
	}

	return c.JSON(fiber.Map{
		"access_token": result.AccessToken,
		"token_type":   "bearer",
		"username":     result.Username,
	})
}

func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).
			JSON(fiber.Map{"detail": "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).
			JSON(fiber.Map{"detail": validationDetail(err)})
	}

	if err := h.service.RequestPasswordReset(c.Context(), strings.ToLower(strings.TrimSpace(req.Email))); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"detail": "Email not registered"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Failed to process reset request"})
	}

	return c.JSON(fiber.Map{"message": "Password reset instructions sent to your email."})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req resetPasswordData
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).
			JSON(fiber.Map{"detail": "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).
			JSON(fiber.Map{"detail": validationDetail(err)})
	}

	err := h.service.ResetPassword(c.Context(), strings.ToLower(strings.TrimSpace(req.Email)), req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"detail": "Email not registered"})
		case errors.Is(err, services.ErrInvalidInput):
			return c.Status(fiber.StatusUnprocessableEntity).
				JSON(fiber.Map{"detail": "Invalid reset data"})
		default:
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"detail": "Failed to reset password"})
		}
	}

	return c.JSON(fiber.Map{"message": "Password reset successful."})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	username, ok := c.Locals("username").(string)
	if !ok || username == "" {
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"detail": "Could not validate credentials"})
	}

	user, err := h.service.GetByUsername(c.Context(), username)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"detail": "Could not validate credentials"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Failed to fetch user"})
	}

	return c.JSON(user)
}
