package auth

import (
	"stocktake/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for authentication.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the auth routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/login", h.HandleLogin)
}

type loginRequest struct {
	Username string `json:"username"`
	PIN      string `json:"pin"`
}

// HandleLogin validates credentials and returns a session token.
// @Summary Login
// @Description Validates a username/PIN pair against the employee directory.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body auth.loginRequest true "Credentials"
// @Success 200 {object} auth.LoginResult "Login result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/login [post]
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.Username == "" || req.PIN == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "username and pin are required",
		})
	}

	result, err := h.service.Login(c.Context(), req.Username, req.PIN)
	if err != nil {
		l.Error("Login failed", zap.String("user", req.Username), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}
