// Package register реализует HTTP-обработчик регистрации пользователя.
package register

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/postit/internal/http/response"
	"github.com/magabrotheeeer/postit/internal/models"
)

// Handler обрабатывает POST /users.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает регистрацию пользователя.
type Service interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: response.NewValidator(),
	}
}

// ServeHTTP godoc
// @Summary Регистрация пользователя
// @Description Создаёт пользователя с email и паролем. Все нарушения валидации возвращаются вместе.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body models.UserRequest true "Email и пароль"
// @Success 201 {object} models.UserResponse
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации или email уже занят"
// @Router /users [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.UserRequest
	if !response.DecodeJSON(w, r, log, &req) {
		return
	}
	if !response.Validate(w, r, log, h.validate, req) {
		return
	}

	user, err := h.service.Register(r.Context(), req.Mail, req.Password)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	log.Info("user registered", slog.Int("user_id", user.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, models.UserResponse{Mail: user.Email})
}
