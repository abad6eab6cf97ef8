// Package login реализует HTTP-обработчик входа пользователя.
//
// Тело запроса совпадает с регистрацией: {mail, password}. При успехе токен
// возвращается текстом в теле и в заголовке Authorization.
package login

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

// Handler обрабатывает HTTP-запросы для авторизации.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис аутентификации
	validate *validator.Validate // Валидатор для проверки входных данных
}

// Service описывает интерфейс бизнес-логики аутентификации.
type Service interface {
	Login(ctx context.Context, email, password string) (string, error)
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
// @Summary Вход пользователя
// @Description Проверяет email и пароль и выдаёт JWT. Токен возвращается текстом и в заголовке Authorization.
// @Tags Auth
// @Accept  json
// @Produce  plain
// @Param request body models.UserRequest true "Учетные данные пользователя"
// @Success 200 {string} string "JWT"
// @Header 200 {string} Authorization "JWT"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 401 "Неверные учетные данные"
// @Router /login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

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

	token, err := h.service.Login(r.Context(), req.Mail, req.Password)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	log.Info("login success")
	w.Header().Set("Authorization", token)
	render.PlainText(w, r, token)
}
