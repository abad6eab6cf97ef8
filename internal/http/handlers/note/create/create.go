// Package create реализует HTTP-обработчик создания заметки.
//
// Владельцем заметки становится пользователь запроса; поля title и content
// обязательны, но могут быть пустыми строками.
package create

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/postit/internal/http/middlewarectx"
	"github.com/magabrotheeeer/postit/internal/http/response"
	"github.com/magabrotheeeer/postit/internal/models"
)

// Handler обрабатывает POST /notes.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис заметок
	validate *validator.Validate // Валидатор тела запроса
}

// Service описывает интерфейс бизнес-логики создания заметки.
type Service interface {
	Create(ctx context.Context, identity *models.Identity, title, content string) (*models.Note, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: response.NewValidator(),
	}
}

// ServeHTTP godoc
// @Summary Создание заметки
// @Tags Notes
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.NoteRequest true "Заголовок и текст"
// @Success 201 {object} models.NoteResponse
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 401 "Требуется авторизация"
// @Router /notes [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.note.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	identity, ok := middlewarectx.IdentityFrom(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req models.NoteRequest
	if !response.DecodeJSON(w, r, log, &req) {
		return
	}
	if !response.Validate(w, r, log, h.validate, req) {
		return
	}

	note, err := h.service.Create(r.Context(), identity, *req.Title, *req.Content)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	log.Info("note created", slog.Int("id", note.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, note.ToResponse())
}
