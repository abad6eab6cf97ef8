// Package update реализует HTTP-обработчик изменения заметки.
package update

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/postit/internal/http/middlewarectx"
	"github.com/magabrotheeeer/postit/internal/http/response"
	"github.com/magabrotheeeer/postit/internal/lib/sl"
	"github.com/magabrotheeeer/postit/internal/models"
)

// Handler обрабатывает PUT /notes/{id}.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики изменения заметки.
type Service interface {
	Update(ctx context.Context, identity *models.Identity, id int, title, content string) (*models.Note, error)
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
// @Summary Изменение заметки
// @Description Заменяет заголовок и текст заметки владельца.
// @Tags Notes
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID заметки"
// @Param request body models.NoteRequest true "Новые заголовок и текст"
// @Success 200 {object} models.NoteResponse
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 401 "Требуется авторизация"
// @Failure 404 "Заметка не найдена"
// @Router /notes/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.note.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	identity, ok := middlewarectx.IdentityFrom(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Info("failed to decode id from url", sl.Err(err))
		response.BadRequest(w, r, response.FieldError("id", "must be an integer"))
		return
	}

	var req models.NoteRequest
	if !response.DecodeJSON(w, r, log, &req) {
		return
	}
	if !response.Validate(w, r, log, h.validate, req) {
		return
	}

	note, err := h.service.Update(r.Context(), identity, id, *req.Title, *req.Content)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	log.Info("note updated", slog.Int("id", id))
	render.JSON(w, r, note.ToResponse())
}
