// Package read реализует HTTP-обработчик получения заметки по ID.
//
// Чужая и несуществующая заметки неразличимы: в обоих случаях 404.
package read

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/postit/internal/http/middlewarectx"
	"github.com/magabrotheeeer/postit/internal/http/response"
	"github.com/magabrotheeeer/postit/internal/lib/sl"
	"github.com/magabrotheeeer/postit/internal/models"
)

// Handler обрабатывает запросы на получение заметки по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для получения заметки по ID
}

// Service описывает интерфейс бизнес-логики чтения заметки.
type Service interface {
	Get(ctx context.Context, identity *models.Identity, id int) (*models.Note, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получение заметки
// @Tags Notes
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID заметки"
// @Success 200 {object} models.NoteResponse
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 401 "Требуется авторизация"
// @Failure 404 "Заметка не найдена"
// @Router /notes/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.note.read"

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

	note, err := h.service.Get(r.Context(), identity, id)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	render.JSON(w, r, note.ToResponse())
}
