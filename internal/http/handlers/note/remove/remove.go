// Package remove реализует HTTP-обработчик удаления заметки.
package remove

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/postit/internal/http/middlewarectx"
	"github.com/magabrotheeeer/postit/internal/http/response"
	"github.com/magabrotheeeer/postit/internal/lib/sl"
	"github.com/magabrotheeeer/postit/internal/models"
)

// Handler обрабатывает DELETE /notes/{id}.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления заметки.
type Service interface {
	Delete(ctx context.Context, identity *models.Identity, id int) error
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удаление заметки
// @Tags Notes
// @Security BearerAuth
// @Param id path int true "ID заметки"
// @Success 200 "Заметка удалена"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 401 "Требуется авторизация"
// @Failure 404 "Заметка не найдена"
// @Router /notes/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.note.remove"

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

	if err = h.service.Delete(r.Context(), identity, id); err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	log.Info("note deleted", slog.Int("id", id))
	w.WriteHeader(http.StatusOK)
}
