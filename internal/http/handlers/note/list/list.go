// Package list реализует HTTP-обработчик получения всех заметок пользователя.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/postit/internal/http/middlewarectx"
	"github.com/magabrotheeeer/postit/internal/http/response"
	"github.com/magabrotheeeer/postit/internal/models"
)

// Handler обрабатывает GET /notes.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики получения списка заметок.
type Service interface {
	List(ctx context.Context, identity *models.Identity) ([]models.Note, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список заметок
// @Description Возвращает все заметки текущего пользователя. Пустой список допустим.
// @Tags Notes
// @Produce  json
// @Security BearerAuth
// @Success 200 {array} models.NoteResponse
// @Failure 401 "Требуется авторизация"
// @Router /notes [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.note.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	identity, ok := middlewarectx.IdentityFrom(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	notes, err := h.service.List(r.Context(), identity)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	res := make([]models.NoteResponse, 0, len(notes))
	for i := range notes {
		res = append(res, notes[i].ToResponse())
	}

	log.Info("notes listed", slog.Int("count", len(res)))
	render.JSON(w, r, res)
}
