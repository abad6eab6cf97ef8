// Package note реализует работу с заметками с проверкой владельца.
//
// Каждая операция над конкретной заметкой заново проверяет, что она
// принадлежит личности запроса. Список строится запросом по владельцу.
package note

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/postit/internal/lib/sl"
	"github.com/magabrotheeeer/postit/internal/models"
)

// Repository определяет методы хранилища заметок.
type Repository interface {
	// CreateNote сохраняет заметку и возвращает её с ID.
	CreateNote(ctx context.Context, note models.Note) (*models.Note, error)
	// GetNote возвращает заметку; отсутствие - models.ErrNoteNotFound.
	GetNote(ctx context.Context, id int) (*models.Note, error)
	// ListNotesByOwner возвращает заметки владельца.
	ListNotesByOwner(ctx context.Context, ownerID int) ([]models.Note, error)
	// UpdateNote меняет заметку при совпадении владельца.
	UpdateNote(ctx context.Context, note models.Note) (*models.Note, error)
	// DeleteNote удаляет заметку при совпадении владельца.
	DeleteNote(ctx context.Context, id, ownerID int) error
}

// Cache описывает методы для кэширования заметок.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// Service реализует CRUD над заметками владельца.
type Service struct {
	repo  Repository
	cache Cache
	ttl   time.Duration
	log   *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(repo Repository, cache Cache, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		ttl:   ttl,
		log:   log,
	}
}

func cacheKey(id int) string {
	return fmt.Sprintf("note:%d", id)
}

// List возвращает все заметки пользователя; пустой список допустим.
func (s *Service) List(ctx context.Context, identity *models.Identity) ([]models.Note, error) {
	const op = "services.note.List"
	notes, err := s.repo.ListNotesByOwner(ctx, identity.User.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return notes, nil
}

// Create создаёт заметку, владельцем которой становится identity.
func (s *Service) Create(ctx context.Context, identity *models.Identity, title, content string) (*models.Note, error) {
	const op = "services.note.Create"
	note, err := s.repo.CreateNote(ctx, models.Note{
		Title:   title,
		Content: content,
		OwnerID: identity.User.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("note created", sl.Op(op), slog.Int("id", note.ID), slog.Int("user_id", identity.User.ID))
	s.store(ctx, note)
	return note, nil
}

// Get возвращает заметку, если она принадлежит identity.
func (s *Service) Get(ctx context.Context, identity *models.Identity, id int) (*models.Note, error) {
	return s.requireOwned(ctx, identity, id)
}

// Update меняет заголовок и текст заметки владельца.
func (s *Service) Update(ctx context.Context, identity *models.Identity, id int, title, content string) (*models.Note, error) {
	const op = "services.note.Update"
	note, err := s.requireOwned(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	note.Title = title
	note.Content = content
	updated, err := s.repo.UpdateNote(ctx, *note)
	if err != nil {
		s.invalidate(ctx, id)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Не записываем в кэш: параллельное удаление могло уже пройти.
	s.invalidate(ctx, id)
	s.log.Info("note updated", sl.Op(op), slog.Int("id", id))
	return updated, nil
}

// Delete удаляет заметку владельца.
func (s *Service) Delete(ctx context.Context, identity *models.Identity, id int) error {
	const op = "services.note.Delete"
	if _, err := s.requireOwned(ctx, identity, id); err != nil {
		return err
	}

	err := s.repo.DeleteNote(ctx, id, identity.User.ID)
	// Только после удаления: иначе параллельное чтение вернёт заметку в кэш.
	s.invalidate(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("note deleted", sl.Op(op), slog.Int("id", id))
	return nil
}

// requireOwned находит заметку и проверяет владельца:
// нет заметки - models.ErrNoteNotFound, чужая - models.ErrNotAuthorized.
func (s *Service) requireOwned(ctx context.Context, identity *models.Identity, id int) (*models.Note, error) {
	const op = "services.note.requireOwned"

	note, err := s.load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if note.OwnerID != identity.User.ID {
		s.log.Debug("note owned by another user", sl.Op(op), slog.Int("id", id), slog.Int("user_id", identity.User.ID))
		return nil, fmt.Errorf("%s: %w", op, models.ErrNotAuthorized)
	}
	return note, nil
}

// load читает заметку из кэша, при промахе - из хранилища.
func (s *Service) load(ctx context.Context, id int) (*models.Note, error) {
	var cached models.Note
	found, err := s.cache.Get(ctx, cacheKey(id), &cached)
	if err != nil {
		s.log.Warn("failed to read note from cache", slog.Int("id", id), sl.Err(err))
	}
	if found && err == nil {
		return &cached, nil
	}

	note, err := s.repo.GetNote(ctx, id)
	if err != nil {
		return nil, err
	}
	s.store(ctx, note)
	return note, nil
}

func (s *Service) store(ctx context.Context, note *models.Note) {
	if err := s.cache.Set(ctx, cacheKey(note.ID), note, s.ttl); err != nil {
		s.log.Warn("failed to cache note", slog.Int("id", note.ID), sl.Err(err))
	}
}

func (s *Service) invalidate(ctx context.Context, id int) {
	if err := s.cache.Invalidate(ctx, cacheKey(id)); err != nil && !errors.Is(err, context.Canceled) {
		s.log.Warn("failed to invalidate note", slog.Int("id", id), sl.Err(err))
	}
}
