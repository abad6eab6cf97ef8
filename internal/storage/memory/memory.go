// Package memory реализует хранилище пользователей и заметок в памяти процесса.
// Семантика совпадает с postgresql.Storage, включая уникальность email.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/magabrotheeeer/postit/internal/models"
)

// Storage хранит данные в map под общей блокировкой.
type Storage struct {
	mu         sync.RWMutex
	users      map[int]models.User
	emails     map[string]int
	notes      map[int]models.Note
	lastUserID int
	lastNoteID int
}

// New создаёт пустое хранилище.
func New() *Storage {
	return &Storage{
		users:  make(map[int]models.User),
		emails: make(map[string]int),
		notes:  make(map[int]models.Note),
	}
}

// Ping всегда успешен, пока не отменён контекст.
func (s *Storage) Ping(ctx context.Context) error {
	return ctx.Err()
}

// CreateUser сохраняет пользователя. Занятый email - models.ErrUserExists.
func (s *Storage) CreateUser(_ context.Context, user models.User) (*models.User, error) {
	const op = "storage.memory.CreateUser"
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.emails[user.Email]; ok {
		return nil, fmt.Errorf("%s: %w", op, models.ErrUserExists)
	}
	s.lastUserID++
	user.ID = s.lastUserID
	s.users[user.ID] = user
	s.emails[user.Email] = user.ID
	return &user, nil
}

// GetUserByEmail возвращает пользователя по email.
func (s *Storage) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	const op = "storage.memory.GetUserByEmail"
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emails[email]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, models.ErrUserNotFound)
	}
	u := s.users[id]
	return &u, nil
}

// GetUser возвращает пользователя по ID.
func (s *Storage) GetUser(_ context.Context, id int) (*models.User, error) {
	const op = "storage.memory.GetUser"
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, models.ErrUserNotFound)
	}
	return &u, nil
}

// UserExists сообщает, зарегистрирован ли email.
func (s *Storage) UserExists(_ context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.emails[email]
	return ok, nil
}

// CreateNote сохраняет заметку и присваивает ей ID.
func (s *Storage) CreateNote(_ context.Context, note models.Note) (*models.Note, error) {
	const op = "storage.memory.CreateNote"
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[note.OwnerID]; !ok {
		return nil, fmt.Errorf("%s: %w", op, models.ErrUserNotFound)
	}
	s.lastNoteID++
	note.ID = s.lastNoteID
	s.notes[note.ID] = note
	return &note, nil
}

// GetNote возвращает заметку по ID.
func (s *Storage) GetNote(_ context.Context, id int) (*models.Note, error) {
	const op = "storage.memory.GetNote"
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.notes[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, models.ErrNoteNotFound)
	}
	return &n, nil
}

// ListNotesByOwner возвращает заметки пользователя, упорядоченные по ID.
func (s *Storage) ListNotesByOwner(_ context.Context, ownerID int) ([]models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Note, 0)
	for _, n := range s.notes {
		if n.OwnerID == ownerID {
			result = append(result, n)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// UpdateNote меняет заголовок и текст, если заметка принадлежит note.OwnerID.
func (s *Storage) UpdateNote(_ context.Context, note models.Note) (*models.Note, error) {
	const op = "storage.memory.UpdateNote"
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.notes[note.ID]
	if !ok || current.OwnerID != note.OwnerID {
		return nil, fmt.Errorf("%s: %w", op, models.ErrNoteNotFound)
	}
	current.Title = note.Title
	current.Content = note.Content
	s.notes[note.ID] = current
	return &current, nil
}

// DeleteNote удаляет заметку владельца.
func (s *Storage) DeleteNote(_ context.Context, id, ownerID int) error {
	const op = "storage.memory.DeleteNote"
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.notes[id]
	if !ok || current.OwnerID != ownerID {
		return fmt.Errorf("%s: %w", op, models.ErrNoteNotFound)
	}
	delete(s.notes, id)
	return nil
}
