package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/postit/internal/models"
)

// CreateNote вставляет заметку и возвращает её с присвоенным ID.
func (s *Storage) CreateNote(ctx context.Context, note models.Note) (*models.Note, error) {
	const op = "storage.postgresql.CreateNote"

	query := `INSERT INTO notes (title, content, user_id)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	if err := s.DB.QueryRowContext(ctx, query, note.Title, note.Content, note.OwnerID).Scan(&note.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &note, nil
}

// GetNote возвращает заметку по ID вместе с ID владельца.
func (s *Storage) GetNote(ctx context.Context, id int) (*models.Note, error) {
	const op = "storage.postgresql.GetNote"

	query := `SELECT id, title, content, user_id
			  FROM notes
			  WHERE id = $1`
	var n models.Note
	if err := s.DB.QueryRowContext(ctx, query, id).Scan(&n.ID, &n.Title, &n.Content, &n.OwnerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrNoteNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &n, nil
}

// ListNotesByOwner возвращает все заметки пользователя в порядке создания.
func (s *Storage) ListNotesByOwner(ctx context.Context, ownerID int) ([]models.Note, error) {
	const op = "storage.postgresql.ListNotesByOwner"

	query := `SELECT id, title, content, user_id
			  FROM notes
			  WHERE user_id = $1
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.Note, 0)
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.OwnerID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateNote меняет заголовок и текст заметки. Запись выполняется только если
// владелец совпадает, иначе возвращается models.ErrNoteNotFound.
func (s *Storage) UpdateNote(ctx context.Context, note models.Note) (*models.Note, error) {
	const op = "storage.postgresql.UpdateNote"

	query := `UPDATE notes
			  SET title = $1, content = $2
			  WHERE id = $3 AND user_id = $4`
	result, err := s.DB.ExecContext(ctx, query, note.Title, note.Content, note.ID, note.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("%s: %w", op, models.ErrNoteNotFound)
	}
	return &note, nil
}

// DeleteNote удаляет заметку владельца. Отсутствие строки - models.ErrNoteNotFound.
func (s *Storage) DeleteNote(ctx context.Context, id, ownerID int) error {
	const op = "storage.postgresql.DeleteNote"

	result, err := s.DB.ExecContext(ctx, `DELETE FROM notes WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrNoteNotFound)
	}
	return nil
}
