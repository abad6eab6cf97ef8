package models

// Note - заметка пользователя. Владелец задаётся при создании и не меняется.
type Note struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	OwnerID int    `json:"owner_id"`
}

// NoteRequest - тело запросов создания и изменения заметки.
// Пустые строки допустимы, отсутствие поля - нет.
type NoteRequest struct {
	Title   *string `json:"title" validate:"required"`
	Content *string `json:"content" validate:"required"`
}

// NoteResponse - представление заметки в ответах API.
type NoteResponse struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ToResponse убирает из заметки владельца.
func (n *Note) ToResponse() NoteResponse {
	return NoteResponse{ID: n.ID, Title: n.Title, Content: n.Content}
}
