// Package models содержит доменные модели сервиса заметок: пользователя,
// заметку, аутентифицированную личность запроса и входные структуры API.
package models

// RoleUser - единственная роль, выдаваемая всем пользователям.
const RoleUser = "USER"

// User представляет зарегистрированного пользователя системы.
type User struct {
	ID           int    // Уникальный идентификатор пользователя
	Email        string // Электронная почта, она же логин и subject токена
	PasswordHash string // bcrypt-хэш пароля
	Enabled      bool   // Зарезервировано под блокировку учётной записи
}

// Identity - аутентифицированный пользователь текущего запроса.
// Не хранится, восстанавливается на каждый запрос.
type Identity struct {
	User User
	Role string
}

// NewIdentity создаёт Identity с ролью RoleUser.
func NewIdentity(u User) *Identity {
	return &Identity{User: u, Role: RoleUser}
}

// Name возвращает отображаемое имя (email).
func (i *Identity) Name() string {
	return i.User.Email
}

// UserRequest - тело запросов регистрации и входа.
type UserRequest struct {
	Mail     string `json:"mail" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,bcryptmax"`
}

// UserResponse - ответ на успешную регистрацию.
type UserResponse struct {
	Mail string `json:"mail"`
}
