// Package auth содержит бизнес-логику регистрации, аутентификации
// и восстановления личности запроса по bearer-токену.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/postit/internal/lib/sl"
	"github.com/magabrotheeeer/postit/internal/models"
)

// UserRepository описывает контракт хранилища пользователей.
type UserRepository interface {
	// CreateUser сохраняет пользователя; занятый email - models.ErrUserExists.
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	// GetUserByEmail возвращает пользователя; отсутствие - models.ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// UserExists сообщает, занят ли email.
	UserExists(ctx context.Context, email string) (bool, error)
}

// PasswordHasher хеширует и проверяет пароли.
type PasswordHasher interface {
	Hash(raw string) (string, error)
	Matches(raw, hashed string) bool
}

// TokenMaker выпускает и проверяет bearer-токены.
type TokenMaker interface {
	Issue(subject string) (string, error)
	Validate(token string) bool
	Subject(token string) (string, error)
}

// Service отвечает за регистрацию, вход и проверку токенов.
type Service struct {
	users  UserRepository
	hasher PasswordHasher
	tokens TokenMaker
	log    *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(users UserRepository, hasher PasswordHasher, tokens TokenMaker, log *slog.Logger) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		log:    log,
	}
}

// Register создаёт пользователя с включённой учётной записью.
// Уникальность email гарантируется хранилищем, предварительная проверка
// лишь избавляет от лишнего хеширования.
func (s *Service) Register(ctx context.Context, email, rawPassword string) (*models.User, error) {
	const op = "services.auth.Register"

	exists, err := s.users.UserExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		return nil, fmt.Errorf("%s: %w", op, models.ErrUserExists)
	}

	hashed, err := s.hasher.Hash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.users.CreateUser(ctx, models.User{
		Email:        email,
		PasswordHash: hashed,
		Enabled:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user registered", sl.Op(op), slog.Int("user_id", user.ID))
	return user, nil
}

// Authenticate проверяет пару email/пароль. Неизвестный email, неверный
// пароль и отключённая учётная запись неразличимы: models.ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, rawPassword string) (*models.Identity, error) {
	const op = "services.auth.Authenticate"

	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, models.ErrUserNotFound) {
		return nil, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !s.hasher.Matches(rawPassword, user.PasswordHash) || !user.Enabled {
		return nil, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}
	return models.NewIdentity(*user), nil
}

// Login аутентифицирует пользователя и выпускает для него токен.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (string, error) {
	const op = "services.auth.Login"

	identity, err := s.Authenticate(ctx, email, rawPassword)
	if err != nil {
		return "", err
	}
	token, err := s.tokens.Issue(identity.Name())
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// Identify восстанавливает личность по токену. Невалидный токен, исчезнувший
// пользователь и ошибки хранилища дают (nil, false): запрос продолжается анонимно.
func (s *Service) Identify(ctx context.Context, token string) (*models.Identity, bool) {
	const op = "services.auth.Identify"

	if !s.tokens.Validate(token) {
		return nil, false
	}
	subject, err := s.tokens.Subject(token)
	if err != nil {
		return nil, false
	}

	user, err := s.users.GetUserByEmail(ctx, subject)
	if err != nil {
		if !errors.Is(err, models.ErrUserNotFound) {
			s.log.Warn("failed to load token subject", sl.Op(op), sl.Err(err))
		}
		return nil, false
	}
	return models.NewIdentity(*user), true
}
