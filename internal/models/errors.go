package models

import "errors"

var (
	// ErrUserNotFound - пользователь с таким email или id не найден.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists - email уже зарегистрирован.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials - неверная пара email/пароль. Причина не уточняется.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNoteNotFound - заметки с таким id нет.
	ErrNoteNotFound = errors.New("note not found")
	// ErrNotAuthorized - заметка принадлежит другому пользователю.
	ErrNotAuthorized = errors.New("not authorized")
)
