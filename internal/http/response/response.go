// Package response содержит типы тел ошибок API и единую таблицу
// соответствия доменных ошибок HTTP-статусам.
package response

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/postit/internal/lib/sl"
	"github.com/magabrotheeeer/postit/internal/models"
)

// MaxPasswordBytes - предел длины пароля для bcrypt.
const MaxPasswordBytes = 72

const (
	// ErrInputValidation - код ошибки валидации входных данных.
	ErrInputValidation = "ERR_INPUT_VALIDATION"
	// ErrExistingUser - код ошибки занятого email.
	ErrExistingUser = "ERR_EXISTING_USER"
)

// ErrorResponse - тело ответа 400.
type ErrorResponse struct {
	Error     bool               `json:"error" example:"true"`
	ErrorCode string             `json:"errorCode" example:"ERR_INPUT_VALIDATION"`
	Details   []FieldErrorDetail `json:"details"`
}

// FieldErrorDetail описывает одно нарушение для поля.
type FieldErrorDetail struct {
	Field   string `json:"field" example:"mail"`
	Message string `json:"message" example:"must be a well-formed email address"`
}

// NewValidator создаёт валидатор, который называет поля по json-тегам.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// bcrypt принимает не больше 72 байт, а min/max считают руны.
	_ = v.RegisterValidation("bcryptmax", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= MaxPasswordBytes
	})
	return v
}

// ValidationError собирает все нарушения в одно тело ERR_INPUT_VALIDATION.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	details := make([]FieldErrorDetail, 0, len(errs))
	for _, err := range errs {
		var msg string
		switch err.ActualTag() {
		case "required":
			msg = "must not be null"
		case "email":
			msg = "must be a well-formed email address"
		case "min":
			msg = fmt.Sprintf("size must be at least %s", err.Param())
		case "max":
			msg = fmt.Sprintf("size must be at most %s", err.Param())
		case "bcryptmax":
			msg = fmt.Sprintf("size must be at most %d bytes", MaxPasswordBytes)
		default:
			msg = "is not valid"
		}
		details = append(details, FieldErrorDetail{Field: err.Field(), Message: msg})
	}
	return ErrorResponse{
		Error:     true,
		ErrorCode: ErrInputValidation,
		Details:   details,
	}
}

// FieldError возвращает ERR_INPUT_VALIDATION с одним нарушением.
func FieldError(field, msg string) ErrorResponse {
	return ErrorResponse{
		Error:     true,
		ErrorCode: ErrInputValidation,
		Details:   []FieldErrorDetail{{Field: field, Message: msg}},
	}
}

// ExistingUser возвращает тело ERR_EXISTING_USER.
func ExistingUser() ErrorResponse {
	return ErrorResponse{
		Error:     true,
		ErrorCode: ErrExistingUser,
		Details:   []FieldErrorDetail{},
	}
}

// BadRequest пишет 400 с телом body.
func BadRequest(w http.ResponseWriter, r *http.Request, body ErrorResponse) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, body)
}

// Validate проверяет структуру и при нарушениях пишет 400. Возвращает false,
// если ответ уже записан.
func Validate(w http.ResponseWriter, r *http.Request, log *slog.Logger, v *validator.Validate, req any) bool {
	err := v.Struct(req)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		return false
	}
	log.Info("validation failed", sl.Err(err))
	BadRequest(w, r, ValidationError(verrs))
	return false
}

// DecodeJSON читает тело запроса в dst. При ошибке пишет 400 с нарушением
// на поле body и возвращает false.
func DecodeJSON(w http.ResponseWriter, r *http.Request, log *slog.Logger, dst any) bool {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		log.Info("failed to decode request body", sl.Err(err))
		BadRequest(w, r, FieldError("body", "malformed request body"))
		return false
	}
	return true
}

// WriteError переводит ошибку сервиса в ответ:
//
//	ErrUserExists                     → 400 ERR_EXISTING_USER
//	ErrInvalidCredentials             → 401, пустое тело
//	ErrNoteNotFound, ErrNotAuthorized → 404, пустое тело
//	остальное                         → 500, пустое тело
func WriteError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, models.ErrUserExists):
		log.Info("user already exists")
		BadRequest(w, r, ExistingUser())
	case errors.Is(err, models.ErrInvalidCredentials):
		log.Info("invalid credentials")
		w.WriteHeader(http.StatusUnauthorized)
	case errors.Is(err, models.ErrNoteNotFound), errors.Is(err, models.ErrNotAuthorized):
		log.Info("note is not accessible", sl.Err(err))
		w.WriteHeader(http.StatusNotFound)
	default:
		log.Error("internal error", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}
