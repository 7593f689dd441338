package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Определяем переменные-ошибки, которые могут быть возвращены из Use Cases.
var (
	ErrSessionMissing      = errors.New("session token is missing, re-login required")
	ErrSubmissionInFlight  = errors.New("submission already in flight")
	ErrNotFound            = errors.New("record not found")
	ErrBackendUnexpected   = errors.New("unexpected error from backend")
	ErrConfirmationMissing = errors.New("destructive operation requires confirmation")
)

// ValidationError - ошибка валидации формы с сообщениями по полям.
// Ловится до любого сетевого вызова, частичной отправки не происходит.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add добавляет сообщение для поля.
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = message
}

// HasErrors - есть ли хоть одно нарушение.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// BackendError - ошибка, которую вернул удаленный backend (не-2xx ответ).
// Message - текст сервера "как есть", чтобы пользователь увидел его дословно.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return e.Message
}
