package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"devconnect/internal/models"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeServiceError переводит доменные ошибки в HTTP статусы.
// Неизвестные ошибки логируются целиком, клиенту уходит общий текст.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrPostNotFound),
		errors.Is(err, models.ErrCommentNotFound),
		errors.Is(err, models.ErrProfileNotFound),
		errors.Is(err, models.ErrUserNotFound):
		WriteError(w, err.Error(), http.StatusNotFound)

	case errors.Is(err, models.ErrAlreadyLiked),
		errors.Is(err, models.ErrNotLiked),
		errors.Is(err, models.ErrEmailTaken),
		errors.Is(err, models.ErrBadCredentials):
		WriteError(w, err.Error(), http.StatusBadRequest)

	case errors.Is(err, models.ErrUnauthorized):
		WriteError(w, err.Error(), http.StatusUnauthorized)

	default:
		log.Printf("внутренняя ошибка: %v", err)
		WriteError(w, "Ошибка сервера", http.StatusInternalServerError)
	}
}
