package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/expensekeeper/pkg/api"
)

// maxBodySize ограничение на размер тела запроса
const maxBodySize = 1 << 20

const msgInternalError = "internal server error"

// responder общая часть всех handlers: логгер и запись JSON ответов
type responder struct {
	logger *slog.Logger
}

// sendJSON отправляет JSON ответ
func (h *responder) sendJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *responder) sendError(w http.ResponseWriter, message string, statusCode int) {
	h.sendJSON(w, api.ErrorResponse{Error: message}, statusCode)
}

// sendMessage отправляет JSON ответ с текстовым сообщением
func (h *responder) sendMessage(w http.ResponseWriter, message string, statusCode int) {
	h.sendJSON(w, api.MessageResponse{Message: message}, statusCode)
}

// requireUser достает пользователя, положенного в контекст AuthMiddleware
func (h *responder) requireUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.logger.ErrorContext(r.Context(), "user_id not found in context")
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

// decodeJSON читает тело запроса в dst
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	return json.NewDecoder(r.Body).Decode(dst)
}
