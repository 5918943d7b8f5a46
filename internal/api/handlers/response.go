package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

const msgInternalError = "внутренняя ошибка сервера"

// ErrEmptyBody возвращается, когда тело запроса пустое
var ErrEmptyBody = errors.New("handlers: empty request body")

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Message string `json:"message"`
}

// RejectionResponse отказ валидатора: код причины и текст для пользователя
type RejectionResponse struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// RespondJSON пишет JSON с указанным статусом. data == nil - пустое тело.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	if data == nil {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Message: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondRejection 409 с кодом причины отказа
func RespondRejection(w http.ResponseWriter, reason, message string) {
	RespondJSON(w, http.StatusConflict, RejectionResponse{Reason: reason, Message: message})
}

// DecodeJSON разбирает тело запроса, неизвестные поля отклоняются
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// ParseDate календарная дата "2006-01-02"
func ParseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateFormat, s)
}
