package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const msgServerError = "Server error"

// dataEnvelope обертка успешного ответа: {"data": ...}
type dataEnvelope struct {
	Data interface{} `json:"data"`
}

// errorEnvelope обертка ошибки: {"error": "..."}
type errorEnvelope struct {
	Error string `json:"error"`
}

// DecodeJSON декодирует тело запроса; неизвестные поля допускаются
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("empty request body")
	}
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// RespondData пишет успешный ответ в обертке {"data": ...}
func RespondData(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Ошибку кодирования здесь уже некуда вернуть
	_ = json.NewEncoder(w).Encode(dataEnvelope{Data: payload})
}

// RespondError пишет ответ с ошибкой в обертке {"error": "..."}
func RespondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{Error: message})
}

// RespondBadRequest пишет 400 с сообщением
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound пишет 404 с сообщением
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict пишет 409 с сообщением
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError пишет 500 с обезличенным сообщением
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgServerError)
}

// RespondNoContent пишет 204 без тела
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
