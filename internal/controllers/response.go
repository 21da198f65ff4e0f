package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"
)

type messageResponse struct {
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	gson, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeRawJSON(w, status, gson)
}

func writeRawJSON(w http.ResponseWriter, status int, gson []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func writeMessage(w http.ResponseWriter, status int, message, detail string) {
	writeJSON(w, status, messageResponse{Message: message, Detail: detail})
}
