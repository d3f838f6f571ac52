package server

import (
	"encoding/json"
	"net/http"
)

type statusResponse struct {
	Service string `json:"service"`
	Status  string `json:"status"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Word    string `json:"word,omitempty"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
