package controllers

import (
	"encoding/json"
	"net/http"

	"energy-tracker/app/dto"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeStatus(w http.ResponseWriter, status, message string) {
	writeJSON(w, dto.StatusResponse{Status: status, Message: message})
}

func writeError(w http.ResponseWriter, message string) { writeStatus(w, "error", message) }

func writeOK(w http.ResponseWriter, message string) { writeStatus(w, "ok", message) }
