package utils

import (
	"encoding/json"
	"net/http"
)

// RespondJSON sends a JSON response
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		Logger.WithError(err).Error("❌ Failed to encode response")
	}
}

// RespondData wraps a payload in the success envelope
func RespondData(w http.ResponseWriter, status int, data interface{}) {
	RespondJSON(w, status, map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

// RespondCreated reports a newly inserted row
func RespondCreated(w http.ResponseWriter, message string, id int64) {
	RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": message,
		"id":      id,
	})
}

// RespondMessage sends a 200 success envelope carrying only a message
func RespondMessage(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": message,
	})
}

// RespondError sends an error response
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
