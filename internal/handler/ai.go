package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// The AI endpoints are mocks: the frontend talks to Gemini directly,
// these exist only so the boundary surface stays complete.

type interpretRequest struct {
	ReportText string `json:"report_text"`
}

func InterpretReportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req interpretRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"status":  "error",
				"message": "Invalid request",
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"status": "success",
			"interpretation": fmt.Sprintf(
				"Backend Mock Interpretation for '%s': This response came from the backend mock. The frontend calls Gemini directly for AI features.",
				req.ReportText),
		})
	}
}

type healthTipsRequest struct {
	HealthGoal string `json:"health_goal"`
}

func HealthTipsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req healthTipsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"status":  "error",
				"message": "Invalid request",
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"status": "success",
			"tips": fmt.Sprintf(
				"Backend Mock Health Tips for '%s': This response came from the backend mock. The frontend calls Gemini directly for AI features.",
				req.HealthGoal),
		})
	}
}
