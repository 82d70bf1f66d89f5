package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"labportal/internal/model"
	"labportal/internal/service"
)

type receiveOrderResponse struct {
	Success       bool             `json:"success"`
	Message       string           `json:"message"`
	SerialNumber  string           `json:"serialNumber"`
	PatientName   string           `json:"patientName"`
	SelectedTests []map[string]any `json:"selected_tests"`
}

// ReceiveOrderHandler accepts a new lab-test order, mints its serial
// number and persists it. Missing patient fields default to "N/A";
// the tests list is passed through untouched.
func ReceiveOrderHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil || len(bytes.TrimSpace(body)) == 0 {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"success": false,
				"message": "No data received or data is not JSON.",
			})
			return
		}

		var raw map[string]any
		if err := json.Unmarshal(body, &raw); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"success": false,
				"message": "Invalid JSON format.",
			})
			return
		}
		if raw == nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"success": false,
				"message": "No data received or data is not JSON.",
			})
			return
		}

		order := model.Order{
			PatientName:  stringField(raw, "patientName"),
			PhoneNumber:  stringField(raw, "phoneNumber"),
			EmailAddress: stringField(raw, "emailAddress"),
			Tests:        testsField(raw),
		}

		order = orderSvc.Create(r.Context(), order)
		slog.Info("order received", "serial", order.SerialNumber, "patient", order.PatientName, "tests", len(order.Tests))

		writeJSON(w, http.StatusOK, receiveOrderResponse{
			Success:       true,
			Message:       "Order received successfully by Receiving App!",
			SerialNumber:  order.SerialNumber,
			PatientName:   order.PatientName,
			SelectedTests: order.Tests,
		})
	}
}

type orderStatusRequest struct {
	SerialNumber string `json:"serialNumber"`
}

// OrderStatusHandler looks up an order by serial number.
func OrderStatusHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req orderStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SerialNumber == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"status":  "error",
				"message": "Serial number is required.",
			})
			return
		}

		order, found, err := orderSvc.Get(r.Context(), req.SerialNumber)
		if err != nil {
			slog.Error("order lookup failed", "serial", req.SerialNumber, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"status":  "error",
				"message": fmt.Sprintf("Internal server error: %v", err),
			})
			return
		}
		if !found {
			writeJSON(w, http.StatusNotFound, map[string]any{
				"status":  "error",
				"message": "Order not found.",
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"status": "success",
			"order":  order.DisplayFields(),
		})
	}
}

func stringField(raw map[string]any, key string) string {
	if s, ok := raw[key].(string); ok {
		return s
	}
	return "N/A"
}

func testsField(raw map[string]any) []map[string]any {
	items, ok := raw["tests"].([]any)
	if !ok {
		return []map[string]any{}
	}
	tests := make([]map[string]any, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			tests = append(tests, m)
		}
	}
	return tests
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
