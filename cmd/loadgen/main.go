package main

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// loadgen posts generated orders to a running intake endpoint, for
// demos and manual smoke-testing against a real Mongo.

var testPanel = []map[string]any{
	{"id": 1, "name": "CBC", "price": 20},
	{"id": 2, "name": "Lipid Profile", "price": 45},
	{"id": 3, "name": "HbA1c", "price": 30},
	{"id": 4, "name": "TSH", "price": 25},
	{"id": 5, "name": "Vitamin D", "price": 60},
	{"id": 6, "name": "Liver Function", "price": 50},
}

func main() {
	gofakeit.Seed(time.Now().UnixNano())

	target := env("TARGET_URL", "http://localhost:8080/receive-order")
	n := mustInt(env("GEN_COUNT", "1"))
	gap := mustInt(env("GEN_INTERVAL_MS", "0"))
	log.Printf("target=%s count=%d interval=%dms", target, n, gap)

	client := &http.Client{Timeout: 10 * time.Second}

	for i := 0; i < n; i++ {
		payload := fakeOrderPayload()
		body, _ := json.Marshal(payload)

		resp, err := client.Post(target, "application/json", bytes.NewReader(body))
		if err != nil {
			log.Fatalf("post: %v", err)
		}

		var out struct {
			Success      bool   `json:"success"`
			SerialNumber string `json:"serialNumber"`
			Message      string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			log.Fatalf("decode response: %v", err)
		}
		resp.Body.Close()

		if !out.Success {
			log.Fatalf("intake rejected (%s): %s", resp.Status, out.Message)
		}
		log.Printf("order accepted serial=%s patient=%s", out.SerialNumber, payload["patientName"])

		if gap > 0 {
			time.Sleep(time.Duration(gap) * time.Millisecond)
		}
	}
	log.Printf("done: posted %d order(s)", n)
}

func fakeOrderPayload() map[string]any {
	count := gofakeit.Number(1, 3)
	idxs := indices(len(testPanel))
	gofakeit.ShuffleInts(idxs)

	tests := make([]map[string]any, 0, count)
	for _, idx := range idxs[:count] {
		tests = append(tests, testPanel[idx])
	}

	return map[string]any{
		"patientName":  gofakeit.Name(),
		"phoneNumber":  gofakeit.Phone(),
		"emailAddress": gofakeit.Email(),
		"tests":        tests,
	}
}

func indices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("bad number %q: %v", s, err)
	}
	return v
}
