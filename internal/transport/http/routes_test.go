package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"logicgrid-api/pkg/config"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{Port: "0"}
	RegisterRoutes(r, cfg, nil)
	return r
}

func TestHealthHandler(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status ok, got %v", resp["status"])
	}
}

func testCategoriesBody() map[string]interface{} {
	return map[string]interface{}{
		"categories": []map[string]interface{}{
			{"id": "color", "kind": "NOMINAL", "values": []string{"red", "blue", "green"}},
			{"id": "house", "kind": "ORDINAL", "values": []int{1, 2, 3}},
			{"id": "pet", "kind": "NOMINAL", "values": []string{"cat", "dog", "bird"}},
		},
	}
}

func TestGenerateHandler_Success(t *testing.T) {
	router := setupRouter()

	body := testCategoriesBody()
	body["options"] = map[string]interface{}{"seed": 42}

	buf, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/generate", bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	clues, ok := resp["clues"].([]interface{})
	if !ok || len(clues) == 0 {
		t.Errorf("expected a non-empty clue list, got %v", resp["clues"])
	}
}

func TestGenerateHandler_InvalidBody(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/generate", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestBoundsHandler_Success(t *testing.T) {
	router := setupRouter()

	body := testCategoriesBody()
	body["target"] = map[string]interface{}{"category1": "color", "value1": "red", "category2": "house"}

	buf, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/bounds", bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if _, ok := resp["min"]; !ok {
		t.Errorf("expected a min field, got %v", resp)
	}
}

func TestSolverApplyHandler_EmptyClues(t *testing.T) {
	router := setupRouter()

	body := testCategoriesBody()
	body["clues"] = []interface{}{}

	buf, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/solver/apply", bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["deductions"].(float64) != 0 {
		t.Errorf("expected zero deductions for an empty clue list, got %v", resp["deductions"])
	}
	if resp["solved"].(bool) {
		t.Errorf("expected an unsolved grid with no clues applied")
	}
}

func TestGetPuzzleHandler_NoStore(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/puzzles/anything", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503 with no store configured, got %d", w.Code)
	}
}
