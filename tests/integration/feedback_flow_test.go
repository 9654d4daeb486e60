package integration

import (
	"net/http"
	"testing"
)

func TestFeedbackFlow_SubmitAndListPublic(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "maria@example.com", "password123")

	rec := app.request("POST", "/api/v1/feedback",
		`{"stars":5,"comment":"Excelente","category":"elogio","feedback_mode":"public"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("feedback failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", "/api/v1/feedback",
		`{"stars":2,"comment":"Encontrei um erro","category":"problema_tecnico"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("private feedback failed: %d %s", rec.Code, rec.Body.String())
	}

	// Only the public entry is listed, and without authentication.
	rec = app.request("GET", "/api/v1/feedback/public", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("public list failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["total_items"].(float64) != 1 {
		t.Errorf("expected 1 public entry, got %v", result["total_items"])
	}
	data := result["data"].([]interface{})
	if len(data) != 1 || data[0].(map[string]interface{})["comment"] != "Excelente" {
		t.Errorf("unexpected public entries: %v", data)
	}
}

func TestFeedbackFlow_RequiresAuth(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/feedback",
		`{"stars":5,"category":"elogio"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestFeedbackFlow_ContactForm(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/contact",
		`{"name":"João","email":"joao@example.com","message":"Gostaria de saber mais."}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("contact failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["viewed"] != false {
		t.Errorf("expected new message unviewed, got %v", result["viewed"])
	}

	rec = app.request("POST", "/api/v1/contact", `{"name":"x","email":"bad","message":"y"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid email, got %d", rec.Code)
	}
}
