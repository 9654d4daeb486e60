package integration

import (
	"net/http"
	"testing"
)

func TestAuthFlow_RegisterLoginProfile(t *testing.T) {
	app := setupApp(t)

	token, userID := app.registerUser(t, "maria@example.com", "password123")
	if token == "" || userID == "" {
		t.Fatal("expected token and user ID from registration")
	}

	// The same credentials must work for login.
	loginToken := app.loginUser(t, "maria@example.com", "password123")

	rec := app.request("GET", "/api/v1/profile", "", loginToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("profile failed: %d %s", rec.Code, rec.Body.String())
	}
	user := parseJSON(t, rec)["user"].(map[string]interface{})
	if user["id"] != userID {
		t.Errorf("expected user %s, got %v", userID, user["id"])
	}
	if user["email"] != "maria@example.com" {
		t.Errorf("unexpected email %v", user["email"])
	}
}

func TestAuthFlow_DuplicateRegistration(t *testing.T) {
	app := setupApp(t)

	app.registerUser(t, "maria@example.com", "password123")

	rec := app.request("POST", "/api/v1/auth/register",
		`{"email":"maria@example.com","password":"password456"}`, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate email, got %d", rec.Code)
	}
}

func TestAuthFlow_WrongPassword(t *testing.T) {
	app := setupApp(t)

	app.registerUser(t, "maria@example.com", "password123")

	rec := app.request("POST", "/api/v1/auth/login",
		`{"email":"maria@example.com","password":"wrongpass"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 on wrong password, got %d", rec.Code)
	}
}

func TestAuthFlow_ProtectedRoutesRequireToken(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/v1/plans", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	rec = app.request("GET", "/api/v1/plans", "", "not-a-jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with a garbage token, got %d", rec.Code)
	}
}
