package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/laagvlieger/skills-integrate-mcp-with-copilot/internal/auth"
	"github.com/laagvlieger/skills-integrate-mcp-with-copilot/internal/services"
	"github.com/laagvlieger/skills-integrate-mcp-with-copilot/internal/store"
)

const testSecret = "test-secret"

func newTestRouter() (*chi.Mux, *auth.Codec) {
	userService := services.NewUserService(store.NewUserRepository())
	activityService := services.NewActivityService(store.NewActivityRepository())
	codec := auth.NewCodec(testSecret, 24*time.Hour)

	router := chi.NewRouter()
	router.Route("/auth", func(r chi.Router) {
		AuthRouter(r, userService, codec)
	})
	router.Route("/activities", func(r chi.Router) {
		ActivityRouter(r, activityService, RequireAuth(userService, codec))
	})
	return router, codec
}

func doJSON(t *testing.T, router http.Handler, method, target, token string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func register(t *testing.T, router http.Handler, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	return doJSON(t, router, http.MethodPost, "/auth/register", "",
		`{"email":"`+email+`","password":"`+password+`"}`)
}

func login(t *testing.T, router http.Handler, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	return doJSON(t, router, http.MethodPost, "/auth/login", "",
		`{"email":"`+email+`","password":"`+password+`"}`)
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return resp.Error
}

func TestRegister(t *testing.T) {
	router, _ := newTestRouter()

	rec := register(t, router, "a@x.edu", "longenough1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp MessageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Message != "Registration successful" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestRegister_Duplicate(t *testing.T) {
	router, _ := newTestRouter()

	if rec := register(t, router, "a@x.edu", "longenough1"); rec.Code != http.StatusOK {
		t.Fatalf("first register status = %d", rec.Code)
	}

	rec := register(t, router, "a@x.edu", "longenough1")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := errorBody(t, rec); got != "User already exists" {
		t.Errorf("error = %q", got)
	}
}

func TestRegister_WeakPassword(t *testing.T) {
	router, _ := newTestRouter()

	rec := register(t, router, "b@x.edu", "short77")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := errorBody(t, rec); got != "Password must be at least 8 characters" {
		t.Errorf("error = %q", got)
	}
}

func TestRegister_BadRequest(t *testing.T) {
	router, _ := newTestRouter()

	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: "{"},
		{name: "missing email", body: `{"password":"longenough1"}`},
		{name: "missing password", body: `{"email":"a@x.edu"}`},
		{name: "email without at sign", body: `{"email":"not-an-email","password":"longenough1"}`},
		{name: "email with empty domain", body: `{"email":"a@","password":"longenough1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/auth/register", "", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestLogin_InvalidEmailFormat(t *testing.T) {
	router, _ := newTestRouter()

	rec := login(t, router, "not-an-email", "longenough1")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := errorBody(t, rec); got != "invalid email" {
		t.Errorf("error = %q", got)
	}
}

func TestLogin(t *testing.T) {
	router, codec := newTestRouter()

	if rec := register(t, router, "b@x.edu", "longenough1"); rec.Code != http.StatusOK {
		t.Fatalf("register status = %d", rec.Code)
	}

	rec := login(t, router, "b@x.edu", "longenough1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.TokenType != "bearer" {
		t.Errorf("token_type = %q, want %q", resp.TokenType, "bearer")
	}

	claims, err := codec.Decode(resp.AccessToken)
	if err != nil {
		t.Fatalf("decode issued token: %v", err)
	}
	if claims.Subject != "b@x.edu" {
		t.Errorf("subject = %q, want %q", claims.Subject, "b@x.edu")
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router, _ := newTestRouter()

	if rec := register(t, router, "b@x.edu", "longenough1"); rec.Code != http.StatusOK {
		t.Fatalf("register status = %d", rec.Code)
	}

	wrongPassword := login(t, router, "b@x.edu", "wrongpassword")
	unknownEmail := login(t, router, "nobody@x.edu", "longenough1")

	for name, rec := range map[string]*httptest.ResponseRecorder{
		"wrong password": wrongPassword,
		"unknown email":  unknownEmail,
	} {
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", name, rec.Code)
		}
	}

	// Both failures must be byte-identical so emails cannot be enumerated.
	if wrongPassword.Body.String() != unknownEmail.Body.String() {
		t.Errorf("login failures differ: %q vs %q", wrongPassword.Body.String(), unknownEmail.Body.String())
	}
	if got := errorBody(t, wrongPassword); got != "Invalid email or password" {
		t.Errorf("error = %q", got)
	}
}

func TestRequireAuth_MissingToken(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/activities/Chess%20Club/signup", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if got := errorBody(t, rec); got != "Authentication required" {
		t.Errorf("error = %q", got)
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	router, _ := newTestRouter()

	for _, token := range []string{"garbage", "a.b", "a.b.c"} {
		rec := doJSON(t, router, http.MethodPost, "/activities/Chess%20Club/signup", token, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("token %q: status = %d, want 401", token, rec.Code)
		}
		if got := errorBody(t, rec); got != "Invalid token" {
			t.Errorf("token %q: error = %q", token, got)
		}
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	router, _ := newTestRouter()

	expiredCodec := auth.NewCodec(testSecret, -time.Hour)
	token, err := expiredCodec.Issue("a@x.edu")
	if err != nil {
		t.Fatalf("issue expired token: %v", err)
	}

	rec := doJSON(t, router, http.MethodPost, "/activities/Chess%20Club/signup", token, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if got := errorBody(t, rec); got != "Token expired" {
		t.Errorf("error = %q", got)
	}
}

func TestRequireAuth_UnknownSubject(t *testing.T) {
	router, codec := newTestRouter()

	// Properly signed token for an email that was never registered.
	token, err := codec.Issue("ghost@x.edu")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	rec := doJSON(t, router, http.MethodPost, "/activities/Chess%20Club/signup", token, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if got := errorBody(t, rec); got != "User not found" {
		t.Errorf("error = %q", got)
	}
}

func TestRequireAuth_SwappedSubject(t *testing.T) {
	router, codec := newTestRouter()

	if rec := register(t, router, "a@x.edu", "longenough1"); rec.Code != http.StatusOK {
		t.Fatalf("register status = %d", rec.Code)
	}
	token, err := codec.Issue("a@x.edu")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	// Rewrite the payload to assert a different subject while keeping the
	// original signature. The signature check must catch it.
	payloadSegment, signatureSegment, _ := strings.Cut(token, ".")
	payload, err := base64.RawURLEncoding.DecodeString(payloadSegment)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	swapped := strings.Replace(string(payload), "a@x.edu", "b@x.edu", 1)
	forged := base64.RawURLEncoding.EncodeToString([]byte(swapped)) + "." + signatureSegment

	rec := doJSON(t, router, http.MethodPost, "/activities/Chess%20Club/signup", forged, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if got := errorBody(t, rec); got != "Invalid token" {
		t.Errorf("error = %q", got)
	}
}
