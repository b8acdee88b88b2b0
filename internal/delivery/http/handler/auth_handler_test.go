package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobtrack/internal/delivery/http/handler"
	"jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/delivery/http/routes"
	"jobtrack/internal/domain/user"
	"jobtrack/internal/pkg/jwt"
	"jobtrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type stubAuthUsecase struct {
	user user.User
	pair usecase.TokenPair
	err  error

	updateCalls int
}

func (s *stubAuthUsecase) Register(context.Context, usecase.RegisterInput) (user.User, usecase.TokenPair, error) {
	return s.user, s.pair, s.err
}

func (s *stubAuthUsecase) Login(context.Context, usecase.LoginInput) (user.User, usecase.TokenPair, error) {
	return s.user, s.pair, s.err
}

func (s *stubAuthUsecase) Refresh(context.Context, string) (usecase.TokenPair, error) {
	return s.pair, s.err
}

func (s *stubAuthUsecase) UpdateUser(context.Context, uuid.UUID, usecase.UpdateUserInput) (user.User, usecase.TokenPair, error) {
	s.updateCalls++
	return s.user, s.pair, s.err
}

func newAuthTestApp(t *testing.T, uc usecase.AuthUsecase) (*fiber.App, jwt.Service) {
	t.Helper()

	jwtSvc := jwt.NewHMACService("test-access-secret", "test-refresh-secret", time.Hour, 24*time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())

	registry := routes.NewRegistry(
		handler.NewHealthHandler(stubDB{}),
		handler.NewAuthHandler(uc),
		handler.NewJobsHandler(&stubListUsecase{}, &stubStatsUsecase{}, &stubMutationUsecase{}),
		nil,
		middleware.NewAuthMiddleware(jwtSvc),
	)
	registry.Register(app)

	return app, jwtSvc
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, body any) *http.Response {
	t.Helper()

	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func postJSON(t *testing.T, app *fiber.App, target, token string, body any) *http.Response {
	t.Helper()
	return doJSON(t, app, http.MethodPost, target, token, body)
}

func TestAuth_RegisterReturns201WithTokens(t *testing.T) {
	uc := &stubAuthUsecase{
		user: user.User{ID: uuid.New(), Name: "ada", Email: "ada@example.com"},
		pair: usecase.TokenPair{AccessToken: "acc", RefreshToken: "ref"},
	}
	app, _ := newAuthTestApp(t, uc)

	resp := postJSON(t, app, "/api/v1/auth/register", "", map[string]string{
		"name":     "ada",
		"email":    "ada@example.com",
		"password": "secret123",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var body struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.User.Email != "ada@example.com" || body.AccessToken != "acc" || body.RefreshToken != "ref" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestAuth_RegisterDuplicateEmailReturns409(t *testing.T) {
	uc := &stubAuthUsecase{err: usecase.ErrEmailAlreadyRegistered}
	app, _ := newAuthTestApp(t, uc)

	resp := postJSON(t, app, "/api/v1/auth/register", "", map[string]string{
		"name":     "ada",
		"email":    "ada@example.com",
		"password": "secret123",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}

func TestAuth_LoginInvalidCredentialsReturns401(t *testing.T) {
	uc := &stubAuthUsecase{err: usecase.ErrInvalidCredentials}
	app, _ := newAuthTestApp(t, uc)

	resp := postJSON(t, app, "/api/v1/auth/login", "", map[string]string{
		"email":    "ada@example.com",
		"password": "wrong",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuth_LoginValidationErrorReturns400(t *testing.T) {
	uc := &stubAuthUsecase{err: usecase.NewValidationError("Please provide email and password")}
	app, _ := newAuthTestApp(t, uc)

	resp := postJSON(t, app, "/api/v1/auth/login", "", map[string]string{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if msg := decodeMsg(t, resp); msg != "Please provide email and password" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestAuth_RefreshWithoutTokenReturns401(t *testing.T) {
	uc := &stubAuthUsecase{pair: usecase.TokenPair{AccessToken: "acc", RefreshToken: "ref"}}
	app, _ := newAuthTestApp(t, uc)

	resp := postJSON(t, app, "/api/v1/auth/refresh", "", map[string]string{})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuth_RefreshRotatesTokens(t *testing.T) {
	uc := &stubAuthUsecase{pair: usecase.TokenPair{AccessToken: "new-acc", RefreshToken: "new-ref"}}
	app, _ := newAuthTestApp(t, uc)

	resp := postJSON(t, app, "/api/v1/auth/refresh", "some-refresh-token", map[string]string{})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.AccessToken != "new-acc" || body.RefreshToken != "new-ref" {
		t.Fatalf("unexpected tokens: %+v", body)
	}
}

func TestAuth_UpdateUserRequiresAuthentication(t *testing.T) {
	uc := &stubAuthUsecase{}
	app, _ := newAuthTestApp(t, uc)

	resp := doJSON(t, app, http.MethodPatch, "/api/v1/auth/updateUser", "", map[string]string{"name": "ada"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if uc.updateCalls != 0 {
		t.Fatal("unauthenticated update must not reach the usecase")
	}
}

func TestAuth_UpdateUserWithValidToken(t *testing.T) {
	uc := &stubAuthUsecase{
		user: user.User{ID: uuid.New(), Name: "ada", LastName: "lovelace", Email: "ada@example.com", Location: "london"},
		pair: usecase.TokenPair{AccessToken: "acc", RefreshToken: "ref"},
	}
	app, jwtSvc := newAuthTestApp(t, uc)
	token := accessToken(t, jwtSvc, uuid.New(), false)

	resp := doJSON(t, app, http.MethodPatch, "/api/v1/auth/updateUser", token, map[string]string{
		"name":     "ada",
		"email":    "ada@example.com",
		"lastName": "lovelace",
		"location": "london",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if uc.updateCalls != 1 {
		t.Fatalf("expected update to reach the usecase once, got %d", uc.updateCalls)
	}

	var body struct {
		User struct {
			LastName string `json:"lastName"`
		} `json:"user"`
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.User.LastName != "lovelace" || body.AccessToken != "acc" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestAuth_UpdateUserBlockedForDemo(t *testing.T) {
	uc := &stubAuthUsecase{
		user: user.User{ID: uuid.New()},
		pair: usecase.TokenPair{AccessToken: "acc", RefreshToken: "ref"},
	}
	app, jwtSvc := newAuthTestApp(t, uc)
	token := accessToken(t, jwtSvc, uuid.New(), true)

	resp := doJSON(t, app, http.MethodPatch, "/api/v1/auth/updateUser", token, map[string]string{
		"name":     "ada",
		"email":    "ada@example.com",
		"lastName": "lovelace",
		"location": "london",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if msg := decodeMsg(t, resp); msg != "Demo user is read-only!" {
		t.Fatalf("unexpected message: %q", msg)
	}
	if uc.updateCalls != 0 {
		t.Fatal("demo update must not reach the usecase")
	}
}

func TestAuth_RegisterRateLimited(t *testing.T) {
	uc := &stubAuthUsecase{
		user: user.User{ID: uuid.New(), Email: "ada@example.com"},
		pair: usecase.TokenPair{AccessToken: "acc", RefreshToken: "ref"},
	}
	app, _ := newAuthTestApp(t, uc)

	body := map[string]string{"name": "ada", "email": "ada@example.com", "password": "secret123"}
	for i := 0; i < 10; i++ {
		resp := postJSON(t, app, "/api/v1/auth/register", "", body)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("request %d: expected 201, got %d", i+1, resp.StatusCode)
		}
	}

	resp := postJSON(t, app, "/api/v1/auth/register", "", body)
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after limit, got %d", resp.StatusCode)
	}
	if msg := decodeMsg(t, resp); msg != "Too many requests from this IP, please try again after 15 minutes" {
		t.Fatalf("unexpected message: %q", msg)
	}
}
