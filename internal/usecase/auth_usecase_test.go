package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	jwtpkg "jobtrack/internal/pkg/jwt"
)

func newAuth() (*Auth, *mockUserRepo) {
	users := newMockUserRepo()
	svc := jwtpkg.NewHMACService("access", "refresh", 15*time.Minute, 24*time.Hour)
	return NewAuthUsecase(users, svc), users
}

func TestRegisterAndLogin(t *testing.T) {
	uc, _ := newAuth()

	usr, pair, err := uc.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: "Ada@Example.com", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if usr.Email != "ada@example.com" {
		t.Fatalf("email not normalized: %q", usr.Email)
	}
	if usr.PasswordHash != "" {
		t.Fatal("password hash leaked")
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("missing tokens")
	}
	if usr.LastName != defaultLastName || usr.Location != defaultLocation {
		t.Fatalf("defaults not applied: %+v", usr)
	}

	if _, _, err := uc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, _, err := uc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _ := newAuth()

	in := RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"}
	if _, _, err := uc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, _, err := uc.Register(context.Background(), in); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegister_Validation(t *testing.T) {
	uc, _ := newAuth()

	var ve *ValidationError
	if _, _, err := uc.Register(context.Background(), RegisterInput{Email: "x@y.z", Password: "secret1"}); !errors.As(err, &ve) {
		t.Fatalf("expected validation error for missing name, got %v", err)
	}
	if _, _, err := uc.Register(context.Background(), RegisterInput{Name: "A", Email: "x@y.z", Password: "short"}); !errors.As(err, &ve) {
		t.Fatalf("expected validation error for short password, got %v", err)
	}
	if _, _, err := uc.Register(context.Background(), RegisterInput{Name: "A", Email: "not-an-email", Password: "secret1"}); !errors.As(err, &ve) {
		t.Fatalf("expected validation error for bad email, got %v", err)
	}
}

func TestRefresh_RotatesTokens(t *testing.T) {
	uc, _ := newAuth()

	_, pair, err := uc.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: "ada@example.com", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	next, err := uc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if next.AccessToken == "" || next.RefreshToken == "" {
		t.Fatal("missing rotated tokens")
	}

	// an access token must not pass as a refresh token
	if _, err := uc.Refresh(context.Background(), pair.AccessToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestUpdateUser(t *testing.T) {
	uc, users := newAuth()

	usr, _, err := uc.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: "ada@example.com", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	updated, pair, err := uc.UpdateUser(context.Background(), usr.ID, UpdateUserInput{
		Name: "Ada", Email: "ada@lovelace.dev", LastName: "Lovelace", Location: "London",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.LastName != "Lovelace" || updated.Location != "London" {
		t.Fatalf("fields not applied: %+v", updated)
	}
	if pair.AccessToken == "" {
		t.Fatal("expected fresh token after update")
	}

	stored, _ := users.GetByID(context.Background(), usr.ID)
	if stored.Email != "ada@lovelace.dev" {
		t.Fatalf("email not persisted: %q", stored.Email)
	}

	var ve *ValidationError
	if _, _, err := uc.UpdateUser(context.Background(), usr.ID, UpdateUserInput{Name: "Ada"}); !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
