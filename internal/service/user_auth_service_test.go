package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mocnhien/storefront/internal/config"
	"github.com/mocnhien/storefront/internal/models"
	"github.com/mocnhien/storefront/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupUserAuthTest(t *testing.T) *UserAuthService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.ExpireHours = 24
	cfg.JWT.RememberMeExpireHours = 168
	return NewUserAuthService(cfg, repository.NewUserRepository(db))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := setupUserAuthTest(t)

	user, token, _, err := svc.Register("An@Example.com", "mat-khau-manh", "An", "0901112223")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "an@example.com" {
		t.Fatalf("expected normalized email, got %s", user.Email)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}

	claims, err := svc.ParseUserJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected claims for user %d, got %d", user.ID, claims.UserID)
	}

	loggedIn, _, _, err := svc.Login("an@example.com", "mat-khau-manh", false)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Fatalf("expected same user, got %d", loggedIn.ID)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := setupUserAuthTest(t)
	if _, _, _, err := svc.Register("short@example.com", "abc", "", ""); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := setupUserAuthTest(t)
	if _, _, _, err := svc.Register("dup@example.com", "mat-khau-manh", "", ""); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, _, err := svc.Register("dup@example.com", "mat-khau-manh", "", ""); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := setupUserAuthTest(t)
	if _, _, _, err := svc.Register("mai@example.com", "mat-khau-manh", "", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, _, err := svc.Login("mai@example.com", "sai-mat-khau", false); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, _, err := svc.Login("khong-ton-tai@example.com", "mat-khau-manh", false); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}
