package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/redis/go-redis/v9"

	"github.com/zakariadrk66/BTP/internal/auth/repository"
	"github.com/zakariadrk66/BTP/internal/config"
	"github.com/zakariadrk66/BTP/internal/testutil"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := testutil.SetupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:6379"})

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:             testutil.JWTSecret,
			AccessTokenExpire:  time.Hour,
			RefreshTokenExpire: 24 * time.Hour,
			Issuer:             "btp-procurement",
		},
	}
	return NewAuthService(userRepo, rdb, cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "buyer@btp.test", "s3cret-pass", "Buyer One")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.PasswordHash == "s3cret-pass" {
		t.Fatal("password stored in clear")
	}

	// Duplicate email rejected
	if _, err := svc.Register(ctx, "buyer@btp.test", "other-pass-123", "Imposter"); !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	// Wrong password
	if _, err := svc.Login(ctx, "buyer@btp.test", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	// Unknown user gets the same error
	if _, err := svc.Login(ctx, "ghost@btp.test", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}

	result, err := svc.Login(ctx, "buyer@btp.test", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.TwoFARequired {
		t.Fatal("2FA demanded on account without 2FA")
	}
	if result.Tokens == nil || result.Tokens.AccessToken == "" || result.Tokens.RefreshToken == "" {
		t.Fatal("token pair missing")
	}
}

func TestRegisterRejectsWeakInput(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "not-an-email", "long-enough-pass", ""); err == nil {
		t.Error("invalid email accepted")
	}
	if _, err := svc.Register(ctx, "a@b.test", "short", ""); err == nil {
		t.Error("short password accepted")
	}
}

func TestTwoFactorSetupFlow(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "2fa@btp.test", "s3cret-pass", "TwoFA User")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	secret, url, err := svc.SetupTwoFactor(ctx, user.ID)
	if err != nil {
		t.Fatalf("setup 2fa: %v", err)
	}
	if secret == "" || url == "" {
		t.Fatal("empty secret or otpauth url")
	}

	// Wrong code leaves 2FA off
	if err := svc.VerifyTwoFactorSetup(ctx, user.ID, "000000"); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode, got %v", err)
	}

	code, err := totp.GenerateCode(secret, time.Now())
	if err != nil {
		t.Fatalf("generate code: %v", err)
	}
	if err := svc.VerifyTwoFactorSetup(ctx, user.ID, code); err != nil {
		t.Fatalf("verify setup: %v", err)
	}

	reloaded, err := svc.GetCurrentUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if !reloaded.TwoFAEnabled {
		t.Fatal("2FA not enabled after verified setup")
	}

	// Setting up again is refused while enabled
	if _, _, err := svc.SetupTwoFactor(ctx, user.ID); !errors.Is(err, ErrTwoFAAlreadySetup) {
		t.Fatalf("expected ErrTwoFAAlreadySetup, got %v", err)
	}

	if err := svc.DisableTwoFactor(ctx, user.ID); err != nil {
		t.Fatalf("disable 2fa: %v", err)
	}
	reloaded, _ = svc.GetCurrentUser(ctx, user.ID)
	if reloaded.TwoFAEnabled || reloaded.TOTPSecret != "" {
		t.Fatal("2FA still active after disable")
	}
}
