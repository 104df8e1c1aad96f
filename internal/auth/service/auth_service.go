package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pquerna/otp/totp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/zakariadrk66/BTP/internal/auth/entity"
	"github.com/zakariadrk66/BTP/internal/auth/repository"
	"github.com/zakariadrk66/BTP/internal/config"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidCode        = errors.New("invalid verification code")
	ErrTwoFAAlreadySetup  = errors.New("two-factor authentication already set up")
	ErrTwoFANotSetup      = errors.New("two-factor authentication not set up")
	ErrTicketExpired      = errors.New("login ticket expired or invalid")
)

// loginTicketTTL bounds the window between password login and the
// two-factor code.
const loginTicketTTL = 5 * time.Minute

// AuthService handles registration, login and TOTP two-factor auth.
type AuthService struct {
	userRepo *repository.UserRepository
	rdb      *redis.Client
	cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, rdb *redis.Client, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		rdb:      rdb,
		cfg:      cfg,
	}
}

// TokenPair is the signed access/refresh token set.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// LoginResult is either a token pair, or a short-lived ticket when the
// account requires a two-factor code to finish.
type LoginResult struct {
	Tokens        *TokenPair
	TwoFARequired bool
	Ticket        string
}

func (s *AuthService) Register(ctx context.Context, email, password, name string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		ID:           uuid.New().String()[:32],
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Status:       "active",
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the password. When the account has 2FA enabled no tokens
// are issued yet; the caller gets a ticket to redeem together with the
// TOTP code.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if user.TwoFAEnabled {
		ticket := uuid.New().String()
		if err := s.rdb.Set(ctx, "2fa:login:"+ticket, user.ID, loginTicketTTL).Err(); err != nil {
			return nil, fmt.Errorf("store login ticket: %w", err)
		}
		return &LoginResult{TwoFARequired: true, Ticket: ticket}, nil
	}

	tokens, err := s.finishLogin(ctx, user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Tokens: tokens}, nil
}

// VerifyTwoFactorLogin redeems a login ticket with a TOTP code. The
// ticket is consumed either way.
func (s *AuthService) VerifyTwoFactorLogin(ctx context.Context, ticket, code string) (*TokenPair, error) {
	userID, err := s.rdb.GetDel(ctx, "2fa:login:"+ticket).Result()
	if err != nil {
		return nil, ErrTicketExpired
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !totp.Validate(code, user.TOTPSecret) {
		return nil, ErrInvalidCode
	}

	return s.finishLogin(ctx, user)
}

// SetupTwoFactor generates a fresh TOTP secret for the user. The secret
// stays unconfirmed until VerifyTwoFactorSetup sees a valid code.
func (s *AuthService) SetupTwoFactor(ctx context.Context, userID string) (secret, otpauthURL string, err error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", "", err
	}
	if user.TwoFAEnabled {
		return "", "", ErrTwoFAAlreadySetup
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.cfg.JWT.Issuer,
		AccountName: user.Email,
	})
	if err != nil {
		return "", "", fmt.Errorf("generate totp key: %w", err)
	}

	user.TOTPSecret = key.Secret()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", "", err
	}

	return key.Secret(), key.URL(), nil
}

// VerifyTwoFactorSetup confirms the pending secret with a code from the
// authenticator app and switches 2FA on.
func (s *AuthService) VerifyTwoFactorSetup(ctx context.Context, userID, code string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.TwoFAEnabled {
		return ErrTwoFAAlreadySetup
	}
	if user.TOTPSecret == "" {
		return ErrTwoFANotSetup
	}

	if !totp.Validate(code, user.TOTPSecret) {
		return ErrInvalidCode
	}

	user.TwoFAEnabled = true
	return s.userRepo.Update(ctx, user)
}

// DisableTwoFactor discards the secret. Idempotent.
func (s *AuthService) DisableTwoFactor(ctx context.Context, userID string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	user.TOTPSecret = ""
	user.TwoFAEnabled = false
	return s.userRepo.Update(ctx, user)
}

// RefreshToken rotates a refresh token into a new pair. The presented
// token's jti must still exist in Redis; rotation removes it.
func (s *AuthService) RefreshToken(ctx context.Context, refreshTokenString string) (*TokenPair, error) {
	token, err := jwt.Parse(refreshTokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if claims["type"] != "refresh" {
		return nil, fmt.Errorf("invalid token type")
	}

	jti, _ := claims["jti"].(string)
	userID, err := s.rdb.Get(ctx, "token:refresh:"+jti).Result()
	if err != nil {
		return nil, fmt.Errorf("refresh token expired or invalid")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}

	s.rdb.Del(ctx, "token:refresh:"+jti)

	return s.generateTokenPair(ctx, user)
}

// GetCurrentUser loads the authenticated user.
func (s *AuthService) GetCurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

func (s *AuthService) finishLogin(ctx context.Context, user *entity.User) (*TokenPair, error) {
	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return s.generateTokenPair(ctx, user)
}

func (s *AuthService) generateTokenPair(ctx context.Context, user *entity.User) (*TokenPair, error) {
	now := time.Now()

	accessClaims := jwt.MapClaims{
		"sub":   user.ID,
		"uid":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"iss":   s.cfg.JWT.Issuer,
		"iat":   now.Unix(),
		"exp":   now.Add(s.cfg.JWT.AccessTokenExpire).Unix(),
		"jti":   uuid.New().String(),
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refreshJti := uuid.New().String()
	refreshClaims := jwt.MapClaims{
		"sub":  user.ID,
		"type": "refresh",
		"iss":  s.cfg.JWT.Issuer,
		"iat":  now.Unix(),
		"exp":  now.Add(s.cfg.JWT.RefreshTokenExpire).Unix(),
		"jti":  refreshJti,
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	s.rdb.Set(ctx, "token:refresh:"+refreshJti, user.ID, s.cfg.JWT.RefreshTokenExpire)

	return &TokenPair{
		AccessToken:  accessTokenString,
		RefreshToken: refreshTokenString,
		ExpiresIn:    int64(s.cfg.JWT.AccessTokenExpire.Seconds()),
	}, nil
}
