package service

import (
	"errors"
	"testing"
	"time"

	"github.com/ipsum-store/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

func newAuthFixture(t *testing.T) (*AuthService, *models.User) {
	t.Helper()
	db := newTestDB(t, &models.User{})
	auth, userRepo := newTestAuthService(t, db)

	hash, err := auth.HashPassword("open sesame 123")
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	user := &models.User{
		Username:     "ada",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		PasswordHash: hash,
	}
	if err := userRepo.Create(user); err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return auth, user
}

func TestGenerateAndParseToken(t *testing.T) {
	auth, user := newAuthFixture(t)

	token, expiresAt, err := auth.GenerateToken(user)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}
	if token == "" {
		t.Fatalf("token should not be empty")
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expires_at should be in the future, got %v", expiresAt)
	}

	claims, err := auth.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Username != "ada" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseTokenExpired(t *testing.T) {
	auth, user := newAuthFixture(t)
	auth.cfg.JWT.ExpireHours = -1

	token, _, err := auth.GenerateToken(user)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}
	auth.cfg.JWT.ExpireHours = 1

	if _, err := auth.ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expired token want ErrTokenInvalid got %v", err)
	}
}

func TestParseTokenWrongSignature(t *testing.T) {
	auth, user := newAuthFixture(t)

	claims := JWTClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("another-secret"))
	if err != nil {
		t.Fatalf("sign forged token failed: %v", err)
	}

	if _, err := auth.ParseToken(forged); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("forged token want ErrTokenInvalid got %v", err)
	}
}

func TestLogin(t *testing.T) {
	auth, user := newAuthFixture(t)

	loggedIn, token, expiresAt, err := auth.Login("ada", "open sesame 123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if loggedIn.ID != user.ID || token == "" || !expiresAt.After(time.Now()) {
		t.Fatalf("unexpected login result: user=%+v token=%q expires=%v", loggedIn, token, expiresAt)
	}

	if _, _, _, err := auth.Login("ada", "wrong password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password want ErrInvalidCredentials got %v", err)
	}
	if _, _, _, err := auth.Login("mallory", "open sesame 123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user want ErrInvalidCredentials got %v", err)
	}
}

func TestVerifyTokenResolvesUser(t *testing.T) {
	auth, user := newAuthFixture(t)

	token, _, err := auth.GenerateToken(user)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	resolved, err := auth.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify token failed: %v", err)
	}
	if resolved.ID != user.ID {
		t.Fatalf("resolved user want id %d got %d", user.ID, resolved.ID)
	}

	// 用户被删除后 token 即失效
	if err := auth.userRepo.Delete(user.ID); err != nil {
		t.Fatalf("delete user failed: %v", err)
	}
	if _, err := auth.VerifyToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("token for deleted user want ErrTokenInvalid got %v", err)
	}
}

func TestVerifyBasic(t *testing.T) {
	auth, user := newAuthFixture(t)

	resolved, err := auth.VerifyBasic("ada", "open sesame 123")
	if err != nil {
		t.Fatalf("verify basic failed: %v", err)
	}
	if resolved.ID != user.ID {
		t.Fatalf("resolved user want id %d got %d", user.ID, resolved.ID)
	}

	if _, err := auth.VerifyBasic("ada", "nope"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("bad password want ErrInvalidCredentials got %v", err)
	}
}
