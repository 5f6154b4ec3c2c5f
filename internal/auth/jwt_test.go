package auth_test

import (
	"testing"
	"time"

	"github.com/community-board-api/internal/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := auth.GenerateToken("user-1", "minji", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := auth.ParseToken(token, secret)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("Expected user id 'user-1', got '%s'", claims.UserID)
	}
	if claims.Nickname != "minji" {
		t.Errorf("Expected nickname 'minji', got '%s'", claims.Nickname)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := auth.GenerateToken("user-1", "minji", []byte("secret-a"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := auth.ParseToken(token, []byte("secret-b")); err != auth.ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_Expired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := auth.GenerateToken("user-1", "minji", secret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := auth.ParseToken(token, secret); err != auth.ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := auth.ParseToken("not-a-token", []byte("test-secret")); err != auth.ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}
