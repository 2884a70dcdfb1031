package auth

import (
	"testing"
	"time"
)

var testSecret = []byte("unit-test-secret")

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(testSecret, "alice")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	username, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if username != "alice" {
		t.Errorf("ParseToken subject = %q, want %q", username, "alice")
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, "alice")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ParseToken([]byte("other-secret"), token); err != ErrInvalidToken {
		t.Errorf("ParseToken with wrong secret: got %v, want ErrInvalidToken", err)
	}
}

func TestParseTokenGarbage(t *testing.T) {
	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		if _, err := ParseToken(testSecret, tokenString); err != ErrInvalidToken {
			t.Errorf("ParseToken(%q): got %v, want ErrInvalidToken", tokenString, err)
		}
	}
}

func TestParseTokenMissingSubject(t *testing.T) {
	token, err := generateTokenAt(testSecret, "", time.Now())
	if err != nil {
		t.Fatalf("generateTokenAt: %v", err)
	}

	if _, err := ParseToken(testSecret, token); err != ErrInvalidToken {
		t.Errorf("ParseToken with empty subject: got %v, want ErrInvalidToken", err)
	}
}

func TestTokenLifetime(t *testing.T) {
	tests := []struct {
		name     string
		issuedAt time.Time
		wantErr  bool
	}{
		{"fresh token", time.Now(), false},
		{"issued 23h ago", time.Now().Add(-23 * time.Hour), false},
		{"issued 25h ago", time.Now().Add(-25 * time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := generateTokenAt(testSecret, "alice", tt.issuedAt)
			if err != nil {
				t.Fatalf("generateTokenAt: %v", err)
			}

			_, err = ParseToken(testSecret, token)
			if tt.wantErr && err == nil {
				t.Error("expected expired token error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
