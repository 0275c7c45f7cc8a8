package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"gnroof/internal/models"
	"gnroof/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

const testSigningKey = "test-signing-key"

// mockAuthRepo is a lightweight in-test mock for repository.Authorization.
type mockAuthRepo struct {
	CreateFn        func(username, hash string) (int, error)
	GetByUsernameFn func(username string) (*models.User, error)

	createCalls []struct {
		username string
		hash     string
	}
	getCalls []string
}

func (m *mockAuthRepo) Create(_ context.Context, username, hash string) (int, error) {
	m.createCalls = append(m.createCalls, struct {
		username string
		hash     string
	}{username: username, hash: hash})
	return m.CreateFn(username, hash)
}

func (m *mockAuthRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	m.getCalls = append(m.getCalls, username)
	return m.GetByUsernameFn(username)
}

func newTestAuth(repo repository.Authorization) *AuthService {
	return NewAuthService(repo, testSigningKey, time.Hour)
}

func TestAuthService_SignUp_SuccessHashesPasswordAndCallsRepo(t *testing.T) {
	mock := &mockAuthRepo{
		CreateFn: func(username, hash string) (int, error) {
			return 42, nil
		},
	}
	svc := newTestAuth(mock)

	id, err := svc.SignUp(context.Background(), " alice ", "s3cr3t")
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}

	if len(mock.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(mock.createCalls))
	}
	call := mock.createCalls[0]
	if call.username != "alice" {
		t.Errorf("expected trimmed username 'alice', got %q", call.username)
	}
	if call.hash == "s3cr3t" {
		t.Errorf("expected hashed password not equal to raw password")
	}
	if err := verifyPassword(call.hash, "s3cr3t"); err != nil {
		t.Errorf("stored hash does not verify with original password: %v", err)
	}
}

func TestAuthService_SignUp_RejectsEmptyInput(t *testing.T) {
	tests := []struct {
		name, username, password string
	}{
		{"empty password", "bob", "   "},
		{"empty username", "  ", "pw"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockAuthRepo{
				CreateFn: func(username, hash string) (int, error) {
					t.Fatal("Create should not be called")
					return 0, nil
				},
			}
			_, err := newTestAuth(mock).SignUp(context.Background(), tt.username, tt.password)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("got %v, want ErrValidation", err)
			}
		})
	}
}

func TestAuthService_SignUp_UserExistsPassesThrough(t *testing.T) {
	mock := &mockAuthRepo{
		CreateFn: func(username, hash string) (int, error) {
			return 0, repository.ErrUserExists
		},
	}
	_, err := newTestAuth(mock).SignUp(context.Background(), "carl", "pass123")
	if !errors.Is(err, repository.ErrUserExists) {
		t.Fatalf("got %v, want ErrUserExists", err)
	}
}

func TestAuthService_GenerateToken_Success(t *testing.T) {
	hash, err := hashPassword("letmein")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	user := &models.User{ID: 7, Username: "diana", PasswordHash: hash}

	mock := &mockAuthRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			if username != "diana" {
				t.Fatalf("expected username 'diana', got %q", username)
			}
			return user, nil
		},
	}
	svc := newTestAuth(mock)

	token, err := svc.GenerateToken(context.Background(), "diana", "letmein")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	id, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if id.UserID != 7 || id.Username != "diana" {
		t.Fatalf("got %+v, want {7 diana}", id)
	}
}

func TestAuthService_GenerateToken_Failures(t *testing.T) {
	correctHash, err := hashPassword("correct")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	dbErr := errors.New("query failed")

	tests := []struct {
		name    string
		get     func(string) (*models.User, error)
		wantErr error
	}{
		{
			name:    "user not found",
			get:     func(string) (*models.User, error) { return nil, nil },
			wantErr: ErrUserNotFound,
		},
		{
			name: "wrong password",
			get: func(string) (*models.User, error) {
				return &models.User{ID: 1, Username: "eve", PasswordHash: correctHash}, nil
			},
			wantErr: ErrInvalidPassword,
		},
		{
			name:    "repo error",
			get:     func(string) (*models.User, error) { return nil, dbErr },
			wantErr: dbErr,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuth(&mockAuthRepo{GetByUsernameFn: tt.get})
			_, err := svc.GenerateToken(context.Background(), "eve", "wrong")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	now := time.Now()
	sign := func(key []byte, claims *Claims) string {
		t.Helper()
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
		if err != nil {
			t.Fatalf("SignedString failed: %v", err)
		}
		return s
	}

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey failed: %v", err)
	}
	rs, err := jwt.NewWithClaims(jwt.SigningMethodRS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))},
		UserID:           12,
	}).SignedString(privateKey)
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"malformed", "not-a-jwt"},
		{"other key", sign([]byte("different-key"), &Claims{
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))},
			UserID:           5,
		})},
		{"expired", sign([]byte(testSigningKey), &Claims{
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour))},
			UserID:           11,
		})},
		{"unexpected alg", rs},
	}

	svc := newTestAuth(&mockAuthRepo{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(tt.token)
			if !errors.Is(err, ErrNotAuthenticated) {
				t.Fatalf("got %v, want ErrNotAuthenticated", err)
			}
		})
	}
}

func TestNewAuthService_DefaultTTL(t *testing.T) {
	svc := NewAuthService(&mockAuthRepo{}, testSigningKey, 0)
	if svc.tokenTTL != defaultTokenTTL {
		t.Fatalf("got %v, want %v", svc.tokenTTL, defaultTokenTTL)
	}
}
