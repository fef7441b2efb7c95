package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mcgregor/if-planner/internal/domain"
	"mcgregor/if-planner/internal/repository"
)

type fakeUserRepo struct {
	users map[string]domain.User // by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	if _, ok := r.users[user.Email]; ok {
		return primitive.NilObjectID, errors.New("user with this email already exists")
	}
	user.ID = primitive.NewObjectID()
	r.users[user.Email] = *user
	return user.ID, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "test-secret", 0)

	user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.ID.IsZero() {
		t.Error("registered user has no ID")
	}
	if user.PasswordHash != "" {
		t.Error("password hash must not leave the service")
	}

	token, loggedIn, err := svc.Login(context.Background(), "alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Errorf("login returned user %s, want %s", loggedIn.ID.Hex(), user.ID.Hex())
	}
	if token == "" {
		t.Fatal("login returned no token")
	}

	// The token must parse with the configured secret and carry the user ID.
	claims := &jwtClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims.UserID != user.ID.Hex() {
		t.Errorf("token uid = %q, want %q", claims.UserID, user.ID.Hex())
	}
	if claims.Issuer != "if-planner" {
		t.Errorf("token issuer = %q, want if-planner", claims.Issuer)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "test-secret", 0)

	if _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "hunter22"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, err := svc.Register(context.Background(), "Other Alice", "alice@example.com", "hunter33"); !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("duplicate Register() error = %v, want ErrUserAlreadyExists", err)
	}
}

func TestLoginFailures(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "test-secret", 0)
	if _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "hunter22"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "alice@example.com", "wrong"); !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("wrong password: error = %v, want ErrAuthenticationFailed", err)
	}
	if _, _, err := svc.Login(context.Background(), "nobody@example.com", "hunter22"); !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("unknown email: error = %v, want ErrAuthenticationFailed", err)
	}
}
