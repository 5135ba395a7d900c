package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"contour/models"
	"contour/utils"

	userRepo "contour/database/repository/user"

	"golang.org/x/crypto/bcrypt"
)

// Sentinel errors surfaced to the handler layer.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError signals malformed account input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// TokenTTL is the lifetime of issued session tokens.
const TokenTTL = 24 * time.Hour

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UserService manages accounts and sessions.
type UserService interface {
	Register(ctx context.Context, user *models.User) (*AuthResponse, error)
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	Revoke(ctx context.Context, token string) error
	Get(ctx context.Context, id string) (*models.User, error)
	ListAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

// SessionStore persists issued token hashes so the auth middleware can check
// revocation without touching the database.
type SessionStore interface {
	Save(ctx context.Context, tokenHash, userID string, ttl time.Duration) error
	Delete(ctx context.Context, tokenHash string) error
}

// RedisSessionStore keeps sessions in the dedicated auth cache.
type RedisSessionStore struct{}

func (RedisSessionStore) Save(ctx context.Context, tokenHash, userID string, ttl time.Duration) error {
	return utils.GetAuthCacheClient().Set(ctx, utils.AuthCachePrefix+tokenHash, userID, ttl).Err()
}

func (RedisSessionStore) Delete(ctx context.Context, tokenHash string) error {
	return utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+tokenHash).Err()
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Sessions SessionStore
}

// Register creates an account, hashes the password and issues a session token.
// Accounts created through the public endpoint are always plain users; admin
// promotion is a separate operation, never part of self-registration.
func (s *DefaultUserService) Register(ctx context.Context, user *models.User) (*AuthResponse, error) {
	if user.Email == "" || user.Password == "" {
		return nil, &ValidationError{Message: "email and password are required"}
	}
	if len(user.Password) < 8 {
		return nil, &ValidationError{Message: "password must be at least 8 characters"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.ID = utils.NewBusinessID("user")
	user.Password = string(hashed)
	user.Role = models.RoleUser

	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return s.issueToken(ctx, user)
}

// Login verifies credentials and issues a session token.
func (s *DefaultUserService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(ctx, user)
}

// issueToken signs a JWT and records its hash in the session store so
// revocation and middleware lookups never touch the database.
func (s *DefaultUserService) issueToken(ctx context.Context, user *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	if err := s.Sessions.Save(ctx, utils.HashToken(token), user.ID, TokenTTL); err != nil {
		return nil, fmt.Errorf("failed to cache session token: %w", err)
	}

	user.Password = ""
	return &AuthResponse{Token: token, User: user}, nil
}

// Revoke drops the token's session entry so the middleware rejects it from now on.
func (s *DefaultUserService) Revoke(ctx context.Context, token string) error {
	return s.Sessions.Delete(ctx, utils.HashToken(token))
}

func (s *DefaultUserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultUserService) ListAll(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultUserService) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error) {
	// Password and role changes go through dedicated flows, never blind patches.
	delete(fields, "password")
	delete(fields, "role")
	return s.Repo.UpdateFields(ctx, id, fields)
}

func (s *DefaultUserService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
