package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contour/models"
	userSvc "contour/services/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserService records the user handed to Register.
type stubUserService struct {
	registered *models.User
}

func (s *stubUserService) Register(ctx context.Context, user *models.User) (*userSvc.AuthResponse, error) {
	s.registered = user
	return &userSvc.AuthResponse{Token: "token", User: user}, nil
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (*userSvc.AuthResponse, error) {
	return nil, nil
}

func (s *stubUserService) Revoke(ctx context.Context, token string) error { return nil }

func (s *stubUserService) Get(ctx context.Context, id string) (*models.User, error) {
	return nil, nil
}

func (s *stubUserService) ListAll(ctx context.Context) ([]models.User, error) { return nil, nil }

func (s *stubUserService) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error) {
	return nil, nil
}

func (s *stubUserService) Delete(ctx context.Context, id string) error { return nil }

func registerRequestWith(t *testing.T, svc userSvc.UserService, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := &UserHandler{Service: svc}
	router.POST("/api/users/register", handler.Register)

	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterBindsCredentials(t *testing.T) {
	svc := &stubUserService{}

	w := registerRequestWith(t, svc,
		`{"email":"alice@example.com","password":"supersecret1","firstName":"Alice"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	// The stored model never deserializes its password field, so the handler
	// must carry the credential over from the request payload itself.
	require.NotNil(t, svc.registered)
	assert.Equal(t, "alice@example.com", svc.registered.Email)
	assert.Equal(t, "supersecret1", svc.registered.Password)
	assert.Equal(t, "Alice", svc.registered.FirstName)
}

func TestRegisterIgnoresClientRole(t *testing.T) {
	svc := &stubUserService{}

	w := registerRequestWith(t, svc,
		`{"email":"mallory@example.com","password":"supersecret1","role":"admin"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.registered)
	// The register payload has no role field; nothing the client sends can
	// reach the model's Role.
	assert.Empty(t, svc.registered.Role)
}

func TestRegisterMissingPasswordReturns400(t *testing.T) {
	w := registerRequestWith(t, &stubUserService{}, `{"email":"alice@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterMalformedEmailReturns400(t *testing.T) {
	w := registerRequestWith(t, &stubUserService{}, `{"email":"not-an-email","password":"supersecret1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
