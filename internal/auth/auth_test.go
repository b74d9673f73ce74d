package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"zfast-backend/internal/database/models"
	apperrors "zfast-backend/internal/errors"
	"zfast-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-signing-key"

func testConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret:  testSecret,
		TokenTTL:   24 * time.Hour,
		BcryptCost: bcrypt.MinCost,
	}
}

func testAdmin(t *testing.T, password string) *models.Admin {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.Admin{ID: 1, Username: "admin", PasswordHash: string(hash)}
}

func newTestService(t *testing.T) (*AuthService, *mocks.MockAdminRepositoryInterface) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAdminRepositoryInterface(ctrl)
	service, err := NewAuthService(testConfig(), repo)
	require.NoError(t, err)
	return service, repo
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, testConfig().ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		config := testConfig()
		config.JWTSecret = ""

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrJWTSecretMissing)
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		config := testConfig()
		config.TokenTTL = 0

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.True(t, apperrors.IsConfiguration(err))
		assert.Contains(t, err.Error(), "token TTL must be positive")
	})

	t.Run("bcrypt cost out of range", func(t *testing.T) {
		config := testConfig()
		config.BcryptCost = 50

		assert.Error(t, config.ValidateConfig())
	})

	t.Run("zero cost falls back to default", func(t *testing.T) {
		config := testConfig()
		config.BcryptCost = 0

		assert.NoError(t, config.ValidateConfig())
		assert.Equal(t, bcrypt.DefaultCost, config.cost())
	})
}

func TestJWTOperations(t *testing.T) {
	service, _ := newTestService(t)
	admin := &models.Admin{ID: 7, Username: "admin", TokenVersion: 3}

	t.Run("generate and validate round trip", func(t *testing.T) {
		token, err := service.GenerateJWT(admin)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.ValidateJWT(token)
		require.NoError(t, err)
		assert.Equal(t, uint(7), claims.AdminID)
		assert.Equal(t, "admin", claims.Username)
		assert.Equal(t, 3, claims.Version)
		assert.Equal(t, "7", claims.Subject)
		assert.Equal(t, defaultIssuer, claims.Issuer)
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
	})

	t.Run("tampered token", func(t *testing.T) {
		token, err := service.GenerateJWT(admin)
		require.NoError(t, err)

		_, err = service.ValidateJWT(token + "x")
		assert.Error(t, err)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other, _ := newTestService(t)
		other.config.JWTSecret = "another-secret"
		token, err := other.GenerateJWT(admin)
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("none algorithm is rejected", func(t *testing.T) {
		claims := &AuthClaims{AdminID: 7, Username: "admin", RegisteredClaims: jwt.RegisteredClaims{Issuer: defaultIssuer}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired, _ := newTestService(t)
		expired.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
		token, err := expired.GenerateJWT(admin)
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "admin").Return(testAdmin(t, "zfast2024"), nil)

		response, err := service.Login(t.Context(), "admin", "zfast2024")
		require.NoError(t, err)
		assert.Equal(t, "admin", response.Username)

		claims, err := service.ValidateJWT(response.Token)
		require.NoError(t, err)
		assert.Equal(t, uint(1), claims.AdminID)
	})

	t.Run("missing fields", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.Login(t.Context(), "admin", "")
		assert.ErrorIs(t, err, apperrors.ErrMissingCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "admin").Return(testAdmin(t, "zfast2024"), nil)

		_, err := service.Login(t.Context(), "admin", "wrong")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Login(t.Context(), "ghost", "zfast2024")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("store failure", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "admin").Return(nil, errors.New("database is locked"))

		_, err := service.Login(t.Context(), "admin", "zfast2024")
		assert.Error(t, err)
		assert.False(t, apperrors.IsAuthentication(err))
	})
}

func TestAuthenticate(t *testing.T) {
	t.Run("current version is accepted", func(t *testing.T) {
		service, repo := newTestService(t)
		admin := testAdmin(t, "zfast2024")
		token, err := service.GenerateJWT(admin)
		require.NoError(t, err)
		repo.EXPECT().GetByID(gomock.Any(), uint(1)).Return(admin, nil)

		claims, err := service.Authenticate(t.Context(), token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("stale version is rejected", func(t *testing.T) {
		service, repo := newTestService(t)
		admin := testAdmin(t, "zfast2024")
		token, err := service.GenerateJWT(admin)
		require.NoError(t, err)

		bumped := *admin
		bumped.TokenVersion = 1
		repo.EXPECT().GetByID(gomock.Any(), uint(1)).Return(&bumped, nil)

		_, err = service.Authenticate(t.Context(), token)
		assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
	})

	t.Run("deleted admin is rejected", func(t *testing.T) {
		service, repo := newTestService(t)
		token, err := service.GenerateJWT(testAdmin(t, "zfast2024"))
		require.NoError(t, err)
		repo.EXPECT().GetByID(gomock.Any(), uint(1)).Return(nil, gorm.ErrRecordNotFound)

		_, err = service.Authenticate(t.Context(), token)
		assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
	})

	t.Run("garbage token", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.Authenticate(t.Context(), "not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
	})
}

func TestChangePassword(t *testing.T) {
	t.Run("success bumps version and returns fresh token", func(t *testing.T) {
		service, repo := newTestService(t)
		admin := testAdmin(t, "zfast2024")
		repo.EXPECT().GetByID(gomock.Any(), uint(1)).Return(admin, nil)
		repo.EXPECT().UpdatePassword(gomock.Any(), uint(1), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uint, hash string) (*models.Admin, error) {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-password-1")))
				updated := *admin
				updated.PasswordHash = hash
				updated.TokenVersion = 1
				return &updated, nil
			})

		response, err := service.ChangePassword(t.Context(), 1, &ChangePasswordRequest{
			CurrentPassword: "zfast2024",
			NewPassword:     "new-password-1",
		})
		require.NoError(t, err)
		assert.True(t, response.Success)

		claims, err := service.ValidateJWT(response.Token)
		require.NoError(t, err)
		assert.Equal(t, 1, claims.Version)
	})

	t.Run("wrong current password", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetByID(gomock.Any(), uint(1)).Return(testAdmin(t, "zfast2024"), nil)

		_, err := service.ChangePassword(t.Context(), 1, &ChangePasswordRequest{
			CurrentPassword: "nope",
			NewPassword:     "new-password-1",
		})
		assert.ErrorIs(t, err, apperrors.ErrCurrentPasswordIncorrect)
	})

	t.Run("new password too short", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.ChangePassword(t.Context(), 1, &ChangePasswordRequest{
			CurrentPassword: "zfast2024",
			NewPassword:     "short",
		})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("new password too long", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.ChangePassword(t.Context(), 1, &ChangePasswordRequest{
			CurrentPassword: "zfast2024",
			NewPassword:     string(bytes.Repeat([]byte("a"), 73)),
		})
		assert.True(t, apperrors.IsValidation(err))
	})
}

func setupRouter(service *AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewAuthHandler(service)
	middleware := NewAuthMiddleware(service)

	router.POST("/api/auth/login", handler.Login)
	router.GET("/api/auth/verify", middleware.RequireAuth(), handler.Verify)
	router.POST("/api/auth/change-password", middleware.RequireAuth(), handler.ChangePassword)
	return router
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthHandlers(t *testing.T) {
	t.Run("login success", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "admin").Return(testAdmin(t, "zfast2024"), nil)
		router := setupRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(`{"username":"admin","password":"zfast2024"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "admin", body["username"])
		assert.NotEmpty(t, body["token"])
	})

	t.Run("login without password", func(t *testing.T) {
		service, _ := newTestService(t)
		router := setupRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(`{"username":"admin"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Username and password required", decodeBody(t, w)["error"])
	})

	t.Run("login with wrong password", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "admin").Return(testAdmin(t, "zfast2024"), nil)
		router := setupRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(`{"username":"admin","password":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid credentials", decodeBody(t, w)["error"])
	})

	t.Run("verify without header", func(t *testing.T) {
		service, _ := newTestService(t)
		router := setupRouter(service)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Unauthorized", decodeBody(t, w)["error"])
	})

	t.Run("verify with non bearer header", func(t *testing.T) {
		service, _ := newTestService(t)
		router := setupRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
		req.Header.Set("Authorization", "Basic YWRtaW46emZhc3Q=")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Unauthorized", decodeBody(t, w)["error"])
	})

	t.Run("verify with invalid token", func(t *testing.T) {
		service, _ := newTestService(t)
		router := setupRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
		req.Header.Set("Authorization", "Bearer nonsense")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Token invalid or expired", decodeBody(t, w)["error"])
	})

	t.Run("verify with valid token", func(t *testing.T) {
		service, repo := newTestService(t)
		admin := testAdmin(t, "zfast2024")
		token, err := service.GenerateJWT(admin)
		require.NoError(t, err)
		repo.EXPECT().GetByID(gomock.Any(), uint(1)).Return(admin, nil)
		router := setupRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["valid"])
		assert.Equal(t, "admin", body["username"])
	})

	t.Run("change password with wrong current", func(t *testing.T) {
		service, repo := newTestService(t)
		admin := testAdmin(t, "zfast2024")
		token, err := service.GenerateJWT(admin)
		require.NoError(t, err)
		repo.EXPECT().GetByID(gomock.Any(), uint(1)).Return(admin, nil).Times(2)
		router := setupRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/change-password",
			bytes.NewBufferString(`{"currentPassword":"nope","newPassword":"new-password-1"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Current password is incorrect", decodeBody(t, w)["error"])
	})
}
