package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"carteira/internal/config"
	apperrors "carteira/internal/errors"
	"carteira/internal/logger"
	"carteira/internal/middleware"
	"carteira/internal/models"
	"carteira/internal/validator"
)

const testUserID = "0190d2c4-0000-7000-8000-000000000001"

// --- mock services ---

type mockUserService struct {
	registerFn              func(username, password, confirm string) (*models.User, error)
	authenticateFn          func(username, password string) (*models.User, error)
	getUserByIDFn           func(id string) (*models.User, error)
	storeRefreshTokenHashFn func(userID, tokenHash string) error
	getRefreshTokenHashFn   func(userID string) (string, error)
	clearRefreshTokenHashFn func(userID string) error
}

func (m *mockUserService) Register(username, password, confirm string) (*models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(username, password, confirm)
	}
	return &models.User{}, nil
}

func (m *mockUserService) Authenticate(username, password string) (*models.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(username, password)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByID(id string) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{Base: models.Base{ID: id}}, nil
}

func (m *mockUserService) StoreRefreshTokenHash(userID, tokenHash string) error {
	if m.storeRefreshTokenHashFn != nil {
		return m.storeRefreshTokenHashFn(userID, tokenHash)
	}
	return nil
}

func (m *mockUserService) GetRefreshTokenHash(userID string) (string, error) {
	if m.getRefreshTokenHashFn != nil {
		return m.getRefreshTokenHashFn(userID)
	}
	return "", nil
}

func (m *mockUserService) ClearRefreshTokenHash(userID string) error {
	if m.clearRefreshTokenHashFn != nil {
		return m.clearRefreshTokenHashFn(userID)
	}
	return nil
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
	config.Set(&config.Config{
		JWTSecret:        "test-secret",
		JWTExpirationDur: 15 * time.Minute,
		JWTRefreshExpDur: time.Hour,
	})
}

func setupAuthRouter(handler *AuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/auth/register", handler.Register)
	r.POST("/auth/login", handler.Login)
	r.POST("/auth/refresh", handler.Refresh)
	r.POST("/auth/logout", injectUserID(testUserID), handler.Logout)
	return r
}

func injectUserID(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %s, got %v", code, errObj["code"])
	}
}

// --- tests ---

func TestAuthHandler_Register(t *testing.T) {
	t.Run("returns 201 with tokens", func(t *testing.T) {
		var storedHash string
		svc := &mockUserService{
			registerFn: func(username, password, confirm string) (*models.User, error) {
				if username != "ana" || password != "x" || confirm != "x" {
					t.Errorf("unexpected args %q %q %q", username, password, confirm)
				}
				return &models.User{Base: models.Base{ID: testUserID}, Username: username}, nil
			},
			storeRefreshTokenHashFn: func(_ string, hash string) error {
				storedHash = hash
				return nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(svc))

		rec := doRequest(r, "POST", "/auth/register", `{"username":"ana","password":"x","confirm_password":"x"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["token"] == "" || result["token"] == nil {
			t.Error("expected non-empty token")
		}
		refresh, _ := result["refresh_token"].(string)
		if refresh == "" {
			t.Fatal("expected non-empty refresh_token")
		}
		if storedHash != middleware.HashToken(refresh) {
			t.Error("expected hash of the returned refresh token to be stored")
		}
		user := result["user"].(map[string]interface{})
		if user["username"] != "ana" {
			t.Errorf("expected username ana, got %v", user["username"])
		}
	})

	t.Run("returns 400 on password mismatch", func(t *testing.T) {
		svc := &mockUserService{
			registerFn: func(_, _, _ string) (*models.User, error) {
				return nil, apperrors.ErrPasswordMismatch
			},
		}
		r := setupAuthRouter(NewAuthHandler(svc))

		rec := doRequest(r, "POST", "/auth/register", `{"username":"ana","password":"x","confirm_password":"y"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "PASSWORD_MISMATCH")
		if msg := result["error"].(map[string]interface{})["message"]; msg != "As senhas não coincidem." {
			t.Errorf("unexpected message %v", msg)
		}
	})

	t.Run("returns 409 on duplicate username", func(t *testing.T) {
		svc := &mockUserService{
			registerFn: func(_, _, _ string) (*models.User, error) {
				return nil, apperrors.ErrDuplicateUsername
			},
		}
		r := setupAuthRouter(NewAuthHandler(svc))

		rec := doRequest(r, "POST", "/auth/register", `{"username":"ana","password":"x","confirm_password":"x"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_USERNAME")
	})

	t.Run("returns 400 on malformed JSON", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockUserService{}))

		rec := doRequest(r, "POST", "/auth/register", `{bad json}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns 200 with tokens", func(t *testing.T) {
		svc := &mockUserService{
			authenticateFn: func(username, _ string) (*models.User, error) {
				return &models.User{Base: models.Base{ID: testUserID}, Username: username}, nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(svc))

		rec := doRequest(r, "POST", "/auth/login", `{"username":"ana","password":"x"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["token"] == nil || result["refresh_token"] == nil {
			t.Errorf("expected both tokens, got %v", result)
		}
	})

	t.Run("returns 401 on bad credentials", func(t *testing.T) {
		svc := &mockUserService{
			authenticateFn: func(_, _ string) (*models.User, error) {
				return nil, apperrors.ErrInvalidCredentials
			},
		}
		r := setupAuthRouter(NewAuthHandler(svc))

		rec := doRequest(r, "POST", "/auth/login", `{"username":"ana","password":"nope"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "INVALID_CREDENTIALS")
		if msg := result["error"].(map[string]interface{})["message"]; msg != "Usuário ou senha inválidos." {
			t.Errorf("unexpected message %v", msg)
		}
	})

	t.Run("returns 500 when refresh hash cannot be stored", func(t *testing.T) {
		svc := &mockUserService{
			authenticateFn: func(username, _ string) (*models.User, error) {
				return &models.User{Base: models.Base{ID: testUserID}, Username: username}, nil
			},
			storeRefreshTokenHashFn: func(_, _ string) error {
				return apperrors.ErrInternalServer
			},
		}
		r := setupAuthRouter(NewAuthHandler(svc))

		rec := doRequest(r, "POST", "/auth/login", `{"username":"ana","password":"x"}`)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	user := &models.User{Base: models.Base{ID: testUserID}, Username: "ana"}
	refresh, err := middleware.GenerateRefreshToken(user)
	if err != nil {
		t.Fatalf("failed to generate refresh token: %v", err)
	}
	access, err := middleware.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("failed to generate access token: %v", err)
	}

	t.Run("returns new tokens when hash matches", func(t *testing.T) {
		var rotated string
		svc := &mockUserService{
			getRefreshTokenHashFn: func(_ string) (string, error) {
				return middleware.HashToken(refresh), nil
			},
			getUserByIDFn: func(_ string) (*models.User, error) { return user, nil },
			storeRefreshTokenHashFn: func(_, hash string) error {
				rotated = hash
				return nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(svc))

		rec := doRequest(r, "POST", "/auth/refresh", `{"refresh_token":"`+refresh+`"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		newRefresh, _ := result["refresh_token"].(string)
		if newRefresh == "" || newRefresh == refresh {
			t.Error("expected a new refresh token")
		}
		if rotated != middleware.HashToken(newRefresh) {
			t.Error("expected the new refresh token hash to be stored")
		}
	})

	t.Run("returns 401 after logout", func(t *testing.T) {
		svc := &mockUserService{
			getRefreshTokenHashFn: func(_ string) (string, error) { return "", nil },
		}
		r := setupAuthRouter(NewAuthHandler(svc))

		rec := doRequest(r, "POST", "/auth/refresh", `{"refresh_token":"`+refresh+`"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_TOKEN")
	})

	t.Run("returns 401 for an access token", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockUserService{}))

		rec := doRequest(r, "POST", "/auth/refresh", `{"refresh_token":"`+access+`"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("returns 400 without token", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockUserService{}))

		rec := doRequest(r, "POST", "/auth/refresh", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	cleared := ""
	svc := &mockUserService{
		clearRefreshTokenHashFn: func(userID string) error {
			cleared = userID
			return nil
		},
	}
	r := setupAuthRouter(NewAuthHandler(svc))

	rec := doRequest(r, "POST", "/auth/logout", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if cleared != testUserID {
		t.Errorf("expected refresh hash of %s to be cleared, got %q", testUserID, cleared)
	}
}
