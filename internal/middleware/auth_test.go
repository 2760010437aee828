package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"elearn_backend/internal/config"
	"elearn_backend/internal/middleware"
	"elearn_backend/internal/model"
	"elearn_backend/internal/repository"
	"elearn_backend/internal/util"
	"elearn_backend/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newAuthFixture(t *testing.T) (*config.Config, *gorm.DB, *repository.UserRepository) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-key-for-unit-tests"
	cfg.JWT.ExpireTime = time.Hour

	return cfg, db, repository.NewUserRepository(db)
}

func createUser(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()

	user := &model.User{FullName: "Test User", Email: "student@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

// whoami responds with the resolved user's email, or "anonymous" when no
// identity was attached to the context.
func whoami(c *gin.Context) {
	if user := util.CurrentUser(c); user != nil {
		c.String(http.StatusOK, user.Email)
		return
	}
	c.String(http.StatusOK, "anonymous")
}

func performRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	cfg, db, userRepo := newAuthFixture(t)
	user := createUser(t, db)
	token, err := util.GenerateJWT(user, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/whoami", middleware.AuthMiddleware(cfg, userRepo), whoami)

	w := performRequest(router, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, user.Email, w.Body.String())
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	cfg, _, userRepo := newAuthFixture(t)

	router := gin.New()
	router.GET("/whoami", middleware.AuthMiddleware(cfg, userRepo), whoami)

	w := performRequest(router, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	cfg, _, userRepo := newAuthFixture(t)

	router := gin.New()
	router.GET("/whoami", middleware.AuthMiddleware(cfg, userRepo), whoami)

	w := performRequest(router, "not-a-token")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	cfg, db, userRepo := newAuthFixture(t)
	user := createUser(t, db)
	token, err := util.GenerateJWT(user, "some-other-secret", cfg.JWT.ExpireTime)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/whoami", middleware.AuthMiddleware(cfg, userRepo), whoami)

	w := performRequest(router, token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_VanishedUser(t *testing.T) {
	cfg, db, userRepo := newAuthFixture(t)
	user := createUser(t, db)
	token, err := util.GenerateJWT(user, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	require.NoError(t, err)

	// Token stays syntactically valid after the account is gone; the
	// middleware must still reject it.
	require.NoError(t, db.Delete(user).Error)

	router := gin.New()
	router.GET("/whoami", middleware.AuthMiddleware(cfg, userRepo), whoami)

	w := performRequest(router, token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTryAuthMiddleware_Anonymous(t *testing.T) {
	cfg, _, userRepo := newAuthFixture(t)

	router := gin.New()
	router.GET("/whoami", middleware.TryAuthMiddleware(cfg, userRepo), whoami)

	w := performRequest(router, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "anonymous", w.Body.String())
}

func TestTryAuthMiddleware_InvalidTokenPassesThrough(t *testing.T) {
	cfg, _, userRepo := newAuthFixture(t)

	router := gin.New()
	router.GET("/whoami", middleware.TryAuthMiddleware(cfg, userRepo), whoami)

	w := performRequest(router, "garbage")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "anonymous", w.Body.String())
}

func TestTryAuthMiddleware_ValidTokenResolvesUser(t *testing.T) {
	cfg, db, userRepo := newAuthFixture(t)
	user := createUser(t, db)
	token, err := util.GenerateJWT(user, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/whoami", middleware.TryAuthMiddleware(cfg, userRepo), whoami)

	w := performRequest(router, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, user.Email, w.Body.String())
}
