package redirect

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/truong-le-ofs/short-link/pkg/shortlink/gate"
	"github.com/truong-le-ofs/short-link/pkg/shortlink/models"
	"github.com/truong-le-ofs/short-link/pkg/shortlink/resolver"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func setupRedirectRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	engine := resolver.NewEngine(db, nil, zerolog.Nop())
	NewHandler(engine).RegisterRoutes(r)
	return r
}

func createLink(t *testing.T, db *gorm.DB, code, target string) models.Link {
	link := models.Link{ShortCode: code, TargetURL: target, IsActive: true}
	require.NoError(t, db.Create(&link).Error)
	return link
}

func TestRedirectFollowsTarget(t *testing.T) {
	db := setupTestDB(t)
	createLink(t, db, "abc123", "https://example.com/page")
	r := setupRedirectRouter(db)

	req := httptest.NewRequest("GET", "/s/abc123", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://example.com/page", w.Header().Get("Location"))
}

func TestRedirectUnknownCode(t *testing.T) {
	db := setupTestDB(t)
	r := setupRedirectRouter(db)

	req := httptest.NewRequest("GET", "/s/nosuch", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found or expired")
}

func TestRedirectGatedLinkServesPasswordForm(t *testing.T) {
	db := setupTestDB(t)
	link := createLink(t, db, "gated1", "https://secret.example")

	hash, err := gate.HashSecret("open-sesame")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.PasswordProtection{LinkID: link.ID, Hash: hash}).Error)

	r := setupRedirectRouter(db)
	req := httptest.NewRequest("GET", "/s/gated1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), `action="/s/gated1"`)
	assert.NotContains(t, w.Body.String(), "https://secret.example", "target stays behind the gate")
}

func TestAccessWithFormPassword(t *testing.T) {
	db := setupTestDB(t)
	link := createLink(t, db, "gated2", "https://secret.example")

	hash, err := gate.HashSecret("open-sesame")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.PasswordProtection{LinkID: link.ID, Hash: hash}).Error)

	r := setupRedirectRouter(db)
	form := url.Values{"password": {"open-sesame"}}
	req := httptest.NewRequest("POST", "/s/gated2", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res resolver.Resolution
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "https://secret.example", res.TargetURL)
	assert.False(t, res.PasswordRequired)
}

func TestAccessWithJSONPassword(t *testing.T) {
	db := setupTestDB(t)
	link := createLink(t, db, "gated3", "https://secret.example")

	hash, err := gate.HashSecret("open-sesame")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.PasswordProtection{LinkID: link.ID, Hash: hash}).Error)

	r := setupRedirectRouter(db)
	req := httptest.NewRequest("POST", "/s/gated3", strings.NewReader(`{"password":"open-sesame"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "https://secret.example")
}

func TestAccessWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	link := createLink(t, db, "gated4", "https://secret.example")

	hash, err := gate.HashSecret("open-sesame")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.PasswordProtection{LinkID: link.ID, Hash: hash}).Error)

	r := setupRedirectRouter(db)
	req := httptest.NewRequest("POST", "/s/gated4", strings.NewReader(`{"password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid password")
	assert.NotContains(t, w.Body.String(), "https://secret.example")
}

func TestAccessWithoutPasswordReportsRequirement(t *testing.T) {
	db := setupTestDB(t)
	link := createLink(t, db, "gated5", "https://secret.example")

	hash, err := gate.HashSecret("open-sesame")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.PasswordProtection{LinkID: link.ID, Hash: hash}).Error)

	r := setupRedirectRouter(db)
	req := httptest.NewRequest("POST", "/s/gated5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res resolver.Resolution
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.PasswordRequired)
	assert.Empty(t, res.TargetURL)
}
