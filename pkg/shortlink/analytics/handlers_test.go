package analytics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/truong-le-ofs/short-link/pkg/shortlink/auth"
	"github.com/truong-le-ofs/short-link/pkg/shortlink/models"
)

func setupAnalyticsRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	api.Use(func(c *gin.Context) {
		c.Set(auth.ContextKeyUserID, userID)
		c.Next()
	})
	NewHandler(db).RegisterRoutes(api)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLinkAnalyticsEndpoint(t *testing.T) {
	db := setupTestDB(t)
	user := models.User{Email: "owner@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	link := models.Link{ShortCode: "an0001", TargetURL: "https://example.com", UserID: &user.ID}
	require.NoError(t, db.Create(&link).Error)
	seedAccess(t, db, link.ID, "127.0.0.1", "curl/8.4.0", "", "Local", time.Now())

	w := get(setupAnalyticsRouter(db, user.ID), "/api/shortlinks/"+link.ID+"/analytics")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stats LinkStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.TotalAccess)
	assert.Equal(t, int64(1), stats.UniqueIPs)
}

func TestLinkAnalyticsForeignLinkIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	owner := models.User{Email: "owner@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&owner).Error)
	other := models.User{Email: "other@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&other).Error)
	link := models.Link{ShortCode: "an0002", TargetURL: "https://example.com", UserID: &owner.ID}
	require.NoError(t, db.Create(&link).Error)

	w := get(setupAnalyticsRouter(db, other.ID), "/api/shortlinks/"+link.ID+"/analytics")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAccessLogsEndpointMasksIPs(t *testing.T) {
	db := setupTestDB(t)
	user := models.User{Email: "owner@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	link := models.Link{ShortCode: "an0003", TargetURL: "https://example.com", UserID: &user.ID}
	require.NoError(t, db.Create(&link).Error)
	seedAccess(t, db, link.ID, "203.0.113.9", "curl/8.4.0", "", "Unknown", time.Now())

	w := get(setupAnalyticsRouter(db, user.ID), "/api/shortlinks/"+link.ID+"/logs")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "203.0.113.xxx")
	assert.NotContains(t, w.Body.String(), "203.0.113.9")
}

func TestOverviewEndpoint(t *testing.T) {
	db := setupTestDB(t)
	user := models.User{Email: "owner@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	link := models.Link{ShortCode: "an0004", TargetURL: "https://example.com", UserID: &user.ID}
	require.NoError(t, db.Create(&link).Error)
	seedAccess(t, db, link.ID, "127.0.0.1", "", "", "Local", time.Now())

	w := get(setupAnalyticsRouter(db, user.ID), "/api/analytics/overview")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stats UserStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.TotalAccess)
	assert.Equal(t, int64(1), stats.TotalShortlinks)
}
