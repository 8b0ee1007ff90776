package analytics

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/truong-le-ofs/short-link/pkg/shortlink/auth"
	"github.com/truong-le-ofs/short-link/pkg/shortlink/models"
)

// Handler serves owner-facing analytics endpoints
type Handler struct {
	db    *gorm.DB
	stats *Stats
}

// NewHandler creates a new analytics handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db, stats: NewStats(db)}
}

// ownedLink loads a link and verifies the requesting user owns it.
func (h *Handler) ownedLink(c *gin.Context) (*models.Link, bool) {
	userID, _ := auth.GetUserID(c)

	var link models.Link
	if err := h.db.First(&link, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shortlink not found"})
		return nil, false
	}
	if link.UserID == nil || *link.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shortlink not found"})
		return nil, false
	}
	return &link, true
}

// LinkAnalytics returns aggregate stats for one link
// @Summary Get shortlink analytics
// @Description Get access totals, unique IPs, top countries, daily counts and device breakdown for a shortlink
// @Tags analytics
// @Produce json
// @Param id path string true "Shortlink ID"
// @Success 200 {object} LinkStats
// @Failure 404 {object} map[string]string "Shortlink not found"
// @Security BearerAuth
// @Router /shortlinks/{id}/analytics [get]
func (h *Handler) LinkAnalytics(c *gin.Context) {
	link, ok := h.ownedLink(c)
	if !ok {
		return
	}

	stats, err := h.stats.ForLink(c.Request.Context(), link.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// AccessLogs returns one page of a link's access history with masked IPs
// @Summary Get access logs
// @Description Get paginated access logs for a shortlink; IP addresses are masked for privacy
// @Tags analytics
// @Produce json
// @Param id path string true "Shortlink ID"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} LogPage
// @Failure 404 {object} map[string]string "Shortlink not found"
// @Security BearerAuth
// @Router /shortlinks/{id}/logs [get]
func (h *Handler) AccessLogs(c *gin.Context) {
	link, ok := h.ownedLink(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	logs, err := h.stats.Logs(c.Request.Context(), link.ID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load access logs"})
		return
	}
	c.JSON(http.StatusOK, logs)
}

// Overview returns aggregate stats across all of the user's links
// @Summary Get user analytics overview
// @Description Get overall access stats across every shortlink owned by the current user
// @Tags analytics
// @Produce json
// @Success 200 {object} UserStats
// @Security BearerAuth
// @Router /analytics/overview [get]
func (h *Handler) Overview(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	stats, err := h.stats.ForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// RegisterRoutes registers analytics routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/shortlinks/:id/analytics", h.LinkAnalytics)
	rg.GET("/shortlinks/:id/logs", h.AccessLogs)
	rg.GET("/analytics/overview", h.Overview)
}
