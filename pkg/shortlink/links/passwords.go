package links

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/truong-le-ofs/short-link/pkg/shortlink/gate"
	"github.com/truong-le-ofs/short-link/pkg/shortlink/models"
)

// CreatePasswordRequest represents the request to add a password protection.
// Both bounds are optional; omitting both makes the protection permanent.
type CreatePasswordRequest struct {
	Password  string     `json:"password" binding:"required,min=1"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
}

// AddPassword adds a password protection to a shortlink
// @Summary Add a password protection
// @Description Protect a shortlink with a password, optionally only during a time window
// @Tags passwords
// @Accept json
// @Produce json
// @Param id path string true "Shortlink ID"
// @Param request body CreatePasswordRequest true "Password details"
// @Success 201 {object} models.PasswordProtection
// @Failure 400 {object} map[string]string "Invalid time window"
// @Failure 404 {object} map[string]string "Shortlink not found"
// @Security BearerAuth
// @Router /shortlinks/{id}/passwords [post]
func (h *Handler) AddPassword(c *gin.Context) {
	link, ok := h.ownedLink(c, c.Param("id"))
	if !ok {
		return
	}

	var req CreatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.StartTime != nil && req.EndTime != nil && !req.StartTime.Before(*req.EndTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Start time must be before end time"})
		return
	}

	hash, err := gate.HashSecret(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password"})
		return
	}

	protection := models.PasswordProtection{
		LinkID:    link.ID,
		Hash:      hash,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := h.db.Create(&protection).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create password protection"})
		return
	}

	c.JSON(http.StatusCreated, protection)
}

// ListPasswords returns a shortlink's password protections without hashes
// @Summary List password protections
// @Description Get all password protections of a shortlink; hashes are never serialized
// @Tags passwords
// @Produce json
// @Param id path string true "Shortlink ID"
// @Success 200 {array} models.PasswordProtection
// @Failure 404 {object} map[string]string "Shortlink not found"
// @Security BearerAuth
// @Router /shortlinks/{id}/passwords [get]
func (h *Handler) ListPasswords(c *gin.Context) {
	link, ok := h.ownedLink(c, c.Param("id"))
	if !ok {
		return
	}

	var protections []models.PasswordProtection
	if err := h.db.Where("link_id = ?", link.ID).Order("created_at DESC").Find(&protections).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch password protections"})
		return
	}

	c.JSON(http.StatusOK, protections)
}

// DeletePassword removes a password protection
// @Summary Delete a password protection
// @Description Remove a password protection from a shortlink
// @Tags passwords
// @Produce json
// @Param id path string true "Password protection ID"
// @Success 200 {object} map[string]string "Password protection deleted"
// @Failure 404 {object} map[string]string "Password protection not found"
// @Security BearerAuth
// @Router /passwords/{id} [delete]
func (h *Handler) DeletePassword(c *gin.Context) {
	var protection models.PasswordProtection
	if err := h.db.First(&protection, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Password protection not found"})
		return
	}
	if _, ok := h.ownedLink(c, protection.LinkID); !ok {
		return
	}

	if err := h.db.Delete(&protection).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete password protection"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password protection deleted"})
}
