package links

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/truong-le-ofs/short-link/pkg/shortlink/auth"
	"github.com/truong-le-ofs/short-link/pkg/shortlink/models"
	"github.com/truong-le-ofs/short-link/pkg/shortlink/shortcode"
)

// Handler handles link management requests
type Handler struct {
	db  *gorm.DB
	gen *shortcode.Generator
}

// NewHandler creates a new links handler
func NewHandler(db *gorm.DB) *Handler {
	h := &Handler{db: db}
	h.gen = shortcode.NewGenerator(h.codeExists)
	return h
}

func (h *Handler) codeExists(code string) (bool, error) {
	var count int64
	if err := h.db.Model(&models.Link{}).Where("short_code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// isUniqueViolation reports whether an insert hit the short_code unique
// constraint. Two concurrent creates of the same code resolve here: the
// loser sees a conflict, not a server fault.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// CreateLinkRequest represents the request to create a link
type CreateLinkRequest struct {
	TargetURL   string     `json:"target_url" binding:"required,url"`
	ShortCode   string     `json:"short_code" binding:"omitempty,max=20"`
	ExpiresAt   *time.Time `json:"expires_at"`
	AccessLimit *int       `json:"access_limit" binding:"omitempty,min=1"`
	MetaTag     string     `json:"meta_tag"`
}

// UpdateLinkRequest represents the request to update a link.
// ExpiresAt and AccessLimit are raw so an explicit JSON null (clear the
// constraint) can be told apart from an absent field (leave it alone).
type UpdateLinkRequest struct {
	TargetURL   string          `json:"target_url" binding:"omitempty,url"`
	IsActive    *bool           `json:"is_active"`
	ExpiresAt   json.RawMessage `json:"expires_at"`
	AccessLimit json.RawMessage `json:"access_limit"`
	MetaTag     *string         `json:"meta_tag"`
}

func isJSONNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}

// LinkResponse represents a link in API responses
type LinkResponse struct {
	ID          string     `json:"id"`
	ShortCode   string     `json:"short_code"`
	TargetURL   string     `json:"target_url"`
	IsActive    bool       `json:"is_active"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	AccessLimit *int       `json:"access_limit,omitempty"`
	MetaTag     string     `json:"meta_tag,omitempty"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
}

func linkToResponse(link models.Link) LinkResponse {
	return LinkResponse{
		ID:          link.ID,
		ShortCode:   link.ShortCode,
		TargetURL:   link.TargetURL,
		IsActive:    link.IsActive,
		ExpiresAt:   link.ExpiresAt,
		AccessLimit: link.AccessLimit,
		MetaTag:     link.MetaTag,
		CreatedAt:   link.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:   link.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ownedLink loads a link by id and verifies the requesting user owns it.
// Foreign and missing links are indistinguishable in the response.
func (h *Handler) ownedLink(c *gin.Context, id string) (*models.Link, bool) {
	userID, _ := auth.GetUserID(c)

	var link models.Link
	if err := h.db.First(&link, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shortlink not found"})
		return nil, false
	}
	if link.UserID == nil || *link.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shortlink not found"})
		return nil, false
	}
	return &link, true
}

// Create creates a new shortlink
// @Summary Create a shortlink
// @Description Create a new shortlink with a custom or generated short code
// @Tags shortlinks
// @Accept json
// @Produce json
// @Param request body CreateLinkRequest true "Link details"
// @Success 201 {object} LinkResponse
// @Failure 400 {object} map[string]string "Validation error or short code taken"
// @Security BearerAuth
// @Router /shortlinks [post]
func (h *Handler) Create(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	var req CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	code := req.ShortCode
	if code == "" {
		generated, err := h.gen.Generate()
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to generate short code"})
			return
		}
		code = generated
	} else {
		taken, err := h.codeExists(code)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check short code"})
			return
		}
		if taken {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Short code already exists"})
			return
		}
	}

	link := models.Link{
		ShortCode:   code,
		TargetURL:   req.TargetURL,
		IsActive:    true,
		ExpiresAt:   req.ExpiresAt,
		AccessLimit: req.AccessLimit,
		MetaTag:     req.MetaTag,
		UserID:      &userID,
	}
	if err := h.db.Create(&link).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Short code already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create shortlink"})
		return
	}

	c.JSON(http.StatusCreated, linkToResponse(link))
}

// List returns the user's shortlinks
// @Summary List shortlinks
// @Description Get a paginated list of the current user's shortlinks
// @Tags shortlinks
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param short_code query string false "Filter by short code substring"
// @Param is_active query bool false "Filter by active status"
// @Success 200 {array} LinkResponse
// @Security BearerAuth
// @Router /shortlinks [get]
func (h *Handler) List(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	query := h.db.Where("user_id = ?", userID).Order("created_at DESC")

	if code := c.Query("short_code"); code != "" {
		query = query.Where("short_code LIKE ?", "%"+code+"%")
	}
	if isActive := c.Query("is_active"); isActive != "" {
		query = query.Where("is_active = ?", isActive == "true")
	}

	limit := 10
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}
	page := 1
	if p := c.Query("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}

	var links []models.Link
	if err := query.Offset((page - 1) * limit).Limit(limit).Find(&links).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shortlinks"})
		return
	}

	responses := make([]LinkResponse, len(links))
	for i, link := range links {
		responses[i] = linkToResponse(link)
	}

	c.JSON(http.StatusOK, responses)
}

// CheckCode reports whether a short code is still available
// @Summary Check short code availability
// @Description Check whether a custom short code is free to register
// @Tags shortlinks
// @Produce json
// @Param code path string true "Short code"
// @Success 200 {object} map[string]bool
// @Security BearerAuth
// @Router /shortlinks/check/{code} [get]
func (h *Handler) CheckCode(c *gin.Context) {
	taken, err := h.codeExists(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check short code"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": !taken})
}

// Get returns one shortlink with its schedules and password windows
// @Summary Get a shortlink
// @Description Get shortlink details including schedules and password protection windows
// @Tags shortlinks
// @Produce json
// @Param id path string true "Shortlink ID"
// @Success 200 {object} models.Link
// @Failure 404 {object} map[string]string "Shortlink not found"
// @Security BearerAuth
// @Router /shortlinks/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	link, ok := h.ownedLink(c, c.Param("id"))
	if !ok {
		return
	}

	if err := h.db.Preload("Schedules").Preload("Passwords").First(link, "id = ?", link.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shortlink"})
		return
	}

	c.JSON(http.StatusOK, link)
}

// Update updates a shortlink
// @Summary Update a shortlink
// @Description Update the target URL, active flag, expiry, access limit or meta tag
// @Tags shortlinks
// @Accept json
// @Produce json
// @Param id path string true "Shortlink ID"
// @Param request body UpdateLinkRequest true "Updated fields"
// @Success 200 {object} LinkResponse
// @Failure 404 {object} map[string]string "Shortlink not found"
// @Security BearerAuth
// @Router /shortlinks/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	link, ok := h.ownedLink(c, c.Param("id"))
	if !ok {
		return
	}

	var req UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.TargetURL != "" {
		link.TargetURL = req.TargetURL
	}
	if req.IsActive != nil {
		link.IsActive = *req.IsActive
	}
	if req.ExpiresAt != nil {
		if isJSONNull(req.ExpiresAt) {
			link.ExpiresAt = nil
		} else {
			var expiresAt time.Time
			if err := json.Unmarshal(req.ExpiresAt, &expiresAt); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expires_at"})
				return
			}
			link.ExpiresAt = &expiresAt
		}
	}
	if req.AccessLimit != nil {
		if isJSONNull(req.AccessLimit) {
			link.AccessLimit = nil
		} else {
			var accessLimit int
			if err := json.Unmarshal(req.AccessLimit, &accessLimit); err != nil || accessLimit < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Access limit must be at least 1"})
				return
			}
			link.AccessLimit = &accessLimit
		}
	}
	if req.MetaTag != nil {
		link.MetaTag = *req.MetaTag
	}

	if err := h.db.Save(link).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shortlink"})
		return
	}

	c.JSON(http.StatusOK, linkToResponse(*link))
}

// Delete soft-deletes a shortlink
// @Summary Delete a shortlink
// @Description Soft-delete a shortlink; it stops resolving immediately
// @Tags shortlinks
// @Produce json
// @Param id path string true "Shortlink ID"
// @Success 200 {object} map[string]string "Shortlink deleted"
// @Failure 404 {object} map[string]string "Shortlink not found"
// @Security BearerAuth
// @Router /shortlinks/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	link, ok := h.ownedLink(c, c.Param("id"))
	if !ok {
		return
	}

	if err := h.db.Delete(link).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete shortlink"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shortlink deleted"})
}

// RegisterRoutes registers link management routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/shortlinks", h.Create)
	rg.GET("/shortlinks", h.List)
	rg.GET("/shortlinks/check/:code", h.CheckCode)
	rg.GET("/shortlinks/:id", h.Get)
	rg.PUT("/shortlinks/:id", h.Update)
	rg.DELETE("/shortlinks/:id", h.Delete)

	rg.POST("/shortlinks/:id/schedules", h.AddSchedule)
	rg.GET("/shortlinks/:id/schedules", h.ListSchedules)
	rg.PUT("/schedules/:id", h.UpdateSchedule)
	rg.DELETE("/schedules/:id", h.DeleteSchedule)

	rg.POST("/shortlinks/:id/passwords", h.AddPassword)
	rg.GET("/shortlinks/:id/passwords", h.ListPasswords)
	rg.DELETE("/passwords/:id", h.DeletePassword)
}
