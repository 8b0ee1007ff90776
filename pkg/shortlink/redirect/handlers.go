package redirect

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/truong-le-ofs/short-link/pkg/shortlink/analytics"
	"github.com/truong-le-ofs/short-link/pkg/shortlink/resolver"
)

// Handler handles public shortlink resolution requests
type Handler struct {
	engine *resolver.Engine
}

// NewHandler creates a new redirect handler
func NewHandler(engine *resolver.Engine) *Handler {
	return &Handler{engine: engine}
}

// AccessRequest carries the optional password for a gated shortlink
type AccessRequest struct {
	Password string `json:"password"`
}

// passwordForm is served when a browser hits a gated link without a secret.
const passwordForm = `<html>
  <body>
    <h2>Password Required</h2>
    <p>This shortlink requires a password to access.</p>
    <form method="POST" action="/s/%s">
      <input type="password" name="password" placeholder="Enter password" required>
      <button type="submit">Access</button>
    </form>
  </body>
</html>`

// Redirect resolves a short code and redirects the browser
// @Summary Redirect shortlink
// @Description Redirect to the target URL, or show a password form for gated links
// @Tags access
// @Produce html
// @Param code path string true "Short code"
// @Success 302 "Redirect to target URL"
// @Failure 404 {object} map[string]string "Shortlink not found or expired"
// @Router /s/{code} [get]
func (h *Handler) Redirect(c *gin.Context) {
	code := c.Param("code")
	reqCtx := analytics.ContextFromRequest(c.Request)

	resolution, err := h.engine.Resolve(c.Request.Context(), code, "", reqCtx)
	if err != nil {
		h.renderError(c, err)
		return
	}

	if resolution.PasswordRequired {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(fmt.Sprintf(passwordForm, code)))
		return
	}

	c.Redirect(http.StatusFound, resolution.TargetURL)
}

// Access resolves a short code with an optional password
// @Summary Access shortlink
// @Description Resolve a short code and get the target URL or a password requirement
// @Tags access
// @Accept json
// @Produce json
// @Param code path string true "Short code"
// @Param request body AccessRequest false "Optional password"
// @Success 200 {object} resolver.Resolution
// @Failure 401 {object} map[string]string "Invalid password"
// @Failure 404 {object} map[string]string "Shortlink not found or expired"
// @Router /s/{code} [post]
func (h *Handler) Access(c *gin.Context) {
	code := c.Param("code")

	// Browser form posts arrive urlencoded, API clients send JSON.
	var req AccessRequest
	if c.ContentType() == "application/json" && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else {
		req.Password = c.PostForm("password")
	}

	reqCtx := analytics.ContextFromRequest(c.Request)
	resolution, err := h.engine.Resolve(c.Request.Context(), code, req.Password, reqCtx)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resolution)
}

func (h *Handler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, resolver.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Shortlink not found or expired"})
	case errors.Is(err, resolver.ErrInvalidPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
	default:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
	}
}

// RegisterRoutes registers public resolution routes on the root router.
// This should be called AFTER all other routes to avoid conflicts.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/s/:code", h.Redirect)
	r.POST("/s/:code", h.Access)
}
