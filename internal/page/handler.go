package page

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Create page
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Title    string `json:"title"`
		Currency string `json:"currency"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	p, err := h.service.Create(c.Request.Context(), userID, req.Title, req.Currency)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, p)
}

// --------------------------------------------------
// List pages owned by the caller
// --------------------------------------------------
func (h *Handler) ListMine(c *gin.Context) {
	userID := c.GetString("userID")

	pages, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

// --------------------------------------------------
// Publish / unpublish
// --------------------------------------------------
func (h *Handler) Publish(c *gin.Context) {
	h.setPublished(c, true)
}

func (h *Handler) Unpublish(c *gin.Context) {
	h.setPublished(c, false)
}

func (h *Handler) setPublished(c *gin.Context, published bool) {
	pageID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page id"})
		return
	}

	userID := c.GetString("userID")
	owns, err := h.service.IsOwner(c.Request.Context(), pageID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !owns {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your page"})
		return
	}

	if err := h.service.SetPublished(c.Request.Context(), pageID, published); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"published": published})
}

// --------------------------------------------------
// Public rendering (no auth)
// --------------------------------------------------
func (h *Handler) PublicRender(c *gin.Context) {
	slug := c.Param("slug")

	rendered, err := h.service.PublicRender(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrNotPublished) {
			c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rendered)
}
