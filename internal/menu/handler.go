package menu

import (
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
// Merchant uploads a menu photo
// --------------------------------------------------
func (h *Handler) Upload(c *gin.Context) {
	pageID, err := strconv.Atoi(c.PostForm("page_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page_id is required"})
		return
	}

	if !h.ownsPage(c, pageID) {
		return
	}

	file, header, err := c.Request.FormFile("menu_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_file is required"})
		return
	}
	defer file.Close()

	if err := ValidateFileExtension(header.Filename); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uploadID, objectKey, err := h.service.UploadMenu(
		c.Request.Context(),
		pageID,
		file,
		header.Filename,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"upload_id":  uploadID,
		"object_key": objectKey,
		"status":     StatusUploaded,
		"message":    "Menu uploaded. OCR and structuring will start automatically.",
	})
}

// --------------------------------------------------
// Status polling for the dashboard
// --------------------------------------------------
func (h *Handler) GetStatus(c *gin.Context) {
	pageID, err := strconv.Atoi(c.Param("page_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page id"})
		return
	}

	if !h.ownsPage(c, pageID) {
		return
	}

	status, err := h.service.GetStatus(c.Request.Context(), pageID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, status)
}

// --------------------------------------------------
// Retry a failed upload
// --------------------------------------------------
func (h *Handler) Retry(c *gin.Context) {
	pageID, err := strconv.Atoi(c.Param("page_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page id"})
		return
	}

	if !h.ownsPage(c, pageID) {
		return
	}

	if err := h.service.Retry(c.Request.Context(), pageID); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": StatusUploaded})
}

// --------------------------------------------------
// Structured items in reading order
// --------------------------------------------------
func (h *Handler) ListItems(c *gin.Context) {
	pageID, err := strconv.Atoi(c.Param("page_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page id"})
		return
	}

	if !h.ownsPage(c, pageID) {
		return
	}

	items, err := h.service.ListItems(c.Request.Context(), pageID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) ownsPage(c *gin.Context, pageID int) bool {
	userID := c.GetString("userID")

	ok, err := h.service.IsPageOwner(c.Request.Context(), pageID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return false
	}
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your page"})
		return false
	}
	return true
}
