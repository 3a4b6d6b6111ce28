package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"brandistry/internal/service/drive"
)

type DriveHandler struct {
	drive *drive.Client
}

func NewDriveHandler(d *drive.Client) *DriveHandler {
	return &DriveHandler{drive: d}
}

// SetToken handles POST /drive/token: stores the caller-supplied OAuth access
// token for subsequent Drive calls.
func (h *DriveHandler) SetToken(c *gin.Context) {
	var req struct {
		AccessToken string `json:"access_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	h.drive.SetToken(req.AccessToken)
	c.JSON(http.StatusOK, gin.H{"status": "connected"})
}

// Status handles GET /drive/status
func (h *DriveHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"connected": h.drive.IsAuthenticated()})
}

// List handles GET /drive/files?folder_id=...
func (h *DriveHandler) List(c *gin.Context) {
	folderID := c.DefaultQuery("folder_id", "root")

	files, err := h.drive.List(c.Request.Context(), folderID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"files": files})
}

// Upload handles POST /drive/files as a multipart form: a "file" part plus an
// optional "folder_id" field.
func (h *DriveHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}
	folderID := c.DefaultPostForm("folder_id", "root")

	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
		return
	}
	defer f.Close()

	file, err := h.drive.Upload(c.Request.Context(), folderID, header.Filename, header.Header.Get("Content-Type"), f)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"file": file})
}

// CreateFolder handles POST /drive/folders
func (h *DriveHandler) CreateFolder(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		ParentID string `json:"parent_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.ParentID == "" {
		req.ParentID = "root"
	}

	folder, err := h.drive.CreateFolder(c.Request.Context(), req.Name, req.ParentID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"folder": folder})
}

// Delete handles DELETE /drive/files/:id
func (h *DriveHandler) Delete(c *gin.Context) {
	if err := h.drive.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *DriveHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, drive.ErrNotAuthenticated) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "drive not connected"})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "drive request failed"})
}
