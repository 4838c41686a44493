package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"stayflow/services/storage"

	"github.com/gin-gonic/gin"
)

// StorageHandler handles receipt scan and guest avatar uploads.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// allowedBuckets defines permitted upload folders.
var allowedBuckets = map[string]bool{
	"receipts": true,
	"avatars":  true,
}

// UploadFileHandler uploads a file into one of the allowed buckets and
// returns its public URL.
func (h *StorageHandler) UploadFileHandler(c *gin.Context) {
	bucket := c.Param("bucket")
	if !allowedBuckets[bucket] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bucket; allowed values are 'receipts' and 'avatars'"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempDir := os.TempDir()
	tempFilePath := filepath.Join(tempDir, fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, bucket)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
		return
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(c, "image", publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to construct download URL", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"publicId":    publicID,
		"downloadURL": downloadURL,
	})
}

// GetSecureDownloadURLHandler generates a short-lived signed URL.
func (h *StorageHandler) GetSecureDownloadURLHandler(c *gin.Context) {
	publicID := c.Param("publicId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "publicId is required"})
		return
	}

	url, err := h.StorageSvc.GetSecureDownloadURL(c, "image", publicID, 15*time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign download URL", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"downloadURL": url})
}

// DeleteFileHandler removes an uploaded file.
func (h *StorageHandler) DeleteFileHandler(c *gin.Context) {
	publicID := c.Param("publicId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "publicId is required"})
		return
	}

	if err := h.StorageSvc.DeleteFile(c, publicID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete file", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
