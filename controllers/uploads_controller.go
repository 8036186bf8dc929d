package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	utils "github.com/phillip/pet-adoption-go/utils"
)

const (
	uploadTimeout = 60 * time.Second
	maxImageBytes = 5 << 20
)

// ---------------- UPLOAD IMAGE ----------------
// Multipart field "image"; optional query folder=pets|campaigns.
func UploadImage(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		if app.Images == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image uploads are not configured"})
			return
		}

		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return
		}
		if fileHeader.Size > maxImageBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image must be 5MB or smaller"})
			return
		}
		if ct := fileHeader.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file must be an image"})
			return
		}

		folder := utils.PetImagesFolder
		if c.Query("folder") == utils.CampaignImagesFolder {
			folder = utils.CampaignImagesFolder
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open file"})
			return
		}
		defer file.Close()

		ctx, cancel := context.WithTimeout(c.Request.Context(), uploadTimeout)
		defer cancel()

		url, err := app.Images.Upload(ctx, file, folder)
		if err != nil {
			app.Logger.Error("image upload failed", "error", err, "file", fileHeader.Filename)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "image upload failed",
				"details": err.Error(),
				"file":    fileHeader.Filename,
			})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"url": url})
	}
}

// removeImage deletes a hosted image. Failures are only logged.
func (app *App) removeImage(c *gin.Context, imageURL string) {
	if app.Images == nil || !strings.Contains(imageURL, "res.cloudinary.com") {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), uploadTimeout)
	defer cancel()
	if err := app.Images.Delete(ctx, imageURL); err != nil {
		app.Logger.Warn("could not delete hosted image", "url", imageURL, "error", err)
	}
}
