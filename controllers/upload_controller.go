package controllers

import (
	"net/http"

	"pgstay-backend/services"
	"pgstay-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type UploadController struct {
	Uploads *services.UploadService
}

func NewUploadController(uploads *services.UploadService) *UploadController {
	return &UploadController{Uploads: uploads}
}

// Upload accepts a multipart image and forwards it to the image host.
// A host failure answers an error with a fallback URL so the client can
// still render something.
// POST /api/upload?imageType=property|room|document
func (u *UploadController) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "multipart field 'file' is required")
		return
	}

	result, err := u.Uploads.Upload(fileHeader, c.Query("imageType"))
	if err != nil {
		logrus.WithError(err).Error("image upload failed")
		c.JSON(http.StatusBadGateway, gin.H{
			"success":     false,
			"message":     "image upload failed",
			"fallbackUrl": services.PlaceholderImageURL,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"url":       result.URL,
		"publicId":  result.PublicID,
		"filename":  result.Filename,
		"imageType": result.ImageType,
	})
}
