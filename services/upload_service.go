package services

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"pgstay-backend/config"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PlaceholderImageURL is served when the image host is not configured or an
// upload fails. Missing credentials are a recoverable condition, not an
// error.
const PlaceholderImageURL = "https://placehold.co/800x600?text=PG+Photo"

// UploadResult is the outcome of an image upload.
type UploadResult struct {
	URL         string `json:"url"`
	PublicID    string `json:"publicId"`
	Filename    string `json:"filename"`
	ImageType   string `json:"imageType"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	PublicID  string `json:"public_id"`
}

type UploadService struct {
	cfg    config.CloudinaryConfig
	client *resty.Client
}

func NewUploadService(cfg config.CloudinaryConfig) *UploadService {
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetRetryCount(0)
	return &UploadService{cfg: cfg, client: client}
}

// Upload pushes a multipart file to the image host. imageType buckets the
// upload into a host-side folder (property, room, document).
func (s *UploadService) Upload(fileHeader *multipart.FileHeader, imageType string) (*UploadResult, error) {
	imageType = strings.TrimSpace(imageType)
	if imageType == "" {
		imageType = "property"
	}
	filename := filepath.Base(fileHeader.Filename)

	if !s.cfg.Configured() {
		logrus.Warn("image host not configured, returning placeholder URL")
		return &UploadResult{
			URL:         PlaceholderImageURL,
			Filename:    filename,
			ImageType:   imageType,
			Placeholder: true,
		}, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	publicID := fmt.Sprintf("%s/%s", imageType, uuid.NewString())
	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", s.cfg.CloudName)

	var parsed cloudinaryResponse
	resp, err := s.client.R().
		SetFileReader("file", filename, file).
		SetFormData(map[string]string{
			"upload_preset": s.cfg.UploadPreset,
			"public_id":     publicID,
		}).
		SetResult(&parsed).
		Post(endpoint)
	if err != nil {
		return nil, fmt.Errorf("image host request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("image host returned %s", resp.Status())
	}

	url := parsed.SecureURL
	if url == "" {
		url = parsed.URL
	}
	if url == "" {
		return nil, fmt.Errorf("image host response missing url")
	}

	return &UploadResult{
		URL:       url,
		PublicID:  parsed.PublicID,
		Filename:  filename,
		ImageType: imageType,
	}, nil
}
