package config

import "os"

// CloudinaryConfig carries the image host credentials. All fields empty means
// the host is not configured, which is a recoverable state: uploads fall back
// to a placeholder URL instead of failing.
type CloudinaryConfig struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadPreset string
}

// LoadCloudinaryConfig reads the image host settings from the environment.
func LoadCloudinaryConfig() CloudinaryConfig {
	return CloudinaryConfig{
		CloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
		APIKey:       os.Getenv("CLOUDINARY_API_KEY"),
		APISecret:    os.Getenv("CLOUDINARY_API_SECRET"),
		UploadPreset: os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
	}
}

// Configured reports whether enough credentials are present to attempt an
// unsigned upload.
func (c CloudinaryConfig) Configured() bool {
	return c.CloudName != "" && c.UploadPreset != ""
}
