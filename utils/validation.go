package utils

import (
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/go-playground/validator/v10"
)

// AllowedImageContentTypes is the set of allowed content types for image uploads.
var AllowedImageContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// AllowedVideoContentTypes is the set of allowed content types for service
// video uploads.
var AllowedVideoContentTypes = map[string]bool{
	"video/mp4":       true,
	"video/webm":      true,
	"video/ogg":       true,
	"video/quicktime": true,
}

// MaxImageUploadSize is the maximum allowed image file size (5MB).
const MaxImageUploadSize = 5 << 20

// MaxVideoUploadSize is the single authoritative ceiling for video uploads
// (10MB), applied uniformly across every admin surface.
const MaxVideoUploadSize = 10 << 20

// ValidateImageUpload checks that an uploaded file has an allowed image
// content type and does not exceed the image size ceiling.
func ValidateImageUpload(fh *multipart.FileHeader) error {
	if fh.Size > MaxImageUploadSize {
		return fmt.Errorf("file size %d bytes exceeds maximum allowed size of 5MB", fh.Size)
	}

	contentType := fh.Header.Get("Content-Type")
	if !AllowedImageContentTypes[contentType] {
		return fmt.Errorf("invalid file type '%s'; allowed types: image/jpeg, image/png, image/webp, image/gif", contentType)
	}

	return nil
}

// ValidateVideoUpload checks that an uploaded file has an allowed video
// content type and does not exceed the video size ceiling. Size is checked
// first so an oversized file of the wrong type reports the size problem.
func ValidateVideoUpload(fh *multipart.FileHeader) error {
	if fh.Size > MaxVideoUploadSize {
		return fmt.Errorf("file size %d bytes exceeds maximum allowed size of 10MB", fh.Size)
	}

	contentType := fh.Header.Get("Content-Type")
	if !AllowedVideoContentTypes[contentType] {
		return fmt.Errorf("invalid file type '%s'; allowed types: video/mp4, video/webm, video/ogg, video/quicktime", contentType)
	}

	return nil
}

// SanitizeValidationError takes a validator error and returns a user-friendly
// message without leaking internal Go struct names.
func SanitizeValidationError(err error) string {
	if err == nil {
		return ""
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Invalid request body"
	}

	var messages []string
	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", field))
		case "email":
			messages = append(messages, fmt.Sprintf("%s must be a valid email address", field))
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", field))
		}
	}

	if len(messages) == 0 {
		return "Invalid request body"
	}

	return strings.Join(messages, "; ")
}
