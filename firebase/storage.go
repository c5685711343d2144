package firebase

import "mime/multipart"

// StorageClient abstracts image storage so handlers can be tested against a
// mock instead of a live bucket.
type StorageClient interface {
	UploadCalendarImage(file multipart.File, filename, contentType string) (string, error)
	UploadTestimonialImage(file multipart.File, filename, contentType string) (string, error)
	DeleteFile(objectPath string) error
}

// FirebaseStorageClient is the real implementation that delegates to
// package-level functions.
type FirebaseStorageClient struct{}

func NewStorageClient() StorageClient {
	return &FirebaseStorageClient{}
}

func (f *FirebaseStorageClient) UploadCalendarImage(file multipart.File, filename, contentType string) (string, error) {
	return UploadCalendarImage(file, filename, contentType)
}

func (f *FirebaseStorageClient) UploadTestimonialImage(file multipart.File, filename, contentType string) (string, error) {
	return UploadTestimonialImage(file, filename, contentType)
}

func (f *FirebaseStorageClient) DeleteFile(objectPath string) error {
	return DeleteFile(objectPath)
}
