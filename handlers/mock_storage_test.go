package handlers

import "mime/multipart"

type mockStorage struct {
	UploadCalendarImageFn    func(file multipart.File, filename, contentType string) (string, error)
	UploadTestimonialImageFn func(file multipart.File, filename, contentType string) (string, error)
	DeleteFileFn             func(objectPath string) error
	DeleteFileCalls          []string
	UploadCallCount          int
}

func newMockStorage() *mockStorage {
	return &mockStorage{
		DeleteFileCalls: []string{},
	}
}

func (m *mockStorage) UploadCalendarImage(file multipart.File, filename, contentType string) (string, error) {
	m.UploadCallCount++
	if m.UploadCalendarImageFn != nil {
		return m.UploadCalendarImageFn(file, filename, contentType)
	}
	return "https://storage.googleapis.com/test-bucket/calendar/test_image.jpg", nil
}

func (m *mockStorage) UploadTestimonialImage(file multipart.File, filename, contentType string) (string, error) {
	m.UploadCallCount++
	if m.UploadTestimonialImageFn != nil {
		return m.UploadTestimonialImageFn(file, filename, contentType)
	}
	return "https://storage.googleapis.com/test-bucket/testimonials/test_image.jpg", nil
}

func (m *mockStorage) DeleteFile(objectPath string) error {
	m.DeleteFileCalls = append(m.DeleteFileCalls, objectPath)
	if m.DeleteFileFn != nil {
		return m.DeleteFileFn(objectPath)
	}
	return nil
}
