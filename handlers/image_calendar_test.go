package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetImageCalendarSeedsDefault(t *testing.T) {
	db := freshDB()
	router := setupImageCalendarRouter(db, newMockStorage())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/image-calendar", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["calendar_image"] != "" {
		t.Errorf("expected no image by default, got %v", resp["calendar_image"])
	}
	counts := resp["class_counts"].(map[string]interface{})
	if counts["count1"] != float64(12) {
		t.Errorf("expected default count1 12, got %v", counts["count1"])
	}
}

func TestUpdateImageCalendarFields(t *testing.T) {
	db := freshDB()
	router := setupImageCalendarRouter(db, newMockStorage())
	_, token := seedAdmin(db)

	fields := map[string]string{
		"weekday_timings": "5:00 AM - 11:00 PM",
		"month":           "October 2026",
		"count2":          "15",
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest("PUT", "/api/admin/image-calendar", fields, nil, token))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["weekday_timings"] != "5:00 AM - 11:00 PM" {
		t.Errorf("expected updated weekday timings, got %v", resp["weekday_timings"])
	}
	if resp["month"] != "October 2026" {
		t.Errorf("expected updated month, got %v", resp["month"])
	}
	counts := resp["class_counts"].(map[string]interface{})
	if counts["count2"] != float64(15) {
		t.Errorf("expected count2 15, got %v", counts["count2"])
	}
	// Untouched fields keep their values.
	if counts["count1"] != float64(12) {
		t.Errorf("expected count1 untouched at 12, got %v", counts["count1"])
	}
}

func TestUpdateImageCalendarNegativeCount(t *testing.T) {
	db := freshDB()
	router := setupImageCalendarRouter(db, newMockStorage())
	_, token := seedAdmin(db)

	fields := map[string]string{"count1": "-3"}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest("PUT", "/api/admin/image-calendar", fields, nil, token))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateImageCalendarWithImage(t *testing.T) {
	db := freshDB()
	storage := newMockStorage()
	router := setupImageCalendarRouter(db, storage)
	_, token := seedAdmin(db)

	files := []uploadFile{{Field: "image", Name: "october.jpg", ContentType: "image/jpeg", Data: []byte("fake image data")}}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest("PUT", "/api/admin/image-calendar", nil, files, token))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if storage.UploadCallCount != 1 {
		t.Errorf("expected 1 upload, got %d", storage.UploadCallCount)
	}
	resp := parseResponse(w)
	if resp["calendar_image"] != "https://storage.googleapis.com/test-bucket/calendar/test_image.jpg" {
		t.Errorf("expected uploaded image URL, got %v", resp["calendar_image"])
	}

	// Replacing the image deletes the previous object.
	files[0].Name = "november.jpg"
	w = httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest("PUT", "/api/admin/image-calendar", nil, files, token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(storage.DeleteFileCalls) != 1 || storage.DeleteFileCalls[0] != "test-bucket/calendar/test_image.jpg" {
		t.Errorf("expected old object deleted, got %v", storage.DeleteFileCalls)
	}
}

func TestUpdateImageCalendarRejectsBadImageType(t *testing.T) {
	db := freshDB()
	storage := newMockStorage()
	router := setupImageCalendarRouter(db, storage)
	_, token := seedAdmin(db)

	files := []uploadFile{{Field: "image", Name: "calendar.pdf", ContentType: "application/pdf", Data: []byte("%PDF-")}}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest("PUT", "/api/admin/image-calendar", nil, files, token))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
	if storage.UploadCallCount != 0 {
		t.Errorf("rejected files must never reach storage, got %d uploads", storage.UploadCallCount)
	}
}

func TestResetImageCalendar(t *testing.T) {
	db := freshDB()
	storage := newMockStorage()
	router := setupImageCalendarRouter(db, storage)
	_, token := seedAdmin(db)

	// Upload an image first so the reset has something to drop.
	files := []uploadFile{{Field: "image", Name: "october.jpg", ContentType: "image/jpeg", Data: []byte("fake image data")}}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest("PUT", "/api/admin/image-calendar", nil, files, token))
	if w.Code != http.StatusOK {
		t.Fatalf("setup upload failed: %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/admin/image-calendar/reset", nil, token))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["calendar_image"] != "" {
		t.Errorf("reset must drop the image, got %v", resp["calendar_image"])
	}
	if len(storage.DeleteFileCalls) != 1 {
		t.Errorf("reset should delete the stored object, got %v", storage.DeleteFileCalls)
	}

	// The public read reflects the reset.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/image-calendar", nil))
	if parseResponse(w)["calendar_image"] != "" {
		t.Error("public calendar should have no image after reset")
	}
}
