package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"serenefit-backend/models"

	"github.com/google/uuid"
)

type mockNotifier struct {
	confirmed []models.Booking
}

func (m *mockNotifier) BookingConfirmed(b models.Booking) {
	m.confirmed = append(m.confirmed, b)
}

func TestCreateBooking(t *testing.T) {
	db := freshDB()
	router := setupBookingRouter(db, nil)

	seedService(db, "yoga-classes", "Yoga Classes", true)

	body := map[string]string{
		"name":       "Priya Sharma",
		"whatsapp":   "+919812345678",
		"email":      "priya@example.com",
		"time_slot":  "10:00 AM - 10:45 AM",
		"service_id": "yoga-classes",
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/bookings", body))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["status"] != "pending" {
		t.Errorf("new bookings must be pending, got %v", resp["status"])
	}
	if _, err := uuid.Parse(resp["id"].(string)); err != nil {
		t.Errorf("expected generated uuid id, got %v", resp["id"])
	}
	submitted, err := time.Parse(time.RFC3339Nano, resp["submitted_at"].(string))
	if err != nil {
		t.Fatalf("expected parseable submitted_at, got %v", resp["submitted_at"])
	}
	if time.Since(submitted) > time.Minute {
		t.Errorf("submitted_at should be stamped now, got %v", submitted)
	}
	if resp["service_name"] != "Yoga Classes" {
		t.Errorf("expected snapshotted service name, got %v", resp["service_name"])
	}
}

func TestCreateBookingUnknownServiceStillAccepted(t *testing.T) {
	db := freshDB()
	router := setupBookingRouter(db, nil)

	body := map[string]string{
		"name":       "Walk In",
		"whatsapp":   "+919812345678",
		"time_slot":  "5:00 PM - 5:45 PM",
		"service_id": "no-such-service",
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/bookings", body))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["service_id"] != "no-such-service" {
		t.Errorf("service reference should be kept as submitted, got %v", resp["service_id"])
	}
	if _, hasName := resp["service_name"]; hasName {
		t.Errorf("no service name should be snapshotted for unknown service, got %v", resp["service_name"])
	}
}

func TestCreateBookingValidation(t *testing.T) {
	db := freshDB()
	router := setupBookingRouter(db, nil)

	cases := []map[string]string{
		{"whatsapp": "+919812345678", "time_slot": "10:00 AM"}, // missing name
		{"name": "Priya", "time_slot": "10:00 AM"},             // missing whatsapp
		{"name": "Priya", "whatsapp": "+919812345678"},         // missing time slot
		{"name": "P", "whatsapp": "+91", "time_slot": "10:00 AM", // malformed email
			"email": "not-an-email"},
	}

	for i, body := range cases {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest("POST", "/api/bookings", body))
		if w.Code != http.StatusBadRequest {
			t.Errorf("case %d: expected status 400, got %d: %s", i, w.Code, w.Body.String())
		}
	}
}

func TestListBookingsNewestFirst(t *testing.T) {
	db := freshDB()
	router := setupBookingRouter(db, nil)
	_, token := seedAdmin(db)

	seedBooking(db, "First")
	time.Sleep(5 * time.Millisecond)
	seedBooking(db, "Second")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/admin/bookings", nil, token))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	bookings := parseResponseArray(w)
	if len(bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(bookings))
	}
	if bookings[0].(map[string]interface{})["name"] != "Second" {
		t.Errorf("expected newest booking first, got %v", bookings[0])
	}
}

func TestListBookingsStatusFilter(t *testing.T) {
	db := freshDB()
	router := setupBookingRouter(db, nil)
	_, token := seedAdmin(db)

	pending := seedBooking(db, "Pending One")
	confirmed := seedBooking(db, "Confirmed One")
	db.Model(&models.Booking{}).Where("id = ?", confirmed.ID).Update("status", models.BookingStatusConfirmed)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/admin/bookings?status=pending", nil, token))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	bookings := parseResponseArray(w)
	if len(bookings) != 1 {
		t.Fatalf("expected 1 pending booking, got %d", len(bookings))
	}
	if bookings[0].(map[string]interface{})["id"] != pending.ID.String() {
		t.Errorf("expected pending booking, got %v", bookings[0])
	}
}

func TestListBookingsInvalidStatusFilter(t *testing.T) {
	db := freshDB()
	router := setupBookingRouter(db, nil)
	_, token := seedAdmin(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/admin/bookings?status=bogus", nil, token))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestListBookingsRequiresAdmin(t *testing.T) {
	db := freshDB()
	router := setupBookingRouter(db, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/admin/bookings", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestConfirmBookingNotifies(t *testing.T) {
	db := freshDB()
	notifier := &mockNotifier{}
	router := setupBookingRouter(db, notifier)
	_, token := seedAdmin(db)

	booking := seedBooking(db, "Priya Sharma")

	body := map[string]string{"status": "confirmed"}
	w := httptest.NewRecorder()
	url := fmt.Sprintf("/api/admin/bookings/%s/status", booking.ID)
	router.ServeHTTP(w, authRequest("PUT", url, body, token))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["status"] != "confirmed" {
		t.Errorf("expected confirmed, got %v", resp["status"])
	}
	if resp["name"] != "Priya Sharma" {
		t.Errorf("status change must not touch other fields, got name %v", resp["name"])
	}
	if len(notifier.confirmed) != 1 || notifier.confirmed[0].ID != booking.ID {
		t.Errorf("expected one confirmation notification for %s, got %v", booking.ID, notifier.confirmed)
	}
}

func TestCancelBookingDoesNotNotify(t *testing.T) {
	db := freshDB()
	notifier := &mockNotifier{}
	router := setupBookingRouter(db, notifier)
	_, token := seedAdmin(db)

	booking := seedBooking(db, "Cancel Me")

	body := map[string]string{"status": "cancelled"}
	w := httptest.NewRecorder()
	url := fmt.Sprintf("/api/admin/bookings/%s/status", booking.ID)
	router.ServeHTTP(w, authRequest("PUT", url, body, token))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(notifier.confirmed) != 0 {
		t.Errorf("cancelling must not notify, got %v", notifier.confirmed)
	}
}

func TestUpdateBookingStatusInvalid(t *testing.T) {
	db := freshDB()
	router := setupBookingRouter(db, nil)
	_, token := seedAdmin(db)

	booking := seedBooking(db, "Priya Sharma")

	body := map[string]string{"status": "done"}
	w := httptest.NewRecorder()
	url := fmt.Sprintf("/api/admin/bookings/%s/status", booking.ID)
	router.ServeHTTP(w, authRequest("PUT", url, body, token))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateBookingStatusNotFound(t *testing.T) {
	db := freshDB()
	router := setupBookingRouter(db, nil)
	_, token := seedAdmin(db)

	body := map[string]string{"status": "confirmed"}
	w := httptest.NewRecorder()
	url := fmt.Sprintf("/api/admin/bookings/%s/status", uuid.New())
	router.ServeHTTP(w, authRequest("PUT", url, body, token))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDeleteBooking(t *testing.T) {
	db := freshDB()
	router := setupBookingRouter(db, nil)
	_, token := seedAdmin(db)

	booking := seedBooking(db, "Delete Me")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("DELETE", "/api/admin/bookings/"+booking.ID.String(), nil, token))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/admin/bookings", nil, token))
	if got := len(parseResponseArray(w)); got != 0 {
		t.Errorf("expected empty booking list after delete, got %d", got)
	}
}

func TestDeleteAbsentBookingIsNoOp(t *testing.T) {
	db := freshDB()
	router := setupBookingRouter(db, nil)
	_, token := seedAdmin(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("DELETE", "/api/admin/bookings/"+uuid.New().String(), nil, token))

	if w.Code != http.StatusOK {
		t.Fatalf("deleting an absent booking should still return 200, got %d: %s", w.Code, w.Body.String())
	}
}
