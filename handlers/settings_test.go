package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetSettingsSeedsDefault(t *testing.T) {
	db := freshDB()
	router := setupSettingsRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/settings/consultation", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["fee"] != float64(99) {
		t.Errorf("expected default fee 99, got %v", resp["fee"])
	}
	if resp["duration"] != float64(45) {
		t.Errorf("expected default duration 45, got %v", resp["duration"])
	}
	slots := resp["time_slots"].([]interface{})
	if len(slots) != 5 {
		t.Errorf("expected 5 default time slots, got %d", len(slots))
	}
}

func TestUpdateSettings(t *testing.T) {
	db := freshDB()
	router := setupSettingsRouter(db)
	_, token := seedAdmin(db)

	body := map[string]interface{}{
		"fee":           149,
		"duration":      30,
		"time_slots":    []string{"9:00 AM - 9:30 AM"},
		"weekday_hours": "7:00 AM - 8:00 PM",
		"weekend_hours": "8:00 AM - 12:00 PM",
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("PUT", "/api/admin/settings/consultation", body, token))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	// The public read reflects the update.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/settings/consultation", nil))

	resp := parseResponse(w)
	if resp["fee"] != float64(149) {
		t.Errorf("expected updated fee 149, got %v", resp["fee"])
	}
	if resp["weekday_hours"] != "7:00 AM - 8:00 PM" {
		t.Errorf("expected updated weekday hours, got %v", resp["weekday_hours"])
	}
}

func TestUpdateSettingsValidation(t *testing.T) {
	db := freshDB()
	router := setupSettingsRouter(db)
	_, token := seedAdmin(db)

	// Missing time slots and hours.
	body := map[string]interface{}{
		"fee":      149,
		"duration": 30,
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("PUT", "/api/admin/settings/consultation", body, token))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateSettingsRequiresAdmin(t *testing.T) {
	db := freshDB()
	router := setupSettingsRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", "/api/admin/settings/consultation", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d: %s", w.Code, w.Body.String())
	}
}
