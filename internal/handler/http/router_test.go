package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intek-hris/attendance-backend-go/internal/fixtures"
	"github.com/intek-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/intek-hris/attendance-backend-go/internal/pkg/sse"
	"github.com/intek-hris/attendance-backend-go/internal/repository/memory"
	attendanceService "github.com/intek-hris/attendance-backend-go/internal/service/attendance"
	authService "github.com/intek-hris/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/intek-hris/attendance-backend-go/internal/service/dashboard"
	employeeService "github.com/intek-hris/attendance-backend-go/internal/service/employee"
	eventService "github.com/intek-hris/attendance-backend-go/internal/service/event"
	leaveService "github.com/intek-hris/attendance-backend-go/internal/service/leave"
	notificationService "github.com/intek-hris/attendance-backend-go/internal/service/notification"
)

const testSessionSecret = "test-secret-key-for-sessions"

func newTestApp(t *testing.T) *chi.Mux {
	t.Helper()

	store := memory.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)
	attendanceRepo := memory.NewAttendanceRepository(store)
	leaveRequestRepo := memory.NewLeaveRequestRepository(store)
	notificationRepo := memory.NewNotificationRepository(store)
	eventRepo := memory.NewEventRepository(store)

	err := fixtures.Seed(context.Background(), fixtures.Repositories{
		Employees:     employeeRepo,
		Attendance:    attendanceRepo,
		Notifications: notificationRepo,
		Events:        eventRepo,
	})
	require.NoError(t, err)

	jwtService := jwt.NewJWTService(testSessionSecret, "1h")
	hub := sse.NewHub()
	notifSvc := notificationService.NewNotificationService(notificationRepo, hub)

	return NewRouter(jwtService, Handlers{
		Auth:         NewAuthHandler(authService.NewAuthService(employeeRepo), jwtService, nil, "http://localhost:3000"),
		Attendance:   NewAttendanceHandler(attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)),
		Leave:        NewLeaveHandler(leaveService.NewLeaveService(leaveRequestRepo, employeeRepo, memory.NewTransactor(store), notifSvc, nil)),
		Notification: NewNotificationHandler(notifSvc, hub),
		Event:        NewEventHandler(eventService.NewEventService(eventRepo)),
		Employee:     NewEmployeeHandler(employeeService.NewEmployeeService(employeeRepo)),
		Dashboard:    NewDashboardHandler(dashboardService.NewDashboardService(employeeRepo, attendanceRepo, leaveRequestRepo)),
	}, "http://localhost:3000", "test")
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, router http.Handler) *http.Cookie {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "ahmad.sutrisno@intek.co.id",
		"password": fixtures.DefaultPassword,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, c := range rec.Result().Cookies() {
		if c.Name == jwt.SessionCookieName {
			return c
		}
	}
	t.Fatal("login response did not set a session cookie")
	return nil
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestLogin(t *testing.T) {
	router := newTestApp(t)

	t.Run("valid credentials set a session cookie", func(t *testing.T) {
		cookie := login(t, router)
		assert.True(t, cookie.HttpOnly)
		assert.NotEmpty(t, cookie.Value)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email":    "ahmad.sutrisno@intek.co.id",
			"password": "wrong-password",
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown email gets the same error as wrong password", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email":    "nobody@intek.co.id",
			"password": "password123",
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("protected route without a session", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestMe(t *testing.T) {
	router := newTestApp(t)
	cookie := login(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "ahmad.sutrisno@intek.co.id", data["email"])
	assert.Equal(t, "EMP-2024-001", data["employee_code"])
	_, exposed := data["password_hash"]
	assert.False(t, exposed)
}

func TestAttendanceFlow(t *testing.T) {
	router := newTestApp(t)
	cookie := login(t, router)

	// The seed already checked the employee in today.
	rec := doJSON(t, router, http.MethodPost, "/api/v1/attendance/checkin", nil, cookie)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/attendance/today", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.NotNil(t, data["check_in"])
	assert.Nil(t, data["check_out"])

	rec = doJSON(t, router, http.MethodPost, "/api/v1/attendance/checkout", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	data = decodeBody(t, rec)["data"].(map[string]interface{})
	assert.NotNil(t, data["total_hours"])

	rec = doJSON(t, router, http.MethodPost, "/api/v1/attendance/checkout", nil, cookie)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/attendance/history?limit=5", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/attendance/stats", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.EqualValues(t, 1, stats["present"])
}

func TestLeaveFlow(t *testing.T) {
	router := newTestApp(t)
	cookie := login(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/leave/", map[string]string{
		"type":       "annual",
		"start_date": "2024-06-10",
		"end_date":   "2024-06-11",
		"duration":   "full",
		"reason":     "family vacation trip",
	}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "pending", created["status"])
	requestID := int64(created["id"].(float64))

	// Submission emitted one notification on top of the three seeded ones.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/notifications/unread-count", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	count := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.EqualValues(t, 3, count["count"]) // 2 unread seeds + 1 new

	rec = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/v1/leave/%d/review", requestID), map[string]string{
		"status": "approved",
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	reviewed := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "approved", reviewed["status"])

	// Repeating the decision conflicts.
	rec = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/v1/leave/%d/review", requestID), map[string]string{
		"status": "approved",
	}, cookie)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Two annual days were debited from the seeded balance of 8.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/leave/balances", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	balances := decodeBody(t, rec)["data"].([]interface{})
	for _, raw := range balances {
		b := raw.(map[string]interface{})
		if b["leave_type"] == "annual" {
			assert.EqualValues(t, 6, b["remaining"])
		}
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/leave/", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	requests := decodeBody(t, rec)["data"].([]interface{})
	require.Len(t, requests, 1)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/leave/policies", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestLeaveValidation(t *testing.T) {
	router := newTestApp(t)
	cookie := login(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/leave/", map[string]string{
		"type":       "annual",
		"start_date": "2024-06-10",
		"end_date":   "2024-06-11",
		"duration":   "full",
		"reason":     "short",
	}, cookie)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeBody(t, rec)
	errDetail := body["error"].(map[string]interface{})
	details := errDetail["details"].(map[string]interface{})
	assert.Contains(t, details, "reason")
}

func TestNotificationsFlow(t *testing.T) {
	router := newTestApp(t)
	cookie := login(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/notifications/", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	notifications := decodeBody(t, rec)["data"].([]interface{})
	require.Len(t, notifications, 3)

	first := notifications[0].(map[string]interface{})
	id := int64(first["id"].(float64))

	rec = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/v1/notifications/%d/read", id), nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	// Marking twice is a no-op, not an error.
	rec = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/v1/notifications/%d/read", id), nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/notifications/unread-count", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	count := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.EqualValues(t, 1, count["count"])
}

func TestEventsFlow(t *testing.T) {
	router := newTestApp(t)
	cookie := login(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/events/", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	events := decodeBody(t, rec)["data"].([]interface{})
	require.Len(t, events, 3)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/events/", map[string]string{
		"title": "Town Hall",
		"date":  "2030-05-01",
		"type":  "meeting",
	}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/events/upcoming?limit=2", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	upcoming := decodeBody(t, rec)["data"].([]interface{})
	require.Len(t, upcoming, 1) // the seeded 2024 events are in the past
	assert.Equal(t, "Town Hall", upcoming[0].(map[string]interface{})["title"])
}

func TestProfileFlow(t *testing.T) {
	router := newTestApp(t)
	cookie := login(t, router)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/employees/me/", map[string]string{
		"phone": "+62 812-0000-0000",
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "+62 812-0000-0000", data["phone"])
	// Untouched fields keep their values.
	assert.Equal(t, "IT Developer", data["position"])

	rec = doJSON(t, router, http.MethodPut, "/api/v1/employees/me/password", map[string]string{
		"current_password": "wrong",
		"new_password":     "a-new-password",
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/api/v1/employees/me/password", map[string]string{
		"current_password": fixtures.DefaultPassword,
		"new_password":     "a-new-password",
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	// The new password works for login.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "ahmad.sutrisno@intek.co.id",
		"password": "a-new-password",
	}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDashboardSummary(t *testing.T) {
	router := newTestApp(t)
	cookie := login(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/dashboard/summary", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.EqualValues(t, 1, data["headcount"])
	assert.EqualValues(t, 1, data["present"]) // the seeded open check-in
	assert.EqualValues(t, 0, data["pending_leaves"])
	assert.EqualValues(t, 100, data["attendance_rate"])
}
