package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"classboard/backend/config"
	"classboard/backend/internal/dto"
	"classboard/backend/internal/model"
	"classboard/backend/internal/service"
	"classboard/backend/pkg/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	registerErr error
	loginUser   *dto.SessionUser
	loginToken  string
	loginErr    error
	logoutErr   error
	sessionUser *dto.SessionUser
	sessionErr  error
}

func (m *mockAuthService) Register(_ context.Context, _ *dto.RegisterRequest) error {
	return m.registerErr
}
func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.SessionUser, string, error) {
	return m.loginUser, m.loginToken, m.loginErr
}
func (m *mockAuthService) Logout(_ context.Context, _ string) error {
	return m.logoutErr
}
func (m *mockAuthService) GetSession(_ context.Context, _ string) (*dto.SessionUser, error) {
	return m.sessionUser, m.sessionErr
}
func (m *mockAuthService) EnsureSeedTeacher(_ context.Context) error {
	return nil
}

// ── Mock AssignmentService ──

type mockAssignmentService struct {
	listResult []model.Assignment
	listErr    error
	createID   int64
	createErr  error
	updateErr  error
	deleteErr  error
	feed       string
	feedErr    error
}

func (m *mockAssignmentService) List(_ context.Context, _ string) ([]model.Assignment, error) {
	return m.listResult, m.listErr
}
func (m *mockAssignmentService) Create(_ context.Context, _ *dto.CreateAssignmentRequest, _ *string) (int64, error) {
	return m.createID, m.createErr
}
func (m *mockAssignmentService) Update(_ context.Context, _ int64, _ *dto.UpdateAssignmentRequest) error {
	return m.updateErr
}
func (m *mockAssignmentService) Delete(_ context.Context, _ int64) error {
	return m.deleteErr
}
func (m *mockAssignmentService) CalendarFeed(_ context.Context) (string, error) {
	return m.feed, m.feedErr
}

// ── Mock SubmissionService ──

type mockSubmissionService struct {
	submitID   int64
	submitErr  error
	listResult []dto.SubmissionView
	listErr    error
	byAssign   []dto.SubmissionView
	byAssErr   error
	gradeErr   error
	deleteErr  error
}

func (m *mockSubmissionService) Submit(_ context.Context, _ int64, _ *dto.SubmitRequest, _ *string) (int64, error) {
	return m.submitID, m.submitErr
}
func (m *mockSubmissionService) List(_ context.Context, _ *session.Session, _ *dto.ListSubmissionsQuery) ([]dto.SubmissionView, error) {
	return m.listResult, m.listErr
}
func (m *mockSubmissionService) ListForAssignment(_ context.Context, _ int64) ([]dto.SubmissionView, error) {
	return m.byAssign, m.byAssErr
}
func (m *mockSubmissionService) Grade(_ context.Context, _ int64, _ *dto.GradeRequest) error {
	return m.gradeErr
}
func (m *mockSubmissionService) Delete(_ context.Context, _ int64) error {
	return m.deleteErr
}

// ── Mock RosterService ──

type mockRosterService struct {
	entries []dto.ClasslistEntry
	err     error
}

func (m *mockRosterService) Classlist(_ context.Context) ([]dto.ClasslistEntry, error) {
	return m.entries, m.err
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) ExportGradebook(_ context.Context) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		SessionTTL: time.Hour,
		Cookie: config.CookieConfig{
			Name:     "classboard_session",
			SameSite: "Lax",
		},
	}
}

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func setStudent(c *gin.Context) {
	c.Set("user_id", int64(7))
	c.Set("role", "student")
	c.Set("name", "Alice")
	c.Set("email", "alice@x.com")
}

func setTeacher(c *gin.Context) {
	c.Set("user_id", int64(1))
	c.Set("role", "teacher")
	c.Set("name", "Teacher")
	c.Set("email", "teacher@example.com")
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("响应不是 JSON 对象: %s", w.Body.String())
	}
	return body
}

// ═══════════════════════════════════════════════════════════
// AuthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Register_Success(t *testing.T) {
	h := NewAuthHandler(testAuthConfig(), &mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/register", jsonBody(dto.RegisterRequest{
		Name: "Ada", Email: "ada@x.com", Password: "secret",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/api/register", h.Register)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["status"] != "registered" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	h := NewAuthHandler(testAuthConfig(), &mockAuthService{registerErr: service.ErrEmailExists})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/register", jsonBody(dto.RegisterRequest{
		Name: "Ada", Email: "ada@x.com", Password: "secret",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/api/register", h.Register)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "email already exists" {
		t.Errorf("unexpected error message: %v", body)
	}
}

func TestAuthHandler_Login_SetsCookie(t *testing.T) {
	h := NewAuthHandler(testAuthConfig(), &mockAuthService{
		loginUser:  &dto.SessionUser{ID: 7, Role: "student", Name: "Alice", Email: "alice@x.com"},
		loginToken: "opaque-token",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/login", jsonBody(dto.LoginRequest{
		Role: "student", Email: "alice@x.com", Password: "p",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/api/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["status"] != "ok" {
		t.Errorf("unexpected body: %v", body)
	}
	if _, ok := body["user"]; !ok {
		t.Error("expected user in login response")
	}

	// 验证会话 Cookie
	found := false
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "classboard_session" {
			found = true
			if ck.Value != "opaque-token" {
				t.Errorf("unexpected cookie value: %s", ck.Value)
			}
			if !ck.HttpOnly {
				t.Error("session cookie must be HttpOnly")
			}
		}
	}
	if !found {
		t.Error("expected session cookie to be set")
	}
}

func TestAuthHandler_Login_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"InvalidCredentials", service.ErrInvalidCredentials, 401, "invalid credentials"},
		{"BadRole", service.ErrBadRole, 400, "role must be student or teacher"},
		{"Internal", errors.New("boom"), 500, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(testAuthConfig(), &mockAuthService{loginErr: tt.err})

			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/login", jsonBody(dto.LoginRequest{
				Role: "student", Email: "a@x.com", Password: "p",
			}))
			req.Header.Set("Content-Type", "application/json")

			r := gin.New()
			r.POST("/api/login", h.Login)
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, w.Code)
			}
			if body := decodeBody(t, w); body["error"] != tt.wantMsg {
				t.Errorf("expected error %q, got %v", tt.wantMsg, body["error"])
			}
		})
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	h := NewAuthHandler(testAuthConfig(), &mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/logout", nil)
	req.AddCookie(&http.Cookie{Name: "classboard_session", Value: "opaque-token"})

	r := gin.New()
	r.POST("/api/logout", h.Logout)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["status"] != "logged_out" {
		t.Errorf("unexpected body: %v", body)
	}
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "classboard_session" && ck.MaxAge >= 0 {
			t.Error("expected session cookie to be cleared")
		}
	}
}

func TestAuthHandler_Session(t *testing.T) {
	// 未携带 Cookie
	h := NewAuthHandler(testAuthConfig(), &mockAuthService{sessionErr: session.ErrNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/session", nil)

	r := gin.New()
	r.GET("/api/session", h.Session)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["logged_in"] != false {
		t.Errorf("expected logged_in=false, got %v", body)
	}

	// 携带有效 Cookie
	h = NewAuthHandler(testAuthConfig(), &mockAuthService{
		sessionUser: &dto.SessionUser{ID: 7, Role: "student", Name: "Alice", Email: "alice@x.com"},
	})

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/session", nil)
	req.AddCookie(&http.Cookie{Name: "classboard_session", Value: "opaque-token"})

	r = gin.New()
	r.GET("/api/session", h.Session)
	r.ServeHTTP(w, req)

	body := decodeBody(t, w)
	if body["logged_in"] != true {
		t.Errorf("expected logged_in=true, got %v", body)
	}
	if _, ok := body["user"]; !ok {
		t.Error("expected user in session response")
	}
}

// ═══════════════════════════════════════════════════════════
// AssignmentHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAssignmentHandler_List_ReturnsRawArray(t *testing.T) {
	h := NewAssignmentHandler(&mockAssignmentService{
		listResult: []model.Assignment{{ID: 2, Title: "B"}, {ID: 1, Title: "A"}},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/assignments", nil)

	r := gin.New()
	r.GET("/api/assignments", h.List)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	// 成功响应是裸数组而非包装对象
	var list []model.Assignment
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("响应不是 JSON 数组: %s", w.Body.String())
	}
	if len(list) != 2 || list[0].ID != 2 {
		t.Errorf("unexpected list: %+v", list)
	}
}

func TestAssignmentHandler_Create_JSON(t *testing.T) {
	h := NewAssignmentHandler(&mockAssignmentService{createID: 5}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/assignments", jsonBody(dto.CreateAssignmentRequest{
		Title: "HW1", Description: "read ch. 3",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/api/assignments", func(c *gin.Context) {
		setTeacher(c)
		h.Create(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["status"] != "created" || body["id"] != float64(5) {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestAssignmentHandler_Create_EmptyTitle(t *testing.T) {
	h := NewAssignmentHandler(&mockAssignmentService{createErr: service.ErrTitleRequired}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/assignments", jsonBody(dto.CreateAssignmentRequest{}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/api/assignments", func(c *gin.Context) {
		setTeacher(c)
		h.Create(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "title required" {
		t.Errorf("unexpected error message: %v", body)
	}
}

func TestAssignmentHandler_Update(t *testing.T) {
	h := NewAssignmentHandler(&mockAssignmentService{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/assignments/3", jsonBody(dto.UpdateAssignmentRequest{
		Title: "new title",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/api/assignments/:id", func(c *gin.Context) {
		setTeacher(c)
		h.Update(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["status"] != "updated" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestAssignmentHandler_Update_BadID(t *testing.T) {
	h := NewAssignmentHandler(&mockAssignmentService{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/assignments/abc", jsonBody(dto.UpdateAssignmentRequest{Title: "x"}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/api/assignments/:id", h.Update)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAssignmentHandler_Delete(t *testing.T) {
	h := NewAssignmentHandler(&mockAssignmentService{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/api/assignments/3", nil)

	r := gin.New()
	r.DELETE("/api/assignments/:id", func(c *gin.Context) {
		setTeacher(c)
		h.Delete(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["status"] != "deleted" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestAssignmentHandler_Calendar(t *testing.T) {
	h := NewAssignmentHandler(&mockAssignmentService{
		feed: "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n",
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/assignments/calendar.ics", nil)

	r := gin.New()
	r.GET("/api/assignments/calendar.ics", h.Calendar)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/calendar; charset=utf-8" {
		t.Errorf("unexpected content type: %s", ct)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("BEGIN:VCALENDAR")) {
		t.Error("expected VCALENDAR body")
	}
}

// ═══════════════════════════════════════════════════════════
// SubmissionHandler Tests
// ═══════════════════════════════════════════════════════════

func TestSubmissionHandler_Create_JSON(t *testing.T) {
	h := NewSubmissionHandler(&mockSubmissionService{submitID: 9}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/submissions", jsonBody(dto.SubmitRequest{
		AssignmentID: 3, Content: "my essay",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/api/submissions", func(c *gin.Context) {
		setStudent(c)
		h.Create(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["status"] != "submitted" || body["id"] != float64(9) {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestSubmissionHandler_Create_Unauthenticated(t *testing.T) {
	h := NewSubmissionHandler(&mockSubmissionService{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/submissions", jsonBody(dto.SubmitRequest{AssignmentID: 3, Content: "x"}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/api/submissions", h.Create) // 未注入会话
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "Not logged in" {
		t.Errorf("unexpected error message: %v", body)
	}
}

func TestSubmissionHandler_Create_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"MissingAssignmentID", service.ErrAssignmentIDRequired, "assignment_id required"},
		{"NoContentNoFile", service.ErrContentOrFileRequired, "content or file required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSubmissionHandler(&mockSubmissionService{submitErr: tt.err}, nil)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/submissions", jsonBody(dto.SubmitRequest{}))
			req.Header.Set("Content-Type", "application/json")

			r := gin.New()
			r.POST("/api/submissions", func(c *gin.Context) {
				setStudent(c)
				h.Create(c)
			})
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
			if body := decodeBody(t, w); body["error"] != tt.wantMsg {
				t.Errorf("expected error %q, got %v", tt.wantMsg, body["error"])
			}
		})
	}
}

func TestSubmissionHandler_Grade_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"Missing", service.ErrGradeRequired, 400, "grade required"},
		{"NotNumber", service.ErrGradeNotNumber, 400, "grade must be a number"},
		{"OutOfRange", service.ErrGradeOutOfRange, 400, "grade must be between 0 and 100"},
		{"Internal", errors.New("boom"), 500, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSubmissionHandler(&mockSubmissionService{gradeErr: tt.err}, nil)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("PATCH", "/api/submissions/4", jsonBody(dto.GradeRequest{Grade: "x"}))
			req.Header.Set("Content-Type", "application/json")

			r := gin.New()
			r.PATCH("/api/submissions/:id", func(c *gin.Context) {
				setTeacher(c)
				h.Grade(c)
			})
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, w.Code)
			}
			if body := decodeBody(t, w); body["error"] != tt.wantMsg {
				t.Errorf("expected error %q, got %v", tt.wantMsg, body["error"])
			}
		})
	}
}

func TestSubmissionHandler_Grade_Success(t *testing.T) {
	h := NewSubmissionHandler(&mockSubmissionService{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PATCH", "/api/submissions/4", jsonBody(dto.GradeRequest{Grade: "95", Feedback: "good"}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PATCH("/api/submissions/:id", func(c *gin.Context) {
		setTeacher(c)
		h.Grade(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["status"] != "graded" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestSubmissionHandler_List(t *testing.T) {
	h := NewSubmissionHandler(&mockSubmissionService{
		listResult: []dto.SubmissionView{{ID: 1, AssignmentID: 3, Title: "HW1", Content: "w"}},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/submissions?page=1&per_page=10", nil)

	r := gin.New()
	r.GET("/api/submissions", func(c *gin.Context) {
		setStudent(c)
		h.List(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	var list []dto.SubmissionView
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("响应不是 JSON 数组: %s", w.Body.String())
	}
	if len(list) != 1 || list[0].Title != "HW1" {
		t.Errorf("unexpected list: %+v", list)
	}
}

// ═══════════════════════════════════════════════════════════
// RosterHandler Tests
// ═══════════════════════════════════════════════════════════

func TestRosterHandler_Classlist(t *testing.T) {
	h := NewRosterHandler(&mockRosterService{
		entries: []dto.ClasslistEntry{
			{ID: 2, Name: "Alice", Email: "alice@x.com", Role: "student"},
			{ID: 3, Name: "Bob", Email: "bob@x.com", Role: "student"},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/classlist", nil)

	r := gin.New()
	r.GET("/api/classlist", func(c *gin.Context) {
		setStudent(c)
		h.Classlist(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	var list []dto.ClasslistEntry
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("响应不是 JSON 数组: %s", w.Body.String())
	}
	if len(list) != 2 || list[0].Name != "Alice" {
		t.Errorf("unexpected list: %+v", list)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_Gradebook_Success(t *testing.T) {
	h := NewExportHandler(&mockExportService{
		buf:      bytes.NewBufferString("excel content"),
		filename: "gradebook_20260828.xlsx",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/export/gradebook", nil)

	r := gin.New()
	r.GET("/api/export/gradebook", h.ExportGradebook)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected content type: %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd == "" {
		t.Error("expected Content-Disposition header")
	}
}

func TestExportHandler_Gradebook_Empty(t *testing.T) {
	h := NewExportHandler(&mockExportService{err: service.ErrExportNoSubmissions})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/export/gradebook", nil)

	r := gin.New()
	r.GET("/api/export/gradebook", h.ExportGradebook)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
