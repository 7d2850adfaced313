package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/codetrack/internal/app/system/auth"
	"go.uber.org/zap"
)

// WithUser adds a signed-in user to the request context, bypassing the
// session cookie.
func WithUser(r *http.Request, username string) *http.Request {
	return auth.WithTestUser(r, &auth.SessionUser{Username: username, SessionID: "test-session-id"})
}

// NewSessionManager builds a SessionManager suitable for handler tests.
func NewSessionManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager("test-session-key-for-testing-only-32c", "test-session", "", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	return sm
}

// NewFormRequest builds a url-encoded form POST.
func NewFormRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// Replay builds a request carrying the cookies rec set. A handler that saves
// the session twice emits two Set-Cookie headers; like a browser, only the
// last one per name is kept.
func Replay(rec *httptest.ResponseRecorder, method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	last := map[string]*http.Cookie{}
	var order []string
	for _, c := range rec.Result().Cookies() {
		if _, seen := last[c.Name]; !seen {
			order = append(order, c.Name)
		}
		last[c.Name] = c
	}
	for _, name := range order {
		req.AddCookie(last[name])
	}
	return req
}

// Flashes reads the flash messages a handler queued on rec.
func Flashes(sm *auth.SessionManager, rec *httptest.ResponseRecorder) []string {
	return sm.Flashes(httptest.NewRecorder(), Replay(rec, http.MethodGet, "/"))
}

// RenderSafely calls fn, swallowing a panic from template rendering when
// templates have not been booted in the test binary.
func RenderSafely(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertRedirect checks for a redirect to the expected location.
func (r *ResponseRecorder) AssertRedirect(t interface{ Errorf(string, ...any) }, expectedLocation string) {
	if r.Code != http.StatusSeeOther && r.Code != http.StatusFound && r.Code != http.StatusMovedPermanently {
		t.Errorf("expected redirect status, got %d", r.Code)
	}
	location := r.Header().Get("Location")
	if location != expectedLocation {
		t.Errorf("redirect location: got %q, want %q", location, expectedLocation)
	}
}
