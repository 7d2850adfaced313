package register_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	uierrors "github.com/dalemusser/codetrack/internal/app/features/errors"
	"github.com/dalemusser/codetrack/internal/app/features/register"
	"github.com/dalemusser/codetrack/internal/app/system/auth"
	"github.com/dalemusser/codetrack/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newTestHandler(t *testing.T) (*register.Handler, *auth.SessionManager, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	sm := testutil.NewSessionManager(t)
	h := register.NewHandler(db, sm, uierrors.NewErrorLogger(logger), logger)
	h.Users = h.Users.WithCost(bcrypt.MinCost)
	return h, sm, db
}

func TestHandleRegisterPost_Success(t *testing.T) {
	handler, sm, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	rec := httptest.NewRecorder()
	handler.HandleRegisterPost(rec, testutil.NewFormRequest("POST", "/register", url.Values{
		"username": {"NewUser"},
		"password": {"hunter22"},
	}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/profile/newuser" {
		t.Errorf("Location: got %q, want %q", loc, "/profile/newuser")
	}

	var stored struct {
		Password string `bson:"password"`
	}
	if err := db.Collection("users").FindOne(ctx, bson.M{"username": "newuser"}).Decode(&stored); err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.Password == "hunter22" {
		t.Error("password stored in clear text")
	}

	if flashes := testutil.Flashes(sm, rec); len(flashes) != 1 || flashes[0] != register.FlashRegistered {
		t.Errorf("flashes: got %v, want [%s]", flashes, register.FlashRegistered)
	}
}

func TestHandleRegisterPost_DuplicateUsername(t *testing.T) {
	handler, sm, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	testutil.NewFixtures(t, db).CreateUser(ctx, "taken", "pw")

	rec := httptest.NewRecorder()
	handler.HandleRegisterPost(rec, testutil.NewFormRequest("POST", "/register", url.Values{
		"username": {"TAKEN"},
		"password": {"other"},
	}))

	if loc := rec.Header().Get("Location"); loc != "/register" {
		t.Errorf("Location: got %q, want /register", loc)
	}
	if flashes := testutil.Flashes(sm, rec); len(flashes) != 1 || flashes[0] != register.FlashUsernameTaken {
		t.Errorf("flashes: got %v, want [%s]", flashes, register.FlashUsernameTaken)
	}

	n, err := db.Collection("users").CountDocuments(ctx, bson.M{"username": "taken"})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("users named taken: got %d, want 1", n)
	}

	// A rejected registration does not sign anyone in.
	var signedIn bool
	sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, signedIn = auth.CurrentUser(r)
	})).ServeHTTP(httptest.NewRecorder(), testutil.Replay(rec, "GET", "/"))
	if signedIn {
		t.Error("expected no session user after failed registration")
	}
}

func TestHandleRegisterPost_BlankFieldsPassedThrough(t *testing.T) {
	handler, sm, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	rec := httptest.NewRecorder()
	handler.HandleRegisterPost(rec, testutil.NewFormRequest("POST", "/register", url.Values{
		"username": {"   "},
	}))

	if flashes := testutil.Flashes(sm, rec); len(flashes) != 1 || flashes[0] != register.FlashRegistered {
		t.Errorf("flashes: got %v, want [%s]", flashes, register.FlashRegistered)
	}
	n, err := db.Collection("users").CountDocuments(ctx, bson.M{"username": ""})
	if err != nil {
		t.Fatalf("count users: %v", err)
	}
	if n != 1 {
		t.Errorf("users with blank name: got %d, want 1", n)
	}

	// The blank name is now taken like any other.
	rec = httptest.NewRecorder()
	handler.HandleRegisterPost(rec, testutil.NewFormRequest("POST", "/register", url.Values{}))
	if flashes := testutil.Flashes(sm, rec); len(flashes) != 1 || flashes[0] != register.FlashUsernameTaken {
		t.Errorf("second blank registration flashes: got %v", flashes)
	}
}

func TestHandleRegisterPost_RecordsSignIn(t *testing.T) {
	handler, _, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	handler.HandleRegisterPost(httptest.NewRecorder(), testutil.NewFormRequest("POST", "/register", url.Values{
		"username": {"zoe"},
		"password": {"pw"},
	}))

	n, err := db.Collection("login_records").CountDocuments(ctx, bson.M{"username": "zoe", "method": "register"})
	if err != nil {
		t.Fatalf("count login records: %v", err)
	}
	if n != 1 {
		t.Errorf("login records for zoe: got %d, want 1", n)
	}
}
