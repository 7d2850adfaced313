package exercises_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	uierrors "github.com/dalemusser/codetrack/internal/app/features/errors"
	"github.com/dalemusser/codetrack/internal/app/features/exercises"
	"github.com/dalemusser/codetrack/internal/app/system/auth"
	"github.com/dalemusser/codetrack/internal/app/system/timeouts"
	"github.com/dalemusser/codetrack/internal/domain/models"
	"github.com/dalemusser/codetrack/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type env struct {
	h  *exercises.Handler
	sm *auth.SessionManager
	db *mongo.Database
	fx *testutil.Fixtures
}

func newEnv(t *testing.T) env {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	sm := testutil.NewSessionManager(t)
	return env{
		h:  exercises.NewHandler(db, sm, uierrors.NewErrorLogger(logger), logger),
		sm: sm,
		db: db,
		fx: testutil.NewFixtures(t, db),
	}
}

func (e env) get(t *testing.T, id primitive.ObjectID) models.Exercise {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()
	var ex models.Exercise
	if err := e.db.Collection("exercices").FindOne(ctx, bson.M{"_id": id}).Decode(&ex); err != nil {
		t.Fatalf("load exercise: %v", err)
	}
	return ex
}

func assertFlash(t *testing.T, sm *auth.SessionManager, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	got := testutil.Flashes(sm, rec)
	if len(got) != 1 || got[0] != want {
		t.Errorf("flashes: got %v, want [%s]", got, want)
	}
}

func TestHandleNew_CreatesWithDefaults(t *testing.T) {
	e := newEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := testutil.WithUser(testutil.NewFormRequest("POST", "/add_exercice", url.Values{
		"program_name":  {"Go Tour"},
		"exercice_name": {"Slices"},
		"exercice_link": {"https://go.dev/tour/moretypes/7"},
	}), "alice")
	rec := httptest.NewRecorder()
	e.h.HandleNew(rec, req)

	if loc := rec.Header().Get("Location"); loc != "/get_exercices" {
		t.Errorf("Location: got %q, want /get_exercices", loc)
	}
	assertFlash(t, e.sm, rec, exercises.FlashAdded)

	var ex models.Exercise
	if err := e.db.Collection("exercices").FindOne(ctx, bson.M{"exercice_name": "Slices"}).Decode(&ex); err != nil {
		t.Fatalf("exercise not stored: %v", err)
	}
	if ex.IsDone != models.ExerciseNotDone {
		t.Errorf("is_done: got %q, want %q", ex.IsDone, models.ExerciseNotDone)
	}
	if ex.Comment != "" {
		t.Errorf("comment: got %q, want empty", ex.Comment)
	}
	if ex.CreatedBy != "alice" {
		t.Errorf("created_by: got %q, want alice", ex.CreatedBy)
	}
	if ex.DateAdded == 0 {
		t.Error("expected date added to be set")
	}
}

func TestHandleEdit_CheckboxAndFullReplace(t *testing.T) {
	e := newEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	orig := e.fx.CreateExercise(ctx, "Go Tour", "Maps", "https://go.dev/tour/moretypes/19", "alice")

	// Checked box, no link field at all.
	req := testutil.NewFormRequest("POST", "/edit_exercice/"+orig.ID.Hex(), url.Values{
		"program_name":     {"Go Tour"},
		"exercice_name":    {"Maps"},
		"is_done":          {"yes"},
		"exercice_comment": {"word count done"},
	})
	req = testutil.WithChiURLParam(testutil.WithUser(req, "bob"), "id", orig.ID.Hex())
	rec := httptest.NewRecorder()
	e.h.HandleEdit(rec, req)

	assertFlash(t, e.sm, rec, exercises.FlashUpdated)

	got := e.get(t, orig.ID)
	if got.IsDone != models.ExerciseDone {
		t.Errorf("is_done: got %q, want yes", got.IsDone)
	}
	if got.Link != "" {
		t.Errorf("link: got %q, want empty after full replace", got.Link)
	}
	if got.Comment != "word count done" {
		t.Errorf("comment: got %q", got.Comment)
	}
	if got.CreatedBy != "bob" {
		t.Errorf("created_by: got %q, want bob (the editor)", got.CreatedBy)
	}

	// Box left unchecked flips it back.
	req = testutil.NewFormRequest("POST", "/edit_exercice/"+orig.ID.Hex(), url.Values{
		"program_name":  {"Go Tour"},
		"exercice_name": {"Maps"},
	})
	req = testutil.WithChiURLParam(testutil.WithUser(req, "bob"), "id", orig.ID.Hex())
	e.h.HandleEdit(httptest.NewRecorder(), req)

	if got := e.get(t, orig.ID); got.IsDone != models.ExerciseNotDone {
		t.Errorf("is_done after unchecking: got %q, want no", got.IsDone)
	}
}

func TestHandleEdit_UnknownIDIsSilent(t *testing.T) {
	e := newEnv(t)

	for _, id := range []string{primitive.NewObjectID().Hex(), "not-an-id"} {
		req := testutil.NewFormRequest("POST", "/edit_exercice/"+id, url.Values{"exercice_name": {"x"}})
		req = testutil.WithChiURLParam(testutil.WithUser(req, "alice"), "id", id)
		rec := httptest.NewRecorder()
		e.h.HandleEdit(rec, req)

		if rec.Code != http.StatusSeeOther {
			t.Errorf("%s: expected status %d, got %d", id, http.StatusSeeOther, rec.Code)
		}
	}
}

func TestServeEdit_NotFoundRedirects(t *testing.T) {
	e := newEnv(t)

	for _, id := range []string{primitive.NewObjectID().Hex(), "zzz"} {
		req := testutil.WithChiURLParam(testutil.WithUser(httptest.NewRequest("GET", "/edit_exercice/"+id, nil), "alice"), "id", id)
		rec := httptest.NewRecorder()
		e.h.ServeEdit(rec, req)

		if loc := rec.Header().Get("Location"); loc != "/get_exercices" {
			t.Errorf("%s: Location got %q, want /get_exercices", id, loc)
		}
		assertFlash(t, e.sm, rec, exercises.FlashNotFound)
	}
}

func TestHandleDelete(t *testing.T) {
	e := newEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ex := e.fx.CreateExercise(ctx, "p", "n", "", "alice")

	// Plain GET, as from a link.
	req := testutil.WithChiURLParam(testutil.WithUser(httptest.NewRequest("GET", "/delete_exercice/"+ex.ID.Hex(), nil), "alice"), "id", ex.ID.Hex())
	rec := httptest.NewRecorder()
	e.h.HandleDelete(rec, req)

	if loc := rec.Header().Get("Location"); loc != "/get_exercices" {
		t.Errorf("Location: got %q, want /get_exercices", loc)
	}
	assertFlash(t, e.sm, rec, exercises.FlashDeleted)

	n, err := e.db.Collection("exercices").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("expected exercise to be gone, %d left", n)
	}

	// Deleting it again still reports success.
	rec = httptest.NewRecorder()
	req = testutil.WithChiURLParam(testutil.WithUser(httptest.NewRequest("GET", "/delete_exercice/"+ex.ID.Hex(), nil), "alice"), "id", ex.ID.Hex())
	e.h.HandleDelete(rec, req)
	assertFlash(t, e.sm, rec, exercises.FlashDeleted)
}

func TestServeList_And_Search_Render(t *testing.T) {
	e := newEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	e.fx.CreateExercise(ctx, "Go Tour", "Goroutines", "", "alice")

	testutil.RenderSafely(func() {
		e.h.ServeList(httptest.NewRecorder(), httptest.NewRequest("GET", "/get_exercices", nil))
	})
	testutil.RenderSafely(func() {
		e.h.ServeSearch(httptest.NewRecorder(), testutil.NewFormRequest("POST", "/search", url.Values{"query": {"goroutines"}}))
	})
	testutil.RenderSafely(func() {
		e.h.ServeSearch(httptest.NewRecorder(), httptest.NewRequest("GET", "/search?query=", nil))
	})
}

func chiRouter(e env) http.Handler {
	r := chi.NewRouter()
	r.Use(e.sm.LoadSessionUser)
	r.Group(exercises.Routes(e.h, e.sm))
	return r
}

func TestRoutes_MutationsRequireSignIn(t *testing.T) {
	e := newEnv(t)

	r := chiRouter(e)
	for _, path := range []string{"/add_exercice", "/edit_exercice/" + primitive.NewObjectID().Hex(), "/delete_exercice/" + primitive.NewObjectID().Hex()} {
		req := httptest.NewRequest("GET", path, nil)
		req.Header.Set("Accept", "text/html")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusSeeOther {
			t.Errorf("%s: expected status %d, got %d", path, http.StatusSeeOther, rec.Code)
		}
		if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/login") {
			t.Errorf("%s: expected redirect to /login, got %q", path, loc)
		}
	}
}

func TestServeList_UsesListDeadline(t *testing.T) {
	e := newEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	e.fx.CreateExercise(ctx, "Go Tour", "Goroutines", "", "alice")

	// A point-lookup deadline no query can meet must not affect list pages.
	timeouts.Configure(timeouts.Config{Short: time.Nanosecond})
	t.Cleanup(timeouts.Reset)

	for name, fn := range map[string]func(http.ResponseWriter, *http.Request){
		"list":   e.h.ServeList,
		"search": e.h.ServeSearch,
	} {
		rec := httptest.NewRecorder()
		testutil.RenderSafely(func() {
			fn(rec, httptest.NewRequest("GET", "/search?query=goroutines", nil))
		})
		if rec.Code == http.StatusInternalServerError {
			t.Errorf("%s: got 500 with a tiny single-document timeout", name)
		}
	}
}
