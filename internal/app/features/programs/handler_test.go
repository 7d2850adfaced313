package programs_test

import (
	"net/http/httptest"
	"net/url"
	"testing"

	uierrors "github.com/dalemusser/codetrack/internal/app/features/errors"
	"github.com/dalemusser/codetrack/internal/app/features/programs"
	"github.com/dalemusser/codetrack/internal/app/system/auth"
	"github.com/dalemusser/codetrack/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*programs.Handler, *auth.SessionManager, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	sm := testutil.NewSessionManager(t)
	return programs.NewHandler(db, sm, uierrors.NewErrorLogger(logger), logger), sm, db
}

func TestHandleNew(t *testing.T) {
	h, sm, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	rec := testutil.NewRecorder()
	req := testutil.WithUser(testutil.NewFormRequest("POST", "/add_program", url.Values{"program_name": {"  Exercism "}}), "alice")
	h.HandleNew(rec, req)

	rec.AssertRedirect(t, "/get_programs")
	if f := testutil.Flashes(sm, rec.ResponseRecorder); len(f) != 1 || f[0] != programs.FlashAdded {
		t.Errorf("flashes: got %v", f)
	}

	n, err := db.Collection("programs").CountDocuments(ctx, bson.M{"program_name": "Exercism"})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 program named Exercism, got %d", n)
	}
}

func TestHandleEdit_ReplacesName(t *testing.T) {
	h, sm, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := testutil.NewFixtures(t, db).CreateProgram(ctx, "Go Tuor")

	req := testutil.NewFormRequest("POST", "/edit_program/"+p.ID.Hex(), url.Values{"program_name": {"Go Tour"}})
	req = testutil.WithChiURLParam(testutil.WithUser(req, "alice"), "id", p.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleEdit(rec, req)

	rec.AssertRedirect(t, "/get_programs")
	if f := testutil.Flashes(sm, rec.ResponseRecorder); len(f) != 1 || f[0] != programs.FlashUpdated {
		t.Errorf("flashes: got %v", f)
	}

	var got struct {
		Name string `bson:"program_name"`
	}
	if err := db.Collection("programs").FindOne(ctx, bson.M{"_id": p.ID}).Decode(&got); err != nil {
		t.Fatalf("load program: %v", err)
	}
	if got.Name != "Go Tour" {
		t.Errorf("program_name: got %q, want %q", got.Name, "Go Tour")
	}
}

func TestServeEdit_UnknownRedirects(t *testing.T) {
	h, sm, _ := newTestHandler(t)

	id := primitive.NewObjectID().Hex()
	req := testutil.WithChiURLParam(testutil.WithUser(httptest.NewRequest("GET", "/edit_program/"+id, nil), "alice"), "id", id)
	rec := testutil.NewRecorder()
	h.ServeEdit(rec, req)

	rec.AssertRedirect(t, "/get_programs")
	if f := testutil.Flashes(sm, rec.ResponseRecorder); len(f) != 1 || f[0] != programs.FlashNotFound {
		t.Errorf("flashes: got %v", f)
	}
}

func TestHandleDelete_LeavesExercises(t *testing.T) {
	h, sm, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	p := fx.CreateProgram(ctx, "Exercism")
	fx.CreateExercise(ctx, "Exercism", "Leap", "", "alice")

	req := testutil.WithChiURLParam(testutil.WithUser(httptest.NewRequest("GET", "/delete_program/"+p.ID.Hex(), nil), "alice"), "id", p.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleDelete(rec, req)

	rec.AssertRedirect(t, "/get_programs")
	if f := testutil.Flashes(sm, rec.ResponseRecorder); len(f) != 1 || f[0] != programs.FlashDeleted {
		t.Errorf("flashes: got %v", f)
	}

	if n, _ := db.Collection("programs").CountDocuments(ctx, bson.M{}); n != 0 {
		t.Errorf("expected program deleted, %d left", n)
	}
	if n, _ := db.Collection("exercices").CountDocuments(ctx, bson.M{"program_name": "Exercism"}); n != 1 {
		t.Errorf("expected exercise to survive, got %d", n)
	}
}

func TestServeList_Renders(t *testing.T) {
	h, _, _ := newTestHandler(t)
	testutil.RenderSafely(func() {
		h.ServeList(httptest.NewRecorder(), httptest.NewRequest("GET", "/get_programs", nil))
	})
}
