package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/codetrack/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data directly in the
// collections, bypassing the stores under test.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user with a bcrypt hash of password (MinCost, to keep
// tests fast).
func (f *Fixtures) CreateUser(ctx context.Context, username, password string) models.User {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("hash password: %v", err)
	}
	u := models.User{
		ID:       primitive.NewObjectID(),
		Username: username,
		Password: string(hash),
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateProgram inserts a program with the given name.
func (f *Fixtures) CreateProgram(ctx context.Context, name string) models.Program {
	f.t.Helper()

	p := models.Program{ID: primitive.NewObjectID(), Name: name}
	if _, err := f.db.Collection("programs").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test program: %v", err)
	}
	return p
}

// CreateExercise inserts a not-done exercise owned by createdBy.
func (f *Fixtures) CreateExercise(ctx context.Context, program, name, link, createdBy string) models.Exercise {
	f.t.Helper()

	ex := models.Exercise{
		ID:          primitive.NewObjectID(),
		ProgramName: program,
		Name:        name,
		Link:        link,
		IsDone:      models.ExerciseNotDone,
		DateAdded:   models.EpochSeconds(time.Now()),
		CreatedBy:   createdBy,
	}
	if _, err := f.db.Collection("exercices").InsertOne(ctx, ex); err != nil {
		f.t.Fatalf("failed to create test exercise: %v", err)
	}
	return ex
}

// CreateLink inserts a reference link.
func (f *Fixtures) CreateLink(ctx context.Context, name, description, url string) models.Link {
	f.t.Helper()

	l := models.Link{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: description,
		URL:         url,
	}
	if _, err := f.db.Collection("links").InsertOne(ctx, l); err != nil {
		f.t.Fatalf("failed to create test link: %v", err)
	}
	return l
}
