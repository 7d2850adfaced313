package userstore_test

import (
	"testing"

	userstore "github.com/dalemusser/codetrack/internal/app/store/users"
	"github.com/dalemusser/codetrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func newStore(t *testing.T) (*userstore.Store, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return userstore.New(db).WithCost(bcrypt.MinCost), testutil.NewFixtures(t, db)
}

func TestStore_Create_NormalizesAndHashes(t *testing.T) {
	store, fx := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, "  Alice ", "s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, primitive.NilObjectID, created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.NotEqual(t, "s3cret", created.Password, "password must not be stored raw")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret")))

	n, err := fx.DB().Collection("users").CountDocuments(ctx, bson.M{"username": "alice"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestStore_Create_DuplicateUsername(t *testing.T) {
	store, fx := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, "bob", "first")
	require.NoError(t, err)

	// Same name after normalization.
	_, err = store.Create(ctx, "BOB", "second")
	assert.ErrorIs(t, err, userstore.ErrUsernameExists)

	n, err := fx.DB().Collection("users").CountDocuments(ctx, bson.M{"username": "bob"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "duplicate registration must not create a second record")
}

func TestStore_Create_BlankValuesStoredAsGiven(t *testing.T) {
	store, _ := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, "   ", "")
	require.NoError(t, err)
	assert.Equal(t, "", created.Username)

	u, err := store.Authenticate(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)
}

func TestStore_Authenticate(t *testing.T) {
	store, fx := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateUser(ctx, "dave", "correct-horse")

	u, err := store.Authenticate(ctx, "Dave", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "dave", u.Username)
}

func TestStore_Authenticate_FailuresAreIndistinguishable(t *testing.T) {
	store, fx := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateUser(ctx, "erin", "right")

	_, wrongPw := store.Authenticate(ctx, "erin", "wrong")
	_, noUser := store.Authenticate(ctx, "nobody", "right")

	assert.ErrorIs(t, wrongPw, userstore.ErrInvalidCredentials)
	assert.ErrorIs(t, noUser, userstore.ErrInvalidCredentials)
	assert.Equal(t, wrongPw.Error(), noUser.Error())
}

func TestStore_Exists(t *testing.T) {
	store, fx := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateUser(ctx, "frank", "pw")

	ok, err := store.Exists(ctx, "FRANK")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Exists(ctx, "grace")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFetcher_FetchUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateUser(ctx, "heidi", "pw")
	f := userstore.NewFetcher(db)

	if u := f.FetchUser(ctx, "heidi"); u == nil || u.Username != "heidi" {
		t.Errorf("FetchUser(heidi) = %+v, want heidi", u)
	}
	if u := f.FetchUser(ctx, "ivan"); u != nil {
		t.Errorf("FetchUser(ivan) = %+v, want nil", u)
	}
}
