package userstore

import (
	"context"
	"errors"

	"github.com/dalemusser/codetrack/internal/app/system/normalize"
	"github.com/dalemusser/codetrack/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor for stored password hashes.
const BcryptCost = 12

var (
	// ErrUsernameExists is returned by Create when the normalized username is taken.
	ErrUsernameExists = errors.New("username already exists")
	// ErrInvalidCredentials is returned by Authenticate for an unknown username
	// and for a wrong password alike, so callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("incorrect username and/or password")
)

type Store struct {
	c    *mongo.Collection
	cost int
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users"), cost: BcryptCost}
}

// WithCost returns a copy of the store hashing at the given bcrypt cost.
// Tests use bcrypt.MinCost.
func (s *Store) WithCost(cost int) *Store {
	cp := *s
	cp.cost = cost
	return &cp
}

// GetByUsername looks up a user by normalized username.
// Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"username": normalize.Username(username)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Exists reports whether the normalized username is taken.
func (s *Store) Exists(ctx context.Context, username string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"username": normalize.Username(username)}).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, err
}

// Create registers a user. The username is lowercased and the password
// stored as a salted bcrypt hash. A taken username yields ErrUsernameExists
// whether it is caught by the lookup or by the unique index.
func (s *Store) Create(ctx context.Context, username, rawPassword string) (models.User, error) {
	username = normalize.Username(username)

	taken, err := s.Exists(ctx, username)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, ErrUsernameExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), s.cost)
	if err != nil {
		return models.User{}, err
	}

	u := models.User{
		ID:       primitive.NewObjectID(),
		Username: username,
		Password: string(hash),
	}
	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrUsernameExists
		}
		return models.User{}, err
	}
	return u, nil
}

// Authenticate checks rawPassword against the stored hash for username.
// Unknown users and wrong passwords both return ErrInvalidCredentials.
func (s *Store) Authenticate(ctx context.Context, username, rawPassword string) (*models.User, error) {
	u, err := s.GetByUsername(ctx, username)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(rawPassword)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
