package userstore

import (
	"context"

	"github.com/dalemusser/codetrack/internal/app/system/auth"
	"github.com/dalemusser/codetrack/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Fetcher implements auth.UserFetcher: a signed cookie only counts while its
// username still exists in the users collection.
type Fetcher struct {
	users *mongo.Collection
}

// NewFetcher creates a UserFetcher that queries the given database.
func NewFetcher(db *mongo.Database) *Fetcher {
	return &Fetcher{users: db.Collection("users")}
}

// FetchUser returns nil if the user is not found or any error occurs.
func (f *Fetcher) FetchUser(ctx context.Context, username string) *auth.SessionUser {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	var u struct {
		Username string `bson:"username"`
	}
	proj := options.FindOne().SetProjection(bson.M{"username": 1})
	if err := f.users.FindOne(ctx, bson.M{"username": username}, proj).Decode(&u); err != nil {
		return nil
	}
	return &auth.SessionUser{Username: u.Username}
}
