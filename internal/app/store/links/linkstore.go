// internal/app/store/links/linkstore.go
package linkstore

import (
	"context"

	"github.com/dalemusser/codetrack/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("links")}
}

// List returns every link sorted by name, ascending.
func (s *Store) List(ctx context.Context) ([]models.Link, error) {
	opts := options.Find().SetSort(bson.D{{Key: "link_name", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.Link, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a link as submitted; any field may be empty. Links have no
// update; fix one by deleting and adding it again.
func (s *Store) Create(ctx context.Context, l models.Link) (models.Link, error) {
	l.ID = primitive.NewObjectID()
	if _, err := s.c.InsertOne(ctx, l); err != nil {
		return models.Link{}, err
	}
	return l, nil
}

// Delete removes the link. Deleting an unknown id is not an error.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
