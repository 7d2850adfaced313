// internal/app/store/programs/programstore.go
package programstore

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
	return &Store{c: db.Collection("programs")}
}

// List returns every program sorted by name, ascending.
func (s *Store) List(ctx context.Context) ([]models.Program, error) {
	opts := options.Find().SetSort(bson.D{{Key: "program_name", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.Program, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Program, error) {
	var p models.Program
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	return p, err
}

// Create inserts a program. Names are not required to be unique.
func (s *Store) Create(ctx context.Context, name string) (models.Program, error) {
	p := models.Program{ID: primitive.NewObjectID(), Name: name}
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Program{}, err
	}
	return p, nil
}

// Replace swaps the stored document for one holding only name. Exercises that
// carry the old name are left as they are. A missing id is a no-op.
func (s *Store) Replace(ctx context.Context, id primitive.ObjectID, name string) error {
	_, err := s.c.ReplaceOne(ctx, bson.M{"_id": id}, models.Program{ID: id, Name: name})
	return err
}

// Delete removes the program. Deleting an unknown id is not an error.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
