// internal/app/store/exercises/exercisestore.go
package exercisestore

import (
	"context"
	"strings"
	"time"

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
	return &Store{c: db.Collection("exercices")}
}

// List returns every exercise in natural order. Presentation decides sorting.
func (s *Store) List(ctx context.Context) ([]models.Exercise, error) {
	return s.find(ctx, bson.M{})
}

// Search runs a $text query over program, name and comment. A blank query
// matches everything.
func (s *Store) Search(ctx context.Context, q string) ([]models.Exercise, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return s.List(ctx)
	}
	return s.find(ctx, bson.M{"$text": bson.M{"$search": q}})
}

// ListByCreator returns the exercises a user added, newest first.
func (s *Store) ListByCreator(ctx context.Context, username string) ([]models.Exercise, error) {
	opts := options.Find().SetSort(bson.D{{Key: "exercice_date_added", Value: -1}})
	return s.find(ctx, bson.M{"created_by": username}, opts)
}

// GetByID returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Exercise, error) {
	var ex models.Exercise
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&ex)
	return ex, err
}

// Create inserts a new exercise. Completion starts at "no", the comment
// empty, and the added date at now, whatever the caller passed.
func (s *Store) Create(ctx context.Context, ex models.Exercise) (models.Exercise, error) {
	ex.ID = primitive.NewObjectID()
	ex.IsDone = models.ExerciseNotDone
	ex.Comment = ""
	ex.DateAdded = models.EpochSeconds(time.Now())

	if _, err := s.c.InsertOne(ctx, ex); err != nil {
		return models.Exercise{}, err
	}
	return ex, nil
}

// Replace overwrites every editable field of the exercise with ex. Only _id
// and exercice_date_added survive from the stored document; anything left
// blank in ex is blank afterwards. A missing id is a no-op.
func (s *Store) Replace(ctx context.Context, id primitive.ObjectID, ex models.Exercise) error {
	if ex.IsDone != models.ExerciseDone {
		ex.IsDone = models.ExerciseNotDone
	}
	doc := bson.M{
		"program_name":     ex.ProgramName,
		"exercice_name":    ex.Name,
		"exercice_link":    ex.Link,
		"is_done":          ex.IsDone,
		"exercice_comment": ex.Comment,
		"created_by":       ex.CreatedBy,
	}

	// $literal keeps user text beginning with "$" from reading as a field path.
	pipeline := mongo.Pipeline{
		{{Key: "$replaceWith", Value: bson.M{
			"$mergeObjects": bson.A{
				bson.M{"_id": "$_id", "exercice_date_added": "$exercice_date_added"},
				bson.M{"$literal": doc},
			},
		}}},
	}
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, pipeline)
	return err
}

// Delete removes the exercise. Deleting an unknown id is not an error.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *Store) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Exercise, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.Exercise, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
