// internal/domain/models/program.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Program is a category name used to group exercises. Names are not unique.
type Program struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"program_name" json:"program_name"`
}
