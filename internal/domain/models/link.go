// internal/domain/models/link.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Link is a saved reference URL with a short name and description.
type Link struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"link_name" json:"link_name"`
	Description string             `bson:"link_description" json:"link_description"`
	URL         string             `bson:"link_url" json:"link_url"`
}
