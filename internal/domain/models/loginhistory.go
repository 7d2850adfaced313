// internal/domain/models/loginhistory.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoginRecord captures a single successful sign-in, including the one that
// follows registration. SessionID matches the id carried in the session
// cookie and in request logs.
type LoginRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	SessionID string             `bson:"session_id"`
	IP        string             `bson:"ip"`
	UserAgent string             `bson:"user_agent,omitempty"`
	Method    string             `bson:"method"` // "password" or "register"
	CreatedAt time.Time          `bson:"created_at"`
}
