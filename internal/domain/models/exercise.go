// internal/domain/models/exercise.go
package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise completion values. IsDone is stored as a string, not a bool, to stay
// compatible with documents already in the exercices collection.
const (
	ExerciseDone    = "yes"
	ExerciseNotDone = "no"
)

// Exercise is a single tracked coding exercise, tagged with the name of the
// Program it belongs to. ProgramName is a plain string; deleting a Program does
// not touch exercises that reference it.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProgramName string             `bson:"program_name" json:"program_name"`
	Name        string             `bson:"exercice_name" json:"exercice_name"`
	Link        string             `bson:"exercice_link" json:"exercice_link"`
	IsDone      string             `bson:"is_done" json:"is_done"` // "yes" | "no"
	Comment     string             `bson:"exercice_comment" json:"exercice_comment"`
	DateAdded   float64            `bson:"exercice_date_added,omitempty" json:"exercice_date_added,omitempty"` // epoch seconds
	CreatedBy   string             `bson:"created_by" json:"created_by"`
}

// Done reports whether the exercise is marked complete.
func (e Exercise) Done() bool {
	return e.IsDone == ExerciseDone
}

// AddedAt converts DateAdded back into a time.Time (UTC). Zero when unset.
func (e Exercise) AddedAt() time.Time {
	if e.DateAdded == 0 {
		return time.Time{}
	}
	sec, frac := math.Modf(e.DateAdded)
	return time.Unix(int64(sec), int64(frac*1e9)).UTC()
}

// EpochSeconds renders t as fractional seconds since the Unix epoch, the format
// used for exercice_date_added.
func EpochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

// DoneValue maps a checkbox-style presence flag onto the stored IsDone value.
func DoneValue(checked bool) string {
	if checked {
		return ExerciseDone
	}
	return ExerciseNotDone
}
