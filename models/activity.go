package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ActionUserCreate = "user.create"
	ActionUserUpdate = "user.update"
	ActionUserDelete = "user.delete"
	ActionTeamCreate = "team.create"
	ActionTeamDelete = "team.delete"
)

// ActivityLog is an audit entry written after every successful mutation.
type ActivityLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Action    string             `bson:"action" json:"action"`
	RecordID  string             `bson:"record_id" json:"record_id"`
	Message   string             `bson:"message" json:"message"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
