package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Team is a record of the Teams collection. Members entries are stored as
// received; objects come back from the store as maps.
type Team struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name    string             `bson:"name" json:"name" validate:"required"`
	Members []interface{}      `bson:"members" json:"members" validate:"required"`
}
