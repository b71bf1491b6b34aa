// Package database holds the document store behind the record service.
package database

import (
	"context"
	"errors"

	"github.com/Loboo34/heliverse-api/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound is returned when no document matches the identifier.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateKey is returned when a write violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)

// UserStore exposes the Users collection.
type UserStore interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	ListUsersPage(ctx context.Context, skip, limit int64) ([]models.User, error)
	CountUsers(ctx context.Context) (int64, error)
	FindUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	InsertUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, id primitive.ObjectID, patch models.UserPatch) error
	DeleteUser(ctx context.Context, id primitive.ObjectID) (int64, error)
	// NextUserID atomically hands out the next numeric user id.
	NextUserID(ctx context.Context) (int64, error)
}

// TeamStore exposes the Teams collection.
type TeamStore interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	InsertTeam(ctx context.Context, team *models.Team) error
	DeleteTeam(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// ActivityStore persists audit entries.
type ActivityStore interface {
	InsertActivity(ctx context.Context, entry models.ActivityLog) error
}

// Store aggregates every collection the service touches.
type Store interface {
	UserStore
	TeamStore
	ActivityStore
	Ping(ctx context.Context) error
}
