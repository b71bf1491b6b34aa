// Package handlers exposes the record service over HTTP.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/Loboo34/heliverse-api/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// UserService is the user side of the record service.
type UserService interface {
	ListAll(ctx context.Context) ([]models.User, error)
	ListPage(ctx context.Context, page, limit int64) (*models.UserPage, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Create(ctx context.Context, in models.UserInput) (*models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.UserPatch) error
	Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error)
}

// TeamService is the team side of the record service.
type TeamService interface {
	ListAll(ctx context.Context) ([]models.Team, error)
	Create(ctx context.Context, team models.Team) (*models.Team, error)
	Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error)
}

// Pinger reports store reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	users   UserService
	teams   TeamService
	store   Pinger
	log     *zap.Logger
	timeout time.Duration
}

func NewHandler(users UserService, teams TeamService, store Pinger, timeout time.Duration, log *zap.Logger) *Handler {
	return &Handler{
		users:   users,
		teams:   teams,
		store:   store,
		log:     log.Named("handlers"),
		timeout: timeout,
	}
}

// requestContext bounds store work by the request lifetime and the configured timeout.
func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.timeout)
}
