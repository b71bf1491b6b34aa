package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Loboo34/heliverse-api/database"
	"github.com/Loboo34/heliverse-api/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// UserService implements the user operations of the record service.
type UserService struct {
	store        database.UserStore
	activity     *ActivityLog
	validate     *Validator
	log          *zap.Logger
	defaultLimit int64
	maxLimit     int64
}

// PageLimits bounds the paginated listing.
type PageLimits struct {
	Default int64
	Max     int64
}

const defaultPageLimit = 20

// NewUserService builds the service. A non-positive default limit falls back
// to 20 and a max below the default is raised to it.
func NewUserService(store database.UserStore, activity *ActivityLog, validate *Validator, limits PageLimits, log *zap.Logger) *UserService {
	if limits.Default < 1 {
		limits.Default = defaultPageLimit
	}
	if limits.Max < limits.Default {
		limits.Max = limits.Default
	}

	return &UserService{
		store:        store,
		activity:     activity,
		validate:     validate,
		log:          log.Named("services.users"),
		defaultLimit: limits.Default,
		maxLimit:     limits.Max,
	}
}

func (s *UserService) ListAll(ctx context.Context) ([]models.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// ListPage returns one page of users. Non-positive page or limit fall back to
// 1 and the default limit; page is clamped into [1, totalPages]. With no
// users the result is page 1 of 0 with an empty slice.
func (s *UserService) ListPage(ctx context.Context, page, limit int64) (*models.UserPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	total, err := s.store.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	totalPages := (total + limit - 1) / limit
	if totalPages == 0 {
		return &models.UserPage{Users: []models.User{}, TotalPages: 0, CurrentPage: 1}, nil
	}
	if page > totalPages {
		page = totalPages
	}

	users, err := s.store.ListUsersPage(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, fmt.Errorf("list users page: %w", err)
	}

	return &models.UserPage{Users: users, TotalPages: totalPages, CurrentPage: page}, nil
}

func (s *UserService) Get(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.store.FindUser(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// Create validates in, assigns the next sequential id and stores the user.
// A duplicate email is reported as ErrConflict and nothing is written.
func (s *UserService) Create(ctx context.Context, in models.UserInput) (*models.User, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}

	nextID, err := s.store.NextUserID(ctx)
	if err != nil {
		return nil, fmt.Errorf("next user id: %w", err)
	}

	user := in.ToUser()
	user.UserID = nextID

	if err := s.store.InsertUser(ctx, &user); err != nil {
		if errors.Is(err, database.ErrDuplicateKey) {
			s.log.Info("duplicate user email", zap.String("email", user.Email))
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.activity.Record(models.ActionUserCreate, user.ID.Hex(), fmt.Sprintf("user %d created", user.UserID))
	return &user, nil
}

// Update merges patch into the stored user, re-validates the result and
// persists only the fields the patch sets.
func (s *UserService) Update(ctx context.Context, id primitive.ObjectID, patch models.UserPatch) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	merged := *existing
	patch.ApplyTo(&merged)
	if err := s.validate.Struct(merged); err != nil {
		return err
	}

	if patch.IsEmpty() {
		return nil
	}

	if err := s.store.UpdateUser(ctx, id, patch); err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			return ErrNotFound
		case errors.Is(err, database.ErrDuplicateKey):
			return ErrConflict
		}
		return fmt.Errorf("update user: %w", err)
	}

	s.activity.Record(models.ActionUserUpdate, id.Hex(), fmt.Sprintf("user %d updated", existing.UserID))
	return nil
}

// Delete removes the user. ErrNotFound is returned alongside a zero-count
// result when nothing matched.
func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	n, err := s.store.DeleteUser(ctx, id)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("delete user: %w", err)
	}

	result := models.DeleteResult{Acknowledged: true, DeletedCount: n}
	if n == 0 {
		return result, ErrNotFound
	}

	s.activity.Record(models.ActionUserDelete, id.Hex(), "user deleted")
	return result, nil
}
