package database

import (
	"context"
	"fmt"
	"sync"

	"github.com/Loboo34/heliverse-api/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-process Store with the same uniqueness rules as the
// Mongo indexes. It backs the service and handler tests.
type MemoryStore struct {
	mu       sync.RWMutex
	users    []models.User
	teams    []models.Team
	activity []models.ActivityLog
	seq      int64
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store whose first user id is start.
func NewMemoryStore(start int64) *MemoryStore {
	return &MemoryStore{seq: start - 1}
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) ListUsers(context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *MemoryStore) ListUsersPage(_ context.Context, skip, limit int64) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := int64(len(s.users))
	if skip >= total || limit <= 0 {
		return []models.User{}, nil
	}
	end := skip + limit
	if end > total {
		end = total
	}
	out := make([]models.User, end-skip)
	copy(out, s.users[skip:end])
	return out, nil
}

func (s *MemoryStore) CountUsers(context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.users)), nil
}

func (s *MemoryStore) FindUser(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.userIndex(id); i >= 0 {
		user := s.users[i]
		return &user, nil
	}
	return nil, fmt.Errorf("find user: %w", ErrNotFound)
}

func (s *MemoryStore) InsertUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email || u.UserID == user.UserID {
			return fmt.Errorf("insert user: %w", ErrDuplicateKey)
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users = append(s.users, *user)
	return nil
}

func (s *MemoryStore) UpdateUser(_ context.Context, id primitive.ObjectID, patch models.UserPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(id)
	if i < 0 {
		return fmt.Errorf("update user: %w", ErrNotFound)
	}
	if patch.Email != nil {
		for j, u := range s.users {
			if j != i && u.Email == *patch.Email {
				return fmt.Errorf("update user: %w", ErrDuplicateKey)
			}
		}
	}
	patch.ApplyTo(&s.users[i])
	return nil
}

func (s *MemoryStore) DeleteUser(_ context.Context, id primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(id)
	if i < 0 {
		return 0, nil
	}
	s.users = append(s.users[:i], s.users[i+1:]...)
	return 1, nil
}

func (s *MemoryStore) NextUserID(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	return s.seq, nil
}

func (s *MemoryStore) ListTeams(context.Context) ([]models.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Team, len(s.teams))
	copy(out, s.teams)
	return out, nil
}

func (s *MemoryStore) InsertTeam(_ context.Context, team *models.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.teams {
		if t.Name == team.Name {
			return fmt.Errorf("insert team: %w", ErrDuplicateKey)
		}
	}
	if team.ID.IsZero() {
		team.ID = primitive.NewObjectID()
	}
	s.teams = append(s.teams, *team)
	return nil
}

func (s *MemoryStore) DeleteTeam(_ context.Context, id primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.teams {
		if t.ID == id {
			s.teams = append(s.teams[:i], s.teams[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *MemoryStore) InsertActivity(_ context.Context, entry models.ActivityLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	s.activity = append(s.activity, entry)
	return nil
}

// Activity returns a copy of the recorded audit entries.
func (s *MemoryStore) Activity() []models.ActivityLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ActivityLog, len(s.activity))
	copy(out, s.activity)
	return out
}

func (s *MemoryStore) userIndex(id primitive.ObjectID) int {
	for i, u := range s.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}
