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

type TeamService struct {
	store    database.TeamStore
	activity *ActivityLog
	validate *Validator
	log      *zap.Logger
}

func NewTeamService(store database.TeamStore, activity *ActivityLog, validate *Validator, log *zap.Logger) *TeamService {
	return &TeamService{
		store:    store,
		activity: activity,
		validate: validate,
		log:      log.Named("services.teams"),
	}
}

func (s *TeamService) ListAll(ctx context.Context) ([]models.Team, error) {
	teams, err := s.store.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

// Create stores team; a taken name yields ErrConflict.
func (s *TeamService) Create(ctx context.Context, team models.Team) (*models.Team, error) {
	team.ID = primitive.NilObjectID
	if err := s.validate.Struct(team); err != nil {
		return nil, err
	}

	if err := s.store.InsertTeam(ctx, &team); err != nil {
		if errors.Is(err, database.ErrDuplicateKey) {
			s.log.Info("duplicate team name", zap.String("name", team.Name))
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("create team: %w", err)
	}

	s.activity.Record(models.ActionTeamCreate, team.ID.Hex(), fmt.Sprintf("team %q created", team.Name))
	return &team, nil
}

func (s *TeamService) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	n, err := s.store.DeleteTeam(ctx, id)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("delete team: %w", err)
	}

	result := models.DeleteResult{Acknowledged: true, DeletedCount: n}
	if n == 0 {
		return result, ErrNotFound
	}

	s.activity.Record(models.ActionTeamDelete, id.Hex(), "team deleted")
	return result, nil
}
