package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/Loboo34/heliverse-api/config"
	"github.com/Loboo34/heliverse-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const (
	countersCollection = "counters"
	activityCollection = "activity-log"

	userCounterID = "users"
)

// MongoStore implements Store on top of a MongoDB database.
type MongoStore struct {
	db       *mongo.Database
	users    *mongo.Collection
	teams    *mongo.Collection
	counters *mongo.Collection
	activity *mongo.Collection
	log      *zap.Logger
}

var _ Store = (*MongoStore)(nil)

// NewMongoStore binds the collections named in cfg.
func NewMongoStore(db *mongo.Database, cfg config.MongoConfig, log *zap.Logger) *MongoStore {
	return &MongoStore{
		db:       db,
		users:    db.Collection(cfg.UsersCollection),
		teams:    db.Collection(cfg.TeamsCollection),
		counters: db.Collection(countersCollection),
		activity: db.Collection(activityCollection),
		log:      log.Named("database.mongo"),
	}
}

// EnsureIndexes creates the unique indexes that back email, id and team name
// uniqueness. It is idempotent.
func (m *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := m.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("email_1")},
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true).SetName("id_1")},
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}

	_, err = m.teams.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("name_1"),
	})
	if err != nil {
		return fmt.Errorf("create team indexes: %w", err)
	}

	m.log.Info("indexes ensured")
	return nil
}

// SyncUserCounter raises the id sequence so the next id is at least start and
// above every id already stored.
func (m *MongoStore) SyncUserCounter(ctx context.Context, start int64) error {
	floor := start - 1

	var last models.User
	err := m.users.FindOne(ctx, bson.D{},
		options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}}).SetProjection(bson.M{"id": 1}),
	).Decode(&last)
	switch {
	case err == nil:
		if last.UserID > floor {
			floor = last.UserID
		}
	case errors.Is(err, mongo.ErrNoDocuments):
	default:
		return fmt.Errorf("find max user id: %w", err)
	}

	_, err = m.counters.UpdateOne(ctx,
		bson.M{"_id": userCounterID},
		bson.M{"$max": bson.M{"seq": floor}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("sync user counter: %w", err)
	}

	m.log.Info("user counter synced", zap.Int64("floor", floor))
	return nil
}

func (m *MongoStore) Ping(ctx context.Context) error {
	return m.db.Client().Ping(ctx, readpref.Primary())
}

func (m *MongoStore) ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := m.users.Find(ctx, bson.D{})
	if err != nil {
		return nil, mapError("find users", err)
	}
	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, mapError("decode users", err)
	}
	return users, nil
}

func (m *MongoStore) ListUsersPage(ctx context.Context, skip, limit int64) ([]models.User, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "id", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := m.users.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, mapError("find users page", err)
	}
	users := make([]models.User, 0, limit)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, mapError("decode users page", err)
	}
	return users, nil
}

func (m *MongoStore) CountUsers(ctx context.Context) (int64, error) {
	n, err := m.users.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, mapError("count users", err)
	}
	return n, nil
}

func (m *MongoStore) FindUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := m.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, mapError("find user", err)
	}
	return &user, nil
}

// InsertUser stores user and sets its ObjectID.
func (m *MongoStore) InsertUser(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if _, err := m.users.InsertOne(ctx, user); err != nil {
		return mapError("insert user", err)
	}
	return nil
}

func (m *MongoStore) UpdateUser(ctx context.Context, id primitive.ObjectID, patch models.UserPatch) error {
	result, err := m.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(patch.Fields())})
	if err != nil {
		return mapError("update user", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("update user: %w", ErrNotFound)
	}
	return nil
}

func (m *MongoStore) DeleteUser(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := m.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, mapError("delete user", err)
	}
	return result.DeletedCount, nil
}

func (m *MongoStore) NextUserID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := m.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": userCounterID},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, mapError("next user id", err)
	}
	return counter.Seq, nil
}

func (m *MongoStore) ListTeams(ctx context.Context) ([]models.Team, error) {
	cursor, err := m.teams.Find(ctx, bson.D{})
	if err != nil {
		return nil, mapError("find teams", err)
	}
	teams := make([]models.Team, 0)
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, mapError("decode teams", err)
	}
	return teams, nil
}

// InsertTeam stores team and sets its ObjectID.
func (m *MongoStore) InsertTeam(ctx context.Context, team *models.Team) error {
	if team.ID.IsZero() {
		team.ID = primitive.NewObjectID()
	}
	if _, err := m.teams.InsertOne(ctx, team); err != nil {
		return mapError("insert team", err)
	}
	return nil
}

func (m *MongoStore) DeleteTeam(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := m.teams.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, mapError("delete team", err)
	}
	return result.DeletedCount, nil
}

func (m *MongoStore) InsertActivity(ctx context.Context, entry models.ActivityLog) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if _, err := m.activity.InsertOne(ctx, entry); err != nil {
		return mapError("insert activity", err)
	}
	return nil
}

func mapError(op string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", op, ErrDuplicateKey)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
