// internal/app/store/participants/participantstore.go
package participantstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/kursmanager/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const Collection = "participants"

var ErrNameRequired = errors.New("participant name is required")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// Create inserts a participant, assigning an ID and CreatedAt when missing.
func (s *Store) Create(ctx context.Context, v models.Participant) (models.Participant, error) {
	if strings.TrimSpace(v.Name) == "" {
		return models.Participant{}, ErrNameRequired
	}
	if v.ID == "" {
		v.ID = primitive.NewObjectID().Hex()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, v); err != nil {
		return models.Participant{}, err
	}
	return v, nil
}

// List returns all participants ordered by name.
func (s *Store) List(ctx context.Context) ([]models.Participant, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Participant
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of participants.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates the indexes List relies on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}},
		Options: options.Index().SetName("idx_participant_name"),
	})
	return err
}
