// internal/app/store/courses/coursestore.go
package coursestore

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

// Collection is the MongoDB collection holding courses.
const Collection = "courses"

var (
	ErrTitleRequired  = errors.New("course title is required")
	ErrEndBeforeStart = errors.New("course end date is before its start date")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// Create inserts a course, assigning an ID and CreatedAt when missing.
// Start and end dates are stored as calendar dates (models.CalendarDate).
func (s *Store) Create(ctx context.Context, c models.Course) (models.Course, error) {
	if strings.TrimSpace(c.Title) == "" {
		return models.Course{}, ErrTitleRequired
	}
	c.StartDate = models.CalendarDate(c.StartDate)
	c.EndDate = models.CalendarDate(c.EndDate)
	if c.StartDate != nil && c.EndDate != nil && c.EndDate.Before(*c.StartDate) {
		return models.Course{}, ErrEndBeforeStart
	}
	if c.ID == "" {
		c.ID = primitive.NewObjectID().Hex()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Course{}, err
	}
	return c, nil
}

// List returns all courses ordered by start date (unscheduled first), then ID.
func (s *Store) List(ctx context.Context) ([]models.Course, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Course
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns a course by its ID.
func (s *Store) GetByID(ctx context.Context, id string) (models.Course, error) {
	var c models.Course
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return models.Course{}, err
	}
	return c, nil
}

// Count returns the number of courses.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates the indexes List relies on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "start_date", Value: 1}, {Key: "_id", Value: 1}},
		Options: options.Index().SetName("idx_course_start"),
	})
	return err
}
