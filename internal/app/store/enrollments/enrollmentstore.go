// internal/app/store/enrollments/enrollmentstore.go
package enrollmentstore

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

const Collection = "enrollments"

var ErrCourseRequired = errors.New("enrollment must reference a course")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// Create inserts an enrollment, assigning an ID and CreatedAt when missing.
func (s *Store) Create(ctx context.Context, e models.Enrollment) (models.Enrollment, error) {
	if strings.TrimSpace(string(e.CourseRef)) == "" {
		return models.Enrollment{}, ErrCourseRequired
	}
	e.EnrolledOn = models.CalendarDate(e.EnrolledOn)
	if e.ID == "" {
		e.ID = primitive.NewObjectID().Hex()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, e); err != nil {
		return models.Enrollment{}, err
	}
	return e, nil
}

// List returns all enrollments in insertion order.
func (s *Store) List(ctx context.Context) ([]models.Enrollment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Enrollment
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of enrollments; paidOnly restricts to paid ones.
func (s *Store) Count(ctx context.Context, paidOnly bool) (int64, error) {
	filter := bson.M{}
	if paidOnly {
		filter["paid"] = true
	}
	return s.c.CountDocuments(ctx, filter)
}

// EnsureIndexes creates the indexes List relies on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("idx_enrollment_created"),
		},
		{
			Keys:    bson.D{{Key: "course_ref", Value: 1}},
			Options: options.Index().SetName("idx_enrollment_course"),
		},
	})
	return err
}
