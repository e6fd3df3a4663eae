package datasource

import (
	"context"
	"fmt"

	coursestore "github.com/dalemusser/kursmanager/internal/app/store/courses"
	enrollmentstore "github.com/dalemusser/kursmanager/internal/app/store/enrollments"
	instructorstore "github.com/dalemusser/kursmanager/internal/app/store/instructors"
	participantstore "github.com/dalemusser/kursmanager/internal/app/store/participants"
	roomstore "github.com/dalemusser/kursmanager/internal/app/store/rooms"
	"github.com/dalemusser/kursmanager/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo reads the collections from a MongoDB database.
type Mongo struct {
	db           *mongo.Database
	courses      *coursestore.Store
	enrollments  *enrollmentstore.Store
	instructors  *instructorstore.Store
	participants *participantstore.Store
	rooms        *roomstore.Store
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{
		db:           db,
		courses:      coursestore.New(db),
		enrollments:  enrollmentstore.New(db),
		instructors:  instructorstore.New(db),
		participants: participantstore.New(db),
		rooms:        roomstore.New(db),
	}
}

func (m *Mongo) Courses(ctx context.Context) ([]models.Course, error) {
	out, err := m.courses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return out, nil
}

func (m *Mongo) Enrollments(ctx context.Context) ([]models.Enrollment, error) {
	out, err := m.enrollments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return out, nil
}

func (m *Mongo) Instructors(ctx context.Context) ([]models.Instructor, error) {
	out, err := m.instructors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list instructors: %w", err)
	}
	return out, nil
}

func (m *Mongo) Participants(ctx context.Context) ([]models.Participant, error) {
	out, err := m.participants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return out, nil
}

func (m *Mongo) Rooms(ctx context.Context) ([]models.Room, error) {
	out, err := m.rooms.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return out, nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.db.Client().Ping(ctx, readpref.Primary())
}

// EnsureIndexes creates the indexes each collection's List relies on.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{string(Courses), m.courses.EnsureIndexes},
		{string(Enrollments), m.enrollments.EnsureIndexes},
		{string(Instructors), m.instructors.EnsureIndexes},
		{string(Participants), m.participants.EnsureIndexes},
		{string(Rooms), m.rooms.EnsureIndexes},
	}
	for _, s := range steps {
		if err := s.fn(ctx); err != nil {
			return fmt.Errorf("ensure %s indexes: %w", s.name, err)
		}
	}
	return nil
}
