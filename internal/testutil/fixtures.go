package testutil

import (
	"context"
	"testing"
	"time"

	coursestore "github.com/dalemusser/kursmanager/internal/app/store/courses"
	enrollmentstore "github.com/dalemusser/kursmanager/internal/app/store/enrollments"
	instructorstore "github.com/dalemusser/kursmanager/internal/app/store/instructors"
	participantstore "github.com/dalemusser/kursmanager/internal/app/store/participants"
	roomstore "github.com/dalemusser/kursmanager/internal/app/store/rooms"
	"github.com/dalemusser/kursmanager/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// Berlin is the application zone the tests run the dashboard in.
var Berlin = mustLoad("Europe/Berlin")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// Date returns a calendar date in its stored form (UTC midnight).
func Date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// Price returns a pointer to p.
func Price(p float64) *float64 {
	return &p
}

// Course builds an unsaved course.
func Course(id, title string, start, end *time.Time, price *float64) models.Course {
	return models.Course{ID: id, Title: title, StartDate: start, EndDate: end, Price: price}
}

// Enrollment builds an unsaved enrollment for the given course reference.
func Enrollment(id string, courseRef string, paid bool) models.Enrollment {
	return models.Enrollment{ID: id, CourseRef: models.Ref(courseRef), Paid: paid}
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateCourse stores a course and returns it with its generated ID.
func (f *Fixtures) CreateCourse(ctx context.Context, c models.Course) models.Course {
	f.t.Helper()
	out, err := coursestore.New(f.db).Create(ctx, c)
	if err != nil {
		f.t.Fatalf("failed to create test course: %v", err)
	}
	return out
}

// CreateEnrollment stores an enrollment for courseID.
func (f *Fixtures) CreateEnrollment(ctx context.Context, courseID string, paid bool) models.Enrollment {
	f.t.Helper()
	out, err := enrollmentstore.New(f.db).Create(ctx, models.Enrollment{CourseRef: models.Ref(courseID), Paid: paid})
	if err != nil {
		f.t.Fatalf("failed to create test enrollment: %v", err)
	}
	return out
}

// CreateInstructor stores an instructor with the given name.
func (f *Fixtures) CreateInstructor(ctx context.Context, name string) models.Instructor {
	f.t.Helper()
	out, err := instructorstore.New(f.db).Create(ctx, models.Instructor{Name: name})
	if err != nil {
		f.t.Fatalf("failed to create test instructor: %v", err)
	}
	return out
}

// CreateParticipant stores a participant with the given name.
func (f *Fixtures) CreateParticipant(ctx context.Context, name string) models.Participant {
	f.t.Helper()
	out, err := participantstore.New(f.db).Create(ctx, models.Participant{Name: name})
	if err != nil {
		f.t.Fatalf("failed to create test participant: %v", err)
	}
	return out
}

// CreateRoom stores a room with the given name and capacity.
func (f *Fixtures) CreateRoom(ctx context.Context, name string, capacity int) models.Room {
	f.t.Helper()
	out, err := roomstore.New(f.db).Create(ctx, models.Room{Name: name, Capacity: capacity})
	if err != nil {
		f.t.Fatalf("failed to create test room: %v", err)
	}
	return out
}
