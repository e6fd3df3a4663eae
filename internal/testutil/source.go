package testutil

import (
	"context"
	"sync/atomic"

	"github.com/dalemusser/kursmanager/internal/domain/models"
)

// FakeSource is an in-memory record source. A non-nil *Err field makes the
// matching read fail. Safe for concurrent reads.
type FakeSource struct {
	CourseList      []models.Course
	EnrollmentList  []models.Enrollment
	InstructorList  []models.Instructor
	ParticipantList []models.Participant
	RoomList        []models.Room

	CoursesErr      error
	EnrollmentsErr  error
	InstructorsErr  error
	ParticipantsErr error
	RoomsErr        error
	PingErr         error

	// Block makes every read wait for ctx to be cancelled.
	Block bool

	calls atomic.Int64
}

// Calls returns how many collection reads were served.
func (f *FakeSource) Calls() int64 {
	return f.calls.Load()
}

func (f *FakeSource) Courses(ctx context.Context) ([]models.Course, error) {
	return serve(ctx, f, f.CourseList, f.CoursesErr)
}

func (f *FakeSource) Enrollments(ctx context.Context) ([]models.Enrollment, error) {
	return serve(ctx, f, f.EnrollmentList, f.EnrollmentsErr)
}

func (f *FakeSource) Instructors(ctx context.Context) ([]models.Instructor, error) {
	return serve(ctx, f, f.InstructorList, f.InstructorsErr)
}

func (f *FakeSource) Participants(ctx context.Context) ([]models.Participant, error) {
	return serve(ctx, f, f.ParticipantList, f.ParticipantsErr)
}

func (f *FakeSource) Rooms(ctx context.Context) ([]models.Room, error) {
	return serve(ctx, f, f.RoomList, f.RoomsErr)
}

func (f *FakeSource) Ping(ctx context.Context) error {
	return f.PingErr
}

func serve[T any](ctx context.Context, f *FakeSource, list []T, err error) ([]T, error) {
	f.calls.Add(1)
	if f.Block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, err
	}
	out := make([]T, len(list))
	copy(out, list)
	return out, nil
}
