package models

import "time"

// Enrollment books a participant onto a course.
type Enrollment struct {
	ID             string     `bson:"_id" json:"id" db:"id"`
	CourseRef      Ref        `bson:"course_ref" json:"course_ref" db:"course_ref"`
	ParticipantRef Ref        `bson:"participant_ref,omitempty" json:"participant_ref,omitempty" db:"participant_ref"`
	Paid           bool       `bson:"paid" json:"paid" db:"paid"`
	EnrolledOn     *time.Time `bson:"enrolled_on,omitempty" json:"enrolled_on,omitempty" db:"enrolled_on"`
	CreatedAt      time.Time  `bson:"created_at" json:"created_at" db:"created_at"`
}
