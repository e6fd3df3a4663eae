package models

import "time"

// Course is a scheduled course offering.
//
// StartDate and EndDate are calendar dates; their wall clock is read in the
// application time zone. A nil StartDate means the course is not scheduled yet.
type Course struct {
	ID          string `bson:"_id" json:"id" db:"id"`
	Title       string `bson:"title" json:"title" db:"title"`
	Description string `bson:"description,omitempty" json:"description,omitempty" db:"description"`

	StartDate *time.Time `bson:"start_date,omitempty" json:"start_date,omitempty" db:"start_date"`
	EndDate   *time.Time `bson:"end_date,omitempty" json:"end_date,omitempty" db:"end_date"`
	Price     *float64   `bson:"price,omitempty" json:"price,omitempty" db:"price"` // EUR

	InstructorRef Ref `bson:"instructor_ref,omitempty" json:"instructor_ref,omitempty" db:"instructor_ref"`
	RoomRef       Ref `bson:"room_ref,omitempty" json:"room_ref,omitempty" db:"room_ref"`

	CreatedAt time.Time `bson:"created_at" json:"created_at" db:"created_at"`
}

// PriceOrZero returns the course price, treating an absent price as 0.
func (c Course) PriceOrZero() float64 {
	if c.Price == nil {
		return 0
	}
	return *c.Price
}
