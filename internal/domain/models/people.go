package models

import "time"

// Instructor teaches courses.
type Instructor struct {
	ID        string    `bson:"_id" json:"id" db:"id"`
	Name      string    `bson:"name" json:"name" db:"name"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty" db:"email"`
	Subject   string    `bson:"subject,omitempty" json:"subject,omitempty" db:"subject"` // area of expertise
	CreatedAt time.Time `bson:"created_at" json:"created_at" db:"created_at"`
}

// Participant is a person who can enroll in courses.
type Participant struct {
	ID        string    `bson:"_id" json:"id" db:"id"`
	Name      string    `bson:"name" json:"name" db:"name"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty" db:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty" db:"phone"`
	CreatedAt time.Time `bson:"created_at" json:"created_at" db:"created_at"`
}
