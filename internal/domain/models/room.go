package models

import "time"

type Room struct {
	ID        string    `bson:"_id" json:"id" db:"id"`
	Name      string    `bson:"name" json:"name" db:"name"`
	Building  string    `bson:"building,omitempty" json:"building,omitempty" db:"building"`
	Capacity  int       `bson:"capacity" json:"capacity" db:"capacity"`
	CreatedAt time.Time `bson:"created_at" json:"created_at" db:"created_at"`
}
