// models/user.go
package models

import "time"

// Budget is a per-person spending range.
type Budget struct {
	Min      float64 `bson:"min" firestore:"min" json:"min"`
	Max      float64 `bson:"max" firestore:"max" json:"max"`
	Currency string  `bson:"currency" firestore:"currency" json:"currency"`
}

// Availability captures when a user is free to meet.
type Availability struct {
	TimeSlots []string `bson:"timeSlots" firestore:"timeSlots" json:"timeSlots"`
}

// UserPreferences holds the inputs the recommendation provider matches
// against. Pointer fields distinguish "not provided" from "set to zero" so
// partial saves only touch what the caller sent.
type UserPreferences struct {
	Budget       *Budget       `bson:"budget,omitempty" firestore:"budget,omitempty" json:"budget,omitempty"`
	Activities   []string      `bson:"activities,omitempty" firestore:"activities,omitempty" json:"activities,omitempty"`
	Notes        string        `bson:"notes,omitempty" firestore:"notes,omitempty" json:"notes,omitempty"`
	Availability *Availability `bson:"availability,omitempty" firestore:"availability,omitempty" json:"availability,omitempty"`
}

// User is a document in the "users" collection, keyed by the externally
// assigned auth subject id. Users are created on their first preference save
// and only ever merge-updated; nothing in this system deletes them.
type User struct {
	ID          string           `bson:"id" firestore:"-" json:"id"`
	Name        string           `bson:"name,omitempty" firestore:"name,omitempty" json:"name,omitempty"`
	Email       string           `bson:"email,omitempty" firestore:"email,omitempty" json:"email,omitempty"`
	Preferences *UserPreferences `bson:"preferences,omitempty" firestore:"preferences,omitempty" json:"preferences,omitempty"`
	CreatedAt   time.Time        `bson:"createdAt,omitempty" firestore:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time        `bson:"updatedAt,omitempty" firestore:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
