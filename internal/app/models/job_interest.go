package models

import "time"

// JobInterest is a student's declared interest (or disinterest) in one
// opening, based on the 'job_interests' table. A compound unique constraint
// on (user_id, opening_id) guarantees at most one record per pair; writes go
// through an upsert.
type JobInterest struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	UserID       int64     `json:"userId" db:"user_id" example:"5"`
	OpeningID    int64     `json:"openingId" db:"opening_id" example:"3"`
	IsInterested bool      `json:"isInterested" db:"is_interested" example:"true"`
	Reason       string    `json:"reason,omitempty" db:"reason"`               // Optional free-text note from the student
	IsEligible   bool      `json:"isEligible" db:"is_eligible" example:"true"` // Eligibility snapshot taken at write time
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	// Relation (populated for statistics listings)
	User *User `json:"user,omitempty"`
}
