package models

import "time"

// Selection records a placement outcome linking one student to one opening.
// The 'selections' table enforces a unique constraint on student_id so a
// student can hold at most one active placement.
type Selection struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	StudentID int64     `json:"studentId" db:"student_id" example:"5"` // User ID of the placed student
	OpeningID int64     `json:"openingId" db:"opening_id" example:"3"` // Opening the student was selected for
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Student *User    `json:"studentDetails,omitempty"`
	Opening *Opening `json:"companyDetails,omitempty"`
}
