package models

import (
	"math"
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID            int64     `json:"id" db:"id" example:"1"`                                          // Unique identifier for the user
	Name          string    `json:"name" db:"name" example:"John Doe"`                               // Full name
	Email         string    `json:"email" db:"email" example:"john@college.edu"`                     // Email address (unique, stored lowercase)
	Password      string    `json:"-" db:"password"`                                                 // Hashed password (excluded from JSON)
	Mobile        string    `json:"mobile" db:"mobile" example:"9876543210"`                         // 10-digit mobile number
	Gender        string    `json:"gender" db:"gender" example:"Male"`                               // Gender
	DOB           string    `json:"dob" db:"dob" example:"2002-08-15"`                               // Date of birth (ISO date string)
	Branch        string    `json:"branch" db:"branch" example:"CSE"`                                // Branch code, matched exactly against opening constraints
	Batch         string    `json:"batch" db:"batch" example:"2023"`                                 // Graduating batch
	EnrolmentNo   string    `json:"enrolmentNo" db:"enrolment_no" example:"0801CS201045"`            // Unique enrolment number
	CGPA          float64   `json:"cgpa" db:"cgpa" example:"7.8"`                                    // CGPA, clamped to [0,10] on write
	IsAdmin       bool      `json:"isAdmin" db:"is_admin" example:"false"`                           // Whether the user is a placement-cell admin
	EmailVerified bool      `json:"isEmailVerified" db:"email_verified" example:"true"`              // Whether the email address has been verified
	ImageURL      string    `json:"image,omitempty" db:"image_url" example:"uploads/profile.jpg"`    // Profile image URL
	ResumeURL     string    `json:"resume,omitempty" db:"resume_url" example:"uploads/resume.pdf"`   // Resume URL
	LinkedIn      string    `json:"linkedIn,omitempty" db:"linkedin" example:"linkedin.com/in/jd"`   // LinkedIn profile
	GitHub        string    `json:"github,omitempty" db:"github" example:"github.com/jdoe"`          // GitHub profile
	CreatedAt     time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`        // Timestamp when the user was created
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`        // Timestamp when the user was last updated
}

// ClampCGPA bounds a CGPA value into the valid [0,10] range.
// Broken values collapse to 0 so they can never pass a real threshold.
func ClampCGPA(cgpa float64) float64 {
	if math.IsNaN(cgpa) || cgpa < 0 {
		return 0
	}
	if cgpa > 10 {
		return 10
	}
	return cgpa
}
