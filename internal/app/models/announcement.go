package models

import "time"

// Announcement is a notice published by the placement cell. Result
// announcements (shortlists, final selections) are flagged with IsResult.
type Announcement struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Title     string    `json:"title" db:"title" example:"Acme Corp drive on 12th"`
	Content   string    `json:"content" db:"content"`
	IsResult  bool      `json:"isResult" db:"is_result" example:"false"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
