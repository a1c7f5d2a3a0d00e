package models

import "time"

// Inquiry represents a student question at the inquiry desk
type Inquiry struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	Answer *InquiryAnswer `json:"answer,omitempty"`
}

// InquiryAnswer is the at-most-one staff answer for an inquiry. AdminID keeps
// the author of the first answer even when a later staff member rewrites the
// text.
type InquiryAnswer struct {
	ID         int64     `json:"id" db:"id"`
	InquiryID  int64     `json:"inquiryId" db:"inquiry_id"`
	AdminID    int64     `json:"adminId" db:"admin_id"`
	Answer     string    `json:"answer" db:"answer"`
	AnsweredAt time.Time `json:"answeredAt" db:"answered_at"`
}
