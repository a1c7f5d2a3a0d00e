package models

import "time"

// Notice is a staff-authored announcement, read-only to students
type Notice struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	ImagePath *string   `json:"imagePath,omitempty" db:"image_path"`
	Date      time.Time `json:"date" db:"date"`
}
