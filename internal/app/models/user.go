package models

import (
	"fmt"
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID          int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Username    string    `json:"username" db:"username" example:"kim2021"`                 // Login name, also the student identifier
	Email       string    `json:"email" db:"email" example:"kim@dorm.ac.kr"`                // User's email address
	Password    string    `json:"-" db:"password"`                                          // User's hashed password (excluded from JSON)
	IsStaff     bool      `json:"isStaff" db:"is_staff" example:"false"`                    // Whether the user has the staff role
	IsSuperuser bool      `json:"isSuperuser" db:"is_superuser" example:"false"`            // Whether the user is a superuser
	CreatedAt   time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated
}

// AnonAuthorID derives the display identifier shown instead of a username on
// community-board content: the last four digits of the internal numeric id.
func AnonAuthorID(userID int64) string {
	return fmt.Sprintf("%04d", userID%10000)
}

// Profile defines the per-user profile based on the 'profiles' table.
// Reward and penalty points are mutable only through staff point adjustment.
type Profile struct {
	ID           int64  `json:"id" db:"id"`
	UserID       int64  `json:"userId" db:"user_id"`
	FullName     string `json:"fullName" db:"full_name"`
	Department   string `json:"department" db:"department"`
	PhoneNumber  string `json:"phoneNumber" db:"phone_number"`
	RewardPoint  int    `json:"rewardPoint" db:"reward_point"`
	PenaltyPoint int    `json:"penaltyPoint" db:"penalty_point"`

	// Related entities
	User *User `json:"user,omitempty"`
}
