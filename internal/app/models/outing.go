package models

import "time"

// OutingApplication defines an overnight-leave request based on the
// 'outing_applications' table. Status moves pending -> approved | rejected,
// decided only by staff. AppliedAt is set at creation and never updated.
type OutingApplication struct {
	ID            int64        `json:"id" db:"id"`
	UserID        int64        `json:"userId" db:"user_id"`
	Name          string       `json:"name" db:"name"`
	StudentNumber string       `json:"studentNumber" db:"student_number"`
	OutDate       time.Time    `json:"outDate" db:"out_date"`
	Status        OutingStatus `json:"status" db:"status"`
	AppliedAt     time.Time    `json:"appliedAt" db:"applied_at"`
	DecidedBy     *int64       `json:"decidedBy,omitempty" db:"decided_by"`
	DecidedAt     *time.Time   `json:"decidedAt,omitempty" db:"decided_at"`
}
