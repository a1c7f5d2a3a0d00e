package dto

import (
	"time"

	"github.com/minwoo/dormhub/internal/app/models"
)

// OutingApplyRequest represents an overnight-outing request
type OutingApplyRequest struct {
	Name          string `json:"name" binding:"required" example:"Lee"`
	StudentNumber string `json:"studentNumber" binding:"required" example:"2021002"`
	OutDate       string `json:"outDate" binding:"required" example:"2024-05-01"`
}

// OutingApplicationResponse is the JSON view of an outing application
type OutingApplicationResponse struct {
	ID            int64      `json:"id" example:"1"`
	UserID        int64      `json:"userId" example:"2"`
	Name          string     `json:"name" example:"Lee"`
	StudentNumber string     `json:"studentNumber" example:"2021002"`
	OutDate       string     `json:"outDate" example:"2024-05-01"`
	Status        string     `json:"status" example:"pending"`
	AppliedAt     time.Time  `json:"appliedAt"`
	DecidedBy     *int64     `json:"decidedBy,omitempty"`
	DecidedAt     *time.Time `json:"decidedAt,omitempty"`
}

// NewOutingApplicationResponse maps a model to its response DTO
func NewOutingApplicationResponse(o *models.OutingApplication) *OutingApplicationResponse {
	if o == nil {
		return nil
	}
	return &OutingApplicationResponse{
		ID:            o.ID,
		UserID:        o.UserID,
		Name:          o.Name,
		StudentNumber: o.StudentNumber,
		OutDate:       o.OutDate.Format("2006-01-02"),
		Status:        string(o.Status),
		AppliedAt:     o.AppliedAt,
		DecidedBy:     o.DecidedBy,
		DecidedAt:     o.DecidedAt,
	}
}

// NewOutingApplicationListResponse maps a slice of models to response DTOs
func NewOutingApplicationListResponse(apps []*models.OutingApplication) []*OutingApplicationResponse {
	out := make([]*OutingApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, NewOutingApplicationResponse(a))
	}
	return out
}
