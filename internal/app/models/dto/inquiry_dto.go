package dto

import (
	"time"

	"github.com/minwoo/dormhub/internal/app/models"
)

// CreateInquiryRequest represents a new inquiry
type CreateInquiryRequest struct {
	Title   string `json:"title" binding:"required" example:"Broken heater"`
	Content string `json:"content" binding:"required" example:"The heater in room 301 does not work"`
}

// AnswerInquiryRequest represents a staff answer
type AnswerInquiryRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// InquiryAnswerResponse is the JSON view of an inquiry answer
type InquiryAnswerResponse struct {
	ID         int64     `json:"id" example:"1"`
	AdminID    int64     `json:"adminId" example:"9"`
	Answer     string    `json:"answer"`
	AnsweredAt time.Time `json:"answeredAt"`
}

// InquiryResponse is the JSON view of an inquiry with its optional answer
type InquiryResponse struct {
	ID        int64                  `json:"id" example:"1"`
	UserID    int64                  `json:"userId" example:"2"`
	Title     string                 `json:"title"`
	Content   string                 `json:"content"`
	CreatedAt time.Time              `json:"createdAt"`
	Answer    *InquiryAnswerResponse `json:"answer,omitempty"`
}

// NewInquiryAnswerResponse maps an answer model to its response DTO
func NewInquiryAnswerResponse(a *models.InquiryAnswer) *InquiryAnswerResponse {
	if a == nil {
		return nil
	}
	return &InquiryAnswerResponse{
		ID:         a.ID,
		AdminID:    a.AdminID,
		Answer:     a.Answer,
		AnsweredAt: a.AnsweredAt,
	}
}

// NewInquiryResponse maps an inquiry model to its response DTO
func NewInquiryResponse(i *models.Inquiry) *InquiryResponse {
	if i == nil {
		return nil
	}
	return &InquiryResponse{
		ID:        i.ID,
		UserID:    i.UserID,
		Title:     i.Title,
		Content:   i.Content,
		CreatedAt: i.CreatedAt,
		Answer:    NewInquiryAnswerResponse(i.Answer),
	}
}

// NewInquiryListResponse maps a slice of inquiries to response DTOs
func NewInquiryListResponse(inquiries []*models.Inquiry) []*InquiryResponse {
	out := make([]*InquiryResponse, 0, len(inquiries))
	for _, i := range inquiries {
		out = append(out, NewInquiryResponse(i))
	}
	return out
}
