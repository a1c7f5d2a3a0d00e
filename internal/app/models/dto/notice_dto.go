package dto

import (
	"time"

	"github.com/minwoo/dormhub/internal/app/models"
)

// CreateNoticeRequest represents a staff announcement (multipart form)
type CreateNoticeRequest struct {
	Title   string `form:"title" binding:"required" example:"Fire drill"`
	Content string `form:"content" binding:"required" example:"Fire drill on Friday at 10:00"`
}

// UpdateNoticeRequest represents a partial notice update
type UpdateNoticeRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// NoticeResponse is the JSON view of a notice
type NoticeResponse struct {
	ID       int64     `json:"id" example:"1"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	ImageURL *string   `json:"imageUrl,omitempty"`
	Date     time.Time `json:"date"`
}

// NewNoticeResponse maps a notice model to its response DTO
func NewNoticeResponse(n *models.Notice, imageBaseURL string) *NoticeResponse {
	if n == nil {
		return nil
	}
	resp := &NoticeResponse{
		ID:      n.ID,
		Title:   n.Title,
		Content: n.Content,
		Date:    n.Date,
	}
	if n.ImagePath != nil && *n.ImagePath != "" {
		url := imageBaseURL + "/" + *n.ImagePath
		resp.ImageURL = &url
	}
	return resp
}

// NewNoticeListResponse maps a slice of notices to response DTOs
func NewNoticeListResponse(notices []*models.Notice, imageBaseURL string) []*NoticeResponse {
	out := make([]*NoticeResponse, 0, len(notices))
	for _, n := range notices {
		out = append(out, NewNoticeResponse(n, imageBaseURL))
	}
	return out
}
