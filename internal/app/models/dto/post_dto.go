package dto

import (
	"time"

	"github.com/minwoo/dormhub/internal/app/models"
)

// CreatePostRequest represents a new board post (multipart form)
type CreatePostRequest struct {
	Title   string `form:"title" binding:"required" example:"Lost keys"`
	Content string `form:"content" binding:"required" example:"Found a set of keys in building A"`
}

// UpdatePostRequest represents a partial post update
type UpdatePostRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// CreateCommentRequest represents a new comment on a post
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CommentResponse is the JSON view of a comment. The author is shown by an
// anonymized id, never by username.
type CommentResponse struct {
	ID         int64     `json:"id" example:"1"`
	AuthorID   int64     `json:"authorId" example:"3"`
	AnonAuthor string    `json:"anonAuthor" example:"0003"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

// PostResponse is the JSON view of a post
type PostResponse struct {
	ID         int64              `json:"id" example:"1"`
	AuthorID   int64              `json:"authorId" example:"3"`
	AnonAuthor string             `json:"anonAuthor" example:"0003"`
	Title      string             `json:"title"`
	Content    string             `json:"content"`
	ImageURL   *string            `json:"imageUrl,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
	LikeCount  int64              `json:"likeCount" example:"5"`
	Comments   []*CommentResponse `json:"comments"`
}

// PostListResponse is a paginated page of posts
type PostListResponse struct {
	Posts      []*PostResponse `json:"posts"`
	Pagination PaginationInfo  `json:"pagination"`
}

// LikeToggleResponse reports the resulting like state after a toggle
type LikeToggleResponse struct {
	IsLiked   bool  `json:"isLiked" example:"true"`
	LikeCount int64 `json:"likeCount" example:"6"`
}

// NewCommentResponse maps a comment model to its response DTO
func NewCommentResponse(c *models.Comment) *CommentResponse {
	if c == nil {
		return nil
	}
	return &CommentResponse{
		ID:         c.ID,
		AuthorID:   c.AuthorID,
		AnonAuthor: models.AnonAuthorID(c.AuthorID),
		Content:    c.Content,
		CreatedAt:  c.CreatedAt,
	}
}

// NewCommentListResponse maps a slice of comments to response DTOs
func NewCommentListResponse(comments []*models.Comment) []*CommentResponse {
	out := make([]*CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, NewCommentResponse(c))
	}
	return out
}

// NewPostResponse maps a post model to its response DTO. imageBaseURL is
// prepended to the stored image path when present.
func NewPostResponse(p *models.Post, imageBaseURL string) *PostResponse {
	if p == nil {
		return nil
	}
	resp := &PostResponse{
		ID:         p.ID,
		AuthorID:   p.AuthorID,
		AnonAuthor: models.AnonAuthorID(p.AuthorID),
		Title:      p.Title,
		Content:    p.Content,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
		LikeCount:  p.LikeCount,
		Comments:   NewCommentListResponse(p.Comments),
	}
	if p.ImagePath != nil && *p.ImagePath != "" {
		url := imageBaseURL + "/" + *p.ImagePath
		resp.ImageURL = &url
	}
	return resp
}

// NewPostListResponse maps a slice of posts to response DTOs
func NewPostListResponse(posts []*models.Post, imageBaseURL string) []*PostResponse {
	out := make([]*PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostResponse(p, imageBaseURL))
	}
	return out
}
