package services

import (
	"context"
	"fmt"
	"mime/multipart"

	appauth "github.com/minwoo/dormhub/internal/app/auth"
	"github.com/minwoo/dormhub/internal/app/models"
	"github.com/minwoo/dormhub/internal/app/models/dto"
	"github.com/minwoo/dormhub/internal/app/repositories"
	"github.com/minwoo/dormhub/internal/pkg/filestorage"
	"github.com/minwoo/dormhub/internal/pkg/helpers"
	"github.com/minwoo/dormhub/internal/pkg/logger"
)

const postImageDir = "posts"

// PostService handles the community board: posts, comments and likes
type PostService struct {
	postRepo     repositories.IPostRepository
	authz        *appauth.AuthorizationService
	storage      *filestorage.LocalStorage
	imageBaseURL string
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.IPostRepository, authz *appauth.AuthorizationService, storage *filestorage.LocalStorage, imageBaseURL string) *PostService {
	return &PostService{
		postRepo:     postRepo,
		authz:        authz,
		storage:      storage,
		imageBaseURL: imageBaseURL,
	}
}

// List retrieves a page of posts, newest first, with comments and like counts
func (s *PostService) List(ctx context.Context, page, size int) (*dto.PostListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	posts, total, err := s.postRepo.ListPosts(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	return &dto.PostListResponse{
		Posts:      dto.NewPostListResponse(posts, s.imageBaseURL),
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// Get retrieves a single post with its comments and like count
func (s *PostService) Get(ctx context.Context, id int64) (*dto.PostResponse, error) {
	post, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewPostResponse(post, s.imageBaseURL), nil
}

// Create stores a new post, saving the optional image upload first
func (s *PostService) Create(ctx context.Context, authorID int64, req *dto.CreatePostRequest, image *multipart.FileHeader) (*dto.PostResponse, error) {
	post := &models.Post{
		AuthorID: authorID,
		Title:    req.Title,
		Content:  req.Content,
	}

	if image != nil {
		path, err := s.storage.SaveFile(image, postImageDir)
		if err != nil {
			return nil, fmt.Errorf("error saving post image: %w", err)
		}
		post.ImagePath = &path
	}

	id, err := s.postRepo.CreatePost(ctx, post)
	if err != nil {
		if post.ImagePath != nil {
			_ = s.storage.DeleteFile(*post.ImagePath)
		}
		return nil, err
	}

	logger.Info().Int64("postID", id).Int64("authorID", authorID).Msg("Post created")
	return s.Get(ctx, id)
}

// Update changes a post's title and content. Only the author or a staff
// member may update.
func (s *PostService) Update(ctx context.Context, postID, userID int64, isStaff bool, req *dto.UpdatePostRequest) (*dto.PostResponse, error) {
	if err := s.authz.ValidatePostOwnership(ctx, userID, postID, isStaff); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}

	if err := s.postRepo.UpdatePost(ctx, post); err != nil {
		return nil, err
	}

	return s.Get(ctx, postID)
}

// Delete removes a post and its stored image. Only the author or a staff
// member may delete.
func (s *PostService) Delete(ctx context.Context, postID, userID int64, isStaff bool) error {
	if err := s.authz.ValidatePostOwnership(ctx, userID, postID, isStaff); err != nil {
		return err
	}

	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}

	if err := s.postRepo.DeletePost(ctx, postID); err != nil {
		return err
	}

	if post.ImagePath != nil {
		if err := s.storage.DeleteFile(*post.ImagePath); err != nil {
			logger.Warn().Err(err).Str("path", *post.ImagePath).Msg("Failed to remove post image")
		}
	}

	return nil
}

// ToggleLike flips the caller's like on a post and reports the new state
func (s *PostService) ToggleLike(ctx context.Context, userID, postID int64) (*dto.LikeToggleResponse, error) {
	liked, count, err := s.postRepo.ToggleLike(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	return &dto.LikeToggleResponse{IsLiked: liked, LikeCount: count}, nil
}

// ListComments returns a post's comments, oldest first
func (s *PostService) ListComments(ctx context.Context, postID int64) ([]*dto.CommentResponse, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return dto.NewCommentListResponse(post.Comments), nil
}

// AddComment attaches a comment to a post
func (s *PostService) AddComment(ctx context.Context, postID, authorID int64, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if _, err := s.postRepo.GetPostByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  req.Content,
	}

	id, err := s.postRepo.CreateComment(ctx, comment)
	if err != nil {
		return nil, err
	}

	created, err := s.postRepo.GetCommentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return dto.NewCommentResponse(created), nil
}

// DeleteComment removes a comment. Only the author or a staff member may
// delete.
func (s *PostService) DeleteComment(ctx context.Context, commentID, userID int64, isStaff bool) error {
	if err := s.authz.ValidateCommentOwnership(ctx, userID, commentID, isStaff); err != nil {
		return err
	}

	return s.postRepo.DeleteComment(ctx, commentID)
}
