package auth

import (
	"context"
	"errors"

	"github.com/minwoo/dormhub/internal/app/repositories"
	"github.com/minwoo/dormhub/internal/pkg/apperrors"
	"github.com/minwoo/dormhub/internal/pkg/logger"
)

// AuthorizationService answers role and ownership questions for the
// controllers and services.
type AuthorizationService struct {
	userRepo repositories.IUserRepository
	postRepo repositories.IPostRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(userRepo repositories.IUserRepository, postRepo repositories.IPostRepository) *AuthorizationService {
	return &AuthorizationService{
		userRepo: userRepo,
		postRepo: postRepo,
	}
}

// IsStaff checks if the user holds the staff role
func (s *AuthorizationService) IsStaff(ctx context.Context, userID int64) (bool, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return false, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error getting user by ID in IsStaff")
		return false, err
	}
	return user.IsStaff || user.IsSuperuser, nil
}

// ValidateStaff returns ErrPermissionDenied unless the user is staff
func (s *AuthorizationService) ValidateStaff(ctx context.Context, userID int64) error {
	isStaff, err := s.IsStaff(ctx, userID)
	if err != nil {
		return err
	}
	if !isStaff {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// ValidatePostOwnership allows the author of a post, or any staff member,
// to modify it.
func (s *AuthorizationService) ValidatePostOwnership(ctx context.Context, userID, postID int64, isStaff bool) error {
	if isStaff {
		return nil
	}
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != userID {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// ValidateCommentOwnership allows the author of a comment, or any staff
// member, to delete it.
func (s *AuthorizationService) ValidateCommentOwnership(ctx context.Context, userID, commentID int64, isStaff bool) error {
	if isStaff {
		return nil
	}
	comment, err := s.postRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != userID {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
