package services

import (
	"context"
	"errors"

	"github.com/minwoo/dormhub/internal/app/models"
	"github.com/minwoo/dormhub/internal/app/models/dto"
	"github.com/minwoo/dormhub/internal/app/repositories"
	"github.com/minwoo/dormhub/internal/pkg/apperrors"
	"github.com/minwoo/dormhub/internal/pkg/logger"
)

// ProfileService handles my-page, point adjustment and profile search
type ProfileService struct {
	userRepo repositories.IUserRepository
	dormRepo repositories.IDormRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(userRepo repositories.IUserRepository, dormRepo repositories.IDormRepository) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		dormRepo: dormRepo,
	}
}

// MyPage bundles the caller's profile with their dorm application, if any
func (s *ProfileService) MyPage(ctx context.Context, userID int64) (*dto.MyPageResponse, error) {
	profile, err := s.userRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.MyPageResponse{User: dto.NewProfileResponse(profile)}

	application, err := s.dormRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDormApplicationNotFound) {
			return nil, err
		}
	} else {
		resp.Dorm = dto.NewDormApplicationResponse(application)
	}

	return resp, nil
}

// AdjustPoints applies a staff reward or penalty adjustment to the profile
// identified by the student's username. The delta must be nonzero.
func (s *ProfileService) AdjustPoints(ctx context.Context, req *dto.AdjustPointsRequest) error {
	pointType := models.PointType(req.PointType)
	if !pointType.Valid() {
		return apperrors.NewValidationError("pointType must be reward or penalty")
	}

	delta := req.Point.Int()
	if delta == 0 {
		return apperrors.NewValidationError("point must be a nonzero integer")
	}

	if err := s.userRepo.AdjustPoints(ctx, req.StudentID, pointType, delta); err != nil {
		return err
	}

	logger.Info().
		Str("studentID", req.StudentID).
		Str("pointType", string(pointType)).
		Int("delta", delta).
		Msg("Points adjusted")
	return nil
}

// SearchProfiles looks up profiles by one of the enumerated search fields
func (s *ProfileService) SearchProfiles(ctx context.Context, field, value string) ([]*dto.ProfileResponse, error) {
	searchField := dto.ProfileSearchField(field)
	if !searchField.Valid() {
		return nil, apperrors.NewValidationError("field must be one of username, studentNumber, department")
	}
	if value == "" {
		return nil, apperrors.NewValidationError("value must not be empty")
	}

	profiles, err := s.userRepo.SearchProfiles(ctx, field, value)
	if err != nil {
		return nil, err
	}

	return dto.NewProfileListResponse(profiles), nil
}
