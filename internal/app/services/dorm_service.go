package services

import (
	"context"

	"github.com/minwoo/dormhub/internal/app/models"
	"github.com/minwoo/dormhub/internal/app/models/dto"
	"github.com/minwoo/dormhub/internal/app/repositories"
	"github.com/minwoo/dormhub/internal/pkg/apperrors"
	"github.com/minwoo/dormhub/internal/pkg/logger"
	"github.com/minwoo/dormhub/internal/pkg/validation"
)

// DormService handles dorm applications and staff room assignment
type DormService struct {
	dormRepo repositories.IDormRepository
}

// NewDormService creates a new DormService
func NewDormService(dormRepo repositories.IDormRepository) *DormService {
	return &DormService{dormRepo: dormRepo}
}

// Apply files a dorm application for the user. A user holds at most one
// application; the room fields start unassigned and is_available true.
func (s *DormService) Apply(ctx context.Context, userID int64, req *dto.DormApplyRequest) (*dto.DormApplicationResponse, error) {
	if !validation.IsValidStudentNumber(req.StudentNumber) {
		return nil, apperrors.NewValidationError("studentNumber must be 4-10 digits")
	}

	exists, err := s.dormRepo.ExistsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDormApplicationExists
	}

	application := &models.DormApplication{
		UserID:        userID,
		Name:          req.Name,
		StudentNumber: req.StudentNumber,
		Gender:        models.Gender(req.Gender),
		Content:       req.Content,
		Position:      0,
		IsAvailable:   true,
	}

	id, err := s.dormRepo.Create(ctx, application)
	if err != nil {
		return nil, err
	}
	application.ID = id

	logger.Info().Int64("userID", userID).Int64("applicationID", id).Msg("Dorm application filed")
	return dto.NewDormApplicationResponse(application), nil
}

// Get retrieves a dorm application by ID
func (s *DormService) Get(ctx context.Context, id int64) (*dto.DormApplicationResponse, error) {
	application, err := s.dormRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewDormApplicationResponse(application), nil
}

// GetMine retrieves the caller's own dorm application
func (s *DormService) GetMine(ctx context.Context, userID int64) (*dto.DormApplicationResponse, error) {
	application, err := s.dormRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewDormApplicationResponse(application), nil
}

// List retrieves every dorm application for the staff overview
func (s *DormService) List(ctx context.Context) ([]*dto.DormApplicationResponse, error) {
	applications, err := s.dormRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewDormApplicationListResponse(applications), nil
}

// AssignRoom applies a partial room assignment and returns the updated
// application. At least one field must be supplied.
func (s *DormService) AssignRoom(ctx context.Context, id int64, req *dto.AssignRoomRequest) (*dto.DormApplicationResponse, error) {
	if req.Empty() {
		return nil, apperrors.NewValidationError("at least one of buildingName, roomNumber, position is required")
	}

	assignment := repositories.RoomAssignment{BuildingName: req.BuildingName}
	if req.RoomNumber != nil {
		roomNumber := req.RoomNumber.Int()
		if roomNumber < 0 {
			return nil, apperrors.NewValidationError("roomNumber must not be negative")
		}
		assignment.RoomNumber = &roomNumber
	}
	if req.Position != nil {
		position := req.Position.Int()
		if position < 0 || position > 4 {
			return nil, apperrors.NewValidationError("position must be between 0 and 4")
		}
		assignment.Position = &position
	}

	if err := s.dormRepo.UpdateAssignment(ctx, id, assignment); err != nil {
		return nil, err
	}

	application, err := s.dormRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("applicationID", id).Msg("Room assignment updated")
	return dto.NewDormApplicationResponse(application), nil
}

// Delete removes a dorm application
func (s *DormService) Delete(ctx context.Context, id int64) error {
	return s.dormRepo.Delete(ctx, id)
}
