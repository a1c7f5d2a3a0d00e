package services

import (
	"context"
	"time"

	"github.com/minwoo/dormhub/internal/app/models"
	"github.com/minwoo/dormhub/internal/app/models/dto"
	"github.com/minwoo/dormhub/internal/app/repositories"
	"github.com/minwoo/dormhub/internal/pkg/apperrors"
	"github.com/minwoo/dormhub/internal/pkg/helpers"
	"github.com/minwoo/dormhub/internal/pkg/logger"
	"github.com/minwoo/dormhub/internal/pkg/validation"
)

// OutingService handles overnight-outing applications and staff decisions
type OutingService struct {
	outingRepo repositories.IOutingRepository

	// allowOverride permits staff to re-decide an application that already
	// reached approved or rejected.
	allowOverride bool
}

// NewOutingService creates a new OutingService
func NewOutingService(outingRepo repositories.IOutingRepository, allowOverride bool) *OutingService {
	return &OutingService{
		outingRepo:    outingRepo,
		allowOverride: allowOverride,
	}
}

// Apply files an outing application in pending state
func (s *OutingService) Apply(ctx context.Context, userID int64, req *dto.OutingApplyRequest) (*dto.OutingApplicationResponse, error) {
	if !validation.IsValidStudentNumber(req.StudentNumber) {
		return nil, apperrors.NewValidationError("studentNumber must be 4-10 digits")
	}

	outDate, err := helpers.ParseDate(req.OutDate)
	if err != nil {
		return nil, apperrors.NewValidationError("outDate must use the YYYY-MM-DD format")
	}

	application := &models.OutingApplication{
		UserID:        userID,
		Name:          req.Name,
		StudentNumber: req.StudentNumber,
		OutDate:       outDate,
		Status:        models.OutingStatusPending,
		AppliedAt:     time.Now(),
	}

	id, err := s.outingRepo.Create(ctx, application)
	if err != nil {
		return nil, err
	}
	application.ID = id

	logger.Info().Int64("userID", userID).Int64("applicationID", id).Msg("Outing application filed")
	return dto.NewOutingApplicationResponse(application), nil
}

// ListMine retrieves the caller's outing applications
func (s *OutingService) ListMine(ctx context.Context, userID int64) ([]*dto.OutingApplicationResponse, error) {
	applications, err := s.outingRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewOutingApplicationListResponse(applications), nil
}

// ListAll retrieves every outing application for the staff overview
func (s *OutingService) ListAll(ctx context.Context) ([]*dto.OutingApplicationResponse, error) {
	applications, err := s.outingRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewOutingApplicationListResponse(applications), nil
}

// Decide records a staff approval or rejection. Re-deciding an already
// decided application is allowed only when override is configured; deciding
// to the same status again is a no-op rather than an error.
func (s *OutingService) Decide(ctx context.Context, id int64, status models.OutingStatus, deciderID int64) (*dto.OutingApplicationResponse, error) {
	application, err := s.outingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if application.Status == status {
		return dto.NewOutingApplicationResponse(application), nil
	}

	if application.Status.IsTerminal() && !s.allowOverride {
		return nil, apperrors.ErrOutingAlreadyDecided
	}

	decidedAt := time.Now()
	if err := s.outingRepo.UpdateStatus(ctx, id, status, deciderID, decidedAt); err != nil {
		return nil, err
	}

	application.Status = status
	application.DecidedBy = &deciderID
	application.DecidedAt = &decidedAt

	logger.Info().
		Int64("applicationID", id).
		Int64("deciderID", deciderID).
		Str("status", string(status)).
		Msg("Outing application decided")
	return dto.NewOutingApplicationResponse(application), nil
}
