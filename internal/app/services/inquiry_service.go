package services

import (
	"context"
	"time"

	"github.com/minwoo/dormhub/internal/app/models"
	"github.com/minwoo/dormhub/internal/app/models/dto"
	"github.com/minwoo/dormhub/internal/app/repositories"
	"github.com/minwoo/dormhub/internal/pkg/apperrors"
	"github.com/minwoo/dormhub/internal/pkg/logger"
)

// InquiryService handles the inquiry desk
type InquiryService struct {
	inquiryRepo repositories.IInquiryRepository
}

// NewInquiryService creates a new InquiryService
func NewInquiryService(inquiryRepo repositories.IInquiryRepository) *InquiryService {
	return &InquiryService{inquiryRepo: inquiryRepo}
}

// Create files a new inquiry for the user
func (s *InquiryService) Create(ctx context.Context, userID int64, req *dto.CreateInquiryRequest) (*dto.InquiryResponse, error) {
	inquiry := &models.Inquiry{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	}

	id, err := s.inquiryRepo.Create(ctx, inquiry)
	if err != nil {
		return nil, err
	}

	created, err := s.inquiryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("inquiryID", id).Int64("userID", userID).Msg("Inquiry filed")
	return dto.NewInquiryResponse(created), nil
}

// List returns every inquiry for staff, or only the caller's own otherwise
func (s *InquiryService) List(ctx context.Context, userID int64, isStaff bool) ([]*dto.InquiryResponse, error) {
	var inquiries []*models.Inquiry
	var err error

	if isStaff {
		inquiries, err = s.inquiryRepo.ListAll(ctx)
	} else {
		inquiries, err = s.inquiryRepo.ListByUserID(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	return dto.NewInquiryListResponse(inquiries), nil
}

// Get retrieves a single inquiry. Students may only read their own.
func (s *InquiryService) Get(ctx context.Context, id, userID int64, isStaff bool) (*dto.InquiryResponse, error) {
	inquiry, err := s.inquiryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isStaff && inquiry.UserID != userID {
		return nil, apperrors.ErrPermissionDenied
	}

	return dto.NewInquiryResponse(inquiry), nil
}

// Answer records the staff answer for an inquiry. Re-answering replaces the
// text but the answer keeps the admin who answered first.
func (s *InquiryService) Answer(ctx context.Context, inquiryID, adminID int64, req *dto.AnswerInquiryRequest) (*dto.InquiryResponse, error) {
	if _, err := s.inquiryRepo.GetByID(ctx, inquiryID); err != nil {
		return nil, err
	}

	answer := &models.InquiryAnswer{
		InquiryID:  inquiryID,
		AdminID:    adminID,
		Answer:     req.Answer,
		AnsweredAt: time.Now(),
	}

	if err := s.inquiryRepo.UpsertAnswer(ctx, answer); err != nil {
		return nil, err
	}

	updated, err := s.inquiryRepo.GetByID(ctx, inquiryID)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("inquiryID", inquiryID).Int64("adminID", adminID).Msg("Inquiry answered")
	return dto.NewInquiryResponse(updated), nil
}
