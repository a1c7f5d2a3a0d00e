package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/minwoo/dormhub/internal/app/models"
	"github.com/minwoo/dormhub/internal/app/models/dto"
	"github.com/minwoo/dormhub/internal/app/repositories"
	"github.com/minwoo/dormhub/internal/pkg/filestorage"
	"github.com/minwoo/dormhub/internal/pkg/logger"
)

const noticeImageDir = "notices"

// NoticeService handles staff announcements
type NoticeService struct {
	noticeRepo   repositories.INoticeRepository
	storage      *filestorage.LocalStorage
	imageBaseURL string
}

// NewNoticeService creates a new NoticeService
func NewNoticeService(noticeRepo repositories.INoticeRepository, storage *filestorage.LocalStorage, imageBaseURL string) *NoticeService {
	return &NoticeService{
		noticeRepo:   noticeRepo,
		storage:      storage,
		imageBaseURL: imageBaseURL,
	}
}

// List retrieves every notice, newest first
func (s *NoticeService) List(ctx context.Context) ([]*dto.NoticeResponse, error) {
	notices, err := s.noticeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewNoticeListResponse(notices, s.imageBaseURL), nil
}

// Get retrieves a single notice
func (s *NoticeService) Get(ctx context.Context, id int64) (*dto.NoticeResponse, error) {
	notice, err := s.noticeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewNoticeResponse(notice, s.imageBaseURL), nil
}

// Create stores a new notice, saving the optional image upload first
func (s *NoticeService) Create(ctx context.Context, req *dto.CreateNoticeRequest, image *multipart.FileHeader) (*dto.NoticeResponse, error) {
	notice := &models.Notice{
		Title:   req.Title,
		Content: req.Content,
		Date:    time.Now(),
	}

	if image != nil {
		path, err := s.storage.SaveFile(image, noticeImageDir)
		if err != nil {
			return nil, fmt.Errorf("error saving notice image: %w", err)
		}
		notice.ImagePath = &path
	}

	id, err := s.noticeRepo.Create(ctx, notice)
	if err != nil {
		if notice.ImagePath != nil {
			_ = s.storage.DeleteFile(*notice.ImagePath)
		}
		return nil, err
	}
	notice.ID = id

	logger.Info().Int64("noticeID", id).Msg("Notice published")
	return dto.NewNoticeResponse(notice, s.imageBaseURL), nil
}

// Update changes a notice's title and content
func (s *NoticeService) Update(ctx context.Context, id int64, req *dto.UpdateNoticeRequest) (*dto.NoticeResponse, error) {
	notice, err := s.noticeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		notice.Title = *req.Title
	}
	if req.Content != nil {
		notice.Content = *req.Content
	}

	if err := s.noticeRepo.Update(ctx, notice); err != nil {
		return nil, err
	}

	return dto.NewNoticeResponse(notice, s.imageBaseURL), nil
}

// Delete removes a notice and its stored image
func (s *NoticeService) Delete(ctx context.Context, id int64) error {
	notice, err := s.noticeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.noticeRepo.Delete(ctx, id); err != nil {
		return err
	}

	if notice.ImagePath != nil {
		if err := s.storage.DeleteFile(*notice.ImagePath); err != nil {
			logger.Warn().Err(err).Str("path", *notice.ImagePath).Msg("Failed to remove notice image")
		}
	}

	return nil
}
