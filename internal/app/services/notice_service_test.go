package services

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minwoo/dormhub/internal/app/models"
	"github.com/minwoo/dormhub/internal/app/models/dto"
	"github.com/minwoo/dormhub/internal/pkg/apperrors"
)

// fakeNoticeRepo is an in-memory INoticeRepository for service tests.
type fakeNoticeRepo struct {
	nextID  int64
	notices map[int64]*models.Notice
}

func newFakeNoticeRepo() *fakeNoticeRepo {
	return &fakeNoticeRepo{notices: make(map[int64]*models.Notice)}
}

func (r *fakeNoticeRepo) Create(_ context.Context, notice *models.Notice) (int64, error) {
	r.nextID++
	stored := *notice
	stored.ID = r.nextID
	r.notices[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeNoticeRepo) GetByID(_ context.Context, id int64) (*models.Notice, error) {
	n, ok := r.notices[id]
	if !ok {
		return nil, apperrors.ErrNoticeNotFound
	}
	copied := *n
	return &copied, nil
}

func (r *fakeNoticeRepo) List(_ context.Context) ([]*models.Notice, error) {
	out := make([]*models.Notice, 0, len(r.notices))
	for _, n := range r.notices {
		copied := *n
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeNoticeRepo) Update(_ context.Context, notice *models.Notice) error {
	stored, ok := r.notices[notice.ID]
	if !ok {
		return apperrors.ErrNoticeNotFound
	}
	stored.Title = notice.Title
	stored.Content = notice.Content
	stored.ImagePath = notice.ImagePath
	return nil
}

func (r *fakeNoticeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.notices[id]; !ok {
		return apperrors.ErrNoticeNotFound
	}
	delete(r.notices, id)
	return nil
}

func newNoticeService() *NoticeService {
	return NewNoticeService(newFakeNoticeRepo(), nil, "http://localhost:8080/media")
}

func TestNoticeService_Create(t *testing.T) {
	svc := newNoticeService()

	resp, err := svc.Create(context.Background(), &dto.CreateNoticeRequest{
		Title:   "Fire drill",
		Content: "Fire drill on Friday at 10:00",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Fire drill", resp.Title)
	assert.False(t, resp.Date.IsZero())
	assert.Nil(t, resp.ImageURL)
}

func TestNoticeService_Update_Partial(t *testing.T) {
	svc := newNoticeService()

	created, err := svc.Create(context.Background(), &dto.CreateNoticeRequest{
		Title:   "Fire drill",
		Content: "Fire drill on Friday at 10:00",
	}, nil)
	require.NoError(t, err)

	title := "Fire drill moved"
	updated, err := svc.Update(context.Background(), created.ID, &dto.UpdateNoticeRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Fire drill moved", updated.Title)
	assert.Equal(t, created.Content, updated.Content)
}

func TestNoticeService_Delete(t *testing.T) {
	svc := newNoticeService()

	created, err := svc.Create(context.Background(), &dto.CreateNoticeRequest{
		Title:   "Fire drill",
		Content: "Fire drill on Friday at 10:00",
	}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNoticeNotFound)

	err = svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNoticeNotFound)
}
