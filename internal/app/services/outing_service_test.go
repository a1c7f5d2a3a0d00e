package services

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minwoo/dormhub/internal/app/models"
	"github.com/minwoo/dormhub/internal/app/models/dto"
	"github.com/minwoo/dormhub/internal/pkg/apperrors"
)

// fakeOutingRepo is an in-memory IOutingRepository for service tests.
type fakeOutingRepo struct {
	nextID int64
	apps   map[int64]*models.OutingApplication
}

func newFakeOutingRepo() *fakeOutingRepo {
	return &fakeOutingRepo{apps: make(map[int64]*models.OutingApplication)}
}

func (r *fakeOutingRepo) Create(_ context.Context, application *models.OutingApplication) (int64, error) {
	r.nextID++
	stored := *application
	stored.ID = r.nextID
	r.apps[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeOutingRepo) GetByID(_ context.Context, id int64) (*models.OutingApplication, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, apperrors.ErrOutingNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeOutingRepo) ListByUserID(_ context.Context, userID int64) ([]*models.OutingApplication, error) {
	var out []*models.OutingApplication
	for _, a := range r.apps {
		if a.UserID == userID {
			copied := *a
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeOutingRepo) ListAll(_ context.Context) ([]*models.OutingApplication, error) {
	out := make([]*models.OutingApplication, 0, len(r.apps))
	for _, a := range r.apps {
		copied := *a
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeOutingRepo) UpdateStatus(_ context.Context, id int64, status models.OutingStatus, decidedBy int64, decidedAt time.Time) error {
	a, ok := r.apps[id]
	if !ok {
		return apperrors.ErrOutingNotFound
	}
	a.Status = status
	a.DecidedBy = &decidedBy
	a.DecidedAt = &decidedAt
	return nil
}

func applyOuting(t *testing.T, svc *OutingService, userID int64) *dto.OutingApplicationResponse {
	t.Helper()
	resp, err := svc.Apply(context.Background(), userID, &dto.OutingApplyRequest{
		Name:          "Lee",
		StudentNumber: "2021002",
		OutDate:       "2024-05-01",
	})
	require.NoError(t, err)
	return resp
}

func TestOutingService_Apply_StartsPending(t *testing.T) {
	svc := NewOutingService(newFakeOutingRepo(), false)

	resp := applyOuting(t, svc, 2)

	assert.Equal(t, string(models.OutingStatusPending), resp.Status)
	assert.Equal(t, "2024-05-01", resp.OutDate)
	assert.Nil(t, resp.DecidedBy)
	assert.Nil(t, resp.DecidedAt)
	assert.False(t, resp.AppliedAt.IsZero())
}

func TestOutingService_Apply_InvalidDate(t *testing.T) {
	svc := NewOutingService(newFakeOutingRepo(), false)

	_, err := svc.Apply(context.Background(), 2, &dto.OutingApplyRequest{
		Name:          "Lee",
		StudentNumber: "2021002",
		OutDate:       "01-05-2024",
	})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestOutingService_Decide_RecordsDecider(t *testing.T) {
	svc := NewOutingService(newFakeOutingRepo(), false)
	applied := applyOuting(t, svc, 2)

	resp, err := svc.Decide(context.Background(), applied.ID, models.OutingStatusApproved, 7)
	require.NoError(t, err)

	assert.Equal(t, string(models.OutingStatusApproved), resp.Status)
	require.NotNil(t, resp.DecidedBy)
	assert.Equal(t, int64(7), *resp.DecidedBy)
	assert.NotNil(t, resp.DecidedAt)
}

func TestOutingService_Decide_SameStatusIsNoOp(t *testing.T) {
	repo := newFakeOutingRepo()
	svc := NewOutingService(repo, false)
	applied := applyOuting(t, svc, 2)

	first, err := svc.Decide(context.Background(), applied.ID, models.OutingStatusApproved, 7)
	require.NoError(t, err)

	// Even with override off, approving an already approved application
	// succeeds without touching the decision record.
	second, err := svc.Decide(context.Background(), applied.ID, models.OutingStatusApproved, 8)
	require.NoError(t, err)
	assert.Equal(t, first.Status, second.Status)
	require.NotNil(t, second.DecidedBy)
	assert.Equal(t, int64(7), *second.DecidedBy)
}

func TestOutingService_Decide_TerminalWithoutOverride(t *testing.T) {
	svc := NewOutingService(newFakeOutingRepo(), false)
	applied := applyOuting(t, svc, 2)

	_, err := svc.Decide(context.Background(), applied.ID, models.OutingStatusApproved, 7)
	require.NoError(t, err)

	_, err = svc.Decide(context.Background(), applied.ID, models.OutingStatusRejected, 7)
	assert.ErrorIs(t, err, apperrors.ErrOutingAlreadyDecided)
}

func TestOutingService_Decide_TerminalWithOverride(t *testing.T) {
	svc := NewOutingService(newFakeOutingRepo(), true)
	applied := applyOuting(t, svc, 2)

	_, err := svc.Decide(context.Background(), applied.ID, models.OutingStatusApproved, 7)
	require.NoError(t, err)

	resp, err := svc.Decide(context.Background(), applied.ID, models.OutingStatusRejected, 9)
	require.NoError(t, err)
	assert.Equal(t, string(models.OutingStatusRejected), resp.Status)
	require.NotNil(t, resp.DecidedBy)
	assert.Equal(t, int64(9), *resp.DecidedBy)
}

func TestOutingService_Decide_NotFound(t *testing.T) {
	svc := NewOutingService(newFakeOutingRepo(), false)

	_, err := svc.Decide(context.Background(), 99, models.OutingStatusApproved, 7)
	assert.ErrorIs(t, err, apperrors.ErrOutingNotFound)
}

func TestOutingService_ListMine_FiltersByUser(t *testing.T) {
	svc := NewOutingService(newFakeOutingRepo(), false)
	applyOuting(t, svc, 2)
	applyOuting(t, svc, 2)
	applyOuting(t, svc, 3)

	mine, err := svc.ListMine(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
