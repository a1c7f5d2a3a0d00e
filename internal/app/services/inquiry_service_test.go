package services

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minwoo/dormhub/internal/app/models"
	"github.com/minwoo/dormhub/internal/app/models/dto"
	"github.com/minwoo/dormhub/internal/pkg/apperrors"
)

// fakeInquiryRepo is an in-memory IInquiryRepository. UpsertAnswer mirrors
// the store behavior of keeping the first answering admin on a re-answer.
type fakeInquiryRepo struct {
	nextID       int64
	nextAnswerID int64
	inquiries    map[int64]*models.Inquiry
	answers      map[int64]*models.InquiryAnswer // keyed by inquiry id
}

func newFakeInquiryRepo() *fakeInquiryRepo {
	return &fakeInquiryRepo{
		inquiries: make(map[int64]*models.Inquiry),
		answers:   make(map[int64]*models.InquiryAnswer),
	}
}

func (r *fakeInquiryRepo) Create(_ context.Context, inquiry *models.Inquiry) (int64, error) {
	r.nextID++
	stored := *inquiry
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	r.inquiries[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeInquiryRepo) GetByID(_ context.Context, id int64) (*models.Inquiry, error) {
	inquiry, ok := r.inquiries[id]
	if !ok {
		return nil, apperrors.ErrInquiryNotFound
	}
	copied := *inquiry
	if answer, ok := r.answers[id]; ok {
		a := *answer
		copied.Answer = &a
	}
	return &copied, nil
}

func (r *fakeInquiryRepo) ListByUserID(ctx context.Context, userID int64) ([]*models.Inquiry, error) {
	var out []*models.Inquiry
	for id, inquiry := range r.inquiries {
		if inquiry.UserID == userID {
			copied, _ := r.GetByID(ctx, id)
			out = append(out, copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeInquiryRepo) ListAll(ctx context.Context) ([]*models.Inquiry, error) {
	out := make([]*models.Inquiry, 0, len(r.inquiries))
	for id := range r.inquiries {
		copied, _ := r.GetByID(ctx, id)
		out = append(out, copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeInquiryRepo) UpsertAnswer(_ context.Context, answer *models.InquiryAnswer) error {
	if existing, ok := r.answers[answer.InquiryID]; ok {
		existing.Answer = answer.Answer
		existing.AnsweredAt = answer.AnsweredAt
		return nil
	}
	r.nextAnswerID++
	stored := *answer
	stored.ID = r.nextAnswerID
	r.answers[answer.InquiryID] = &stored
	return nil
}

func fileInquiry(t *testing.T, svc *InquiryService, userID int64) *dto.InquiryResponse {
	t.Helper()
	resp, err := svc.Create(context.Background(), userID, &dto.CreateInquiryRequest{
		Title:   "Broken heater",
		Content: "The heater in room 301 stopped working",
	})
	require.NoError(t, err)
	return resp
}

func TestInquiryService_Get_OwnerOnly(t *testing.T) {
	svc := NewInquiryService(newFakeInquiryRepo())
	inquiry := fileInquiry(t, svc, 2)

	_, err := svc.Get(context.Background(), inquiry.ID, 3, false)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	got, err := svc.Get(context.Background(), inquiry.ID, 2, false)
	require.NoError(t, err)
	assert.Equal(t, inquiry.ID, got.ID)

	// Staff may read any inquiry.
	got, err = svc.Get(context.Background(), inquiry.ID, 3, true)
	require.NoError(t, err)
	assert.Equal(t, inquiry.ID, got.ID)
}

func TestInquiryService_List_Branches(t *testing.T) {
	svc := NewInquiryService(newFakeInquiryRepo())
	fileInquiry(t, svc, 2)
	fileInquiry(t, svc, 2)
	fileInquiry(t, svc, 3)

	own, err := svc.List(context.Background(), 2, false)
	require.NoError(t, err)
	assert.Len(t, own, 2)

	all, err := svc.List(context.Background(), 2, true)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestInquiryService_Answer(t *testing.T) {
	svc := NewInquiryService(newFakeInquiryRepo())
	inquiry := fileInquiry(t, svc, 2)

	answered, err := svc.Answer(context.Background(), inquiry.ID, 7, &dto.AnswerInquiryRequest{
		Answer: "A technician will visit tomorrow",
	})
	require.NoError(t, err)
	require.NotNil(t, answered.Answer)
	assert.Equal(t, "A technician will visit tomorrow", answered.Answer.Answer)
	assert.Equal(t, int64(7), answered.Answer.AdminID)
}

func TestInquiryService_Answer_KeepsFirstAdmin(t *testing.T) {
	svc := NewInquiryService(newFakeInquiryRepo())
	inquiry := fileInquiry(t, svc, 2)

	_, err := svc.Answer(context.Background(), inquiry.ID, 7, &dto.AnswerInquiryRequest{Answer: "First answer"})
	require.NoError(t, err)

	// A different staff member rewriting the answer replaces the text but
	// the record keeps the admin who answered first.
	updated, err := svc.Answer(context.Background(), inquiry.ID, 9, &dto.AnswerInquiryRequest{Answer: "Corrected answer"})
	require.NoError(t, err)
	require.NotNil(t, updated.Answer)
	assert.Equal(t, "Corrected answer", updated.Answer.Answer)
	assert.Equal(t, int64(7), updated.Answer.AdminID)
}

func TestInquiryService_Answer_NotFound(t *testing.T) {
	svc := NewInquiryService(newFakeInquiryRepo())

	_, err := svc.Answer(context.Background(), 99, 7, &dto.AnswerInquiryRequest{Answer: "x"})
	assert.ErrorIs(t, err, apperrors.ErrInquiryNotFound)
}
