package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minwoo/dormhub/internal/app/models"
	"github.com/minwoo/dormhub/internal/app/models/dto"
	"github.com/minwoo/dormhub/internal/app/repositories"
	"github.com/minwoo/dormhub/internal/pkg/apperrors"
)

// fakeDormRepo is an in-memory IDormRepository for service tests.
type fakeDormRepo struct {
	nextID int64
	apps   map[int64]*models.DormApplication
}

func newFakeDormRepo() *fakeDormRepo {
	return &fakeDormRepo{apps: make(map[int64]*models.DormApplication)}
}

func (r *fakeDormRepo) Create(_ context.Context, application *models.DormApplication) (int64, error) {
	for _, a := range r.apps {
		if a.UserID == application.UserID {
			return 0, apperrors.ErrDormApplicationExists
		}
		if a.StudentNumber == application.StudentNumber {
			return 0, apperrors.ErrStudentNumberExists
		}
	}
	r.nextID++
	stored := *application
	stored.ID = r.nextID
	r.apps[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeDormRepo) GetByID(_ context.Context, id int64) (*models.DormApplication, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, apperrors.ErrDormApplicationNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeDormRepo) GetByUserID(_ context.Context, userID int64) (*models.DormApplication, error) {
	for _, a := range r.apps {
		if a.UserID == userID {
			copied := *a
			return &copied, nil
		}
	}
	return nil, apperrors.ErrDormApplicationNotFound
}

func (r *fakeDormRepo) ExistsForUser(_ context.Context, userID int64) (bool, error) {
	for _, a := range r.apps {
		if a.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeDormRepo) List(_ context.Context) ([]*models.DormApplication, error) {
	out := make([]*models.DormApplication, 0, len(r.apps))
	for _, a := range r.apps {
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeDormRepo) UpdateAssignment(_ context.Context, id int64, assignment repositories.RoomAssignment) error {
	a, ok := r.apps[id]
	if !ok {
		return apperrors.ErrDormApplicationNotFound
	}
	if assignment.BuildingName != nil {
		a.BuildingName = *assignment.BuildingName
	}
	if assignment.RoomNumber != nil {
		a.RoomNumber = *assignment.RoomNumber
	}
	if assignment.Position != nil {
		a.Position = *assignment.Position
	}
	return nil
}

func (r *fakeDormRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.apps[id]; !ok {
		return apperrors.ErrDormApplicationNotFound
	}
	delete(r.apps, id)
	return nil
}

func flexInt(n int) *dto.FlexibleInt {
	f := dto.FlexibleInt(n)
	return &f
}

func TestDormService_Apply_Defaults(t *testing.T) {
	svc := NewDormService(newFakeDormRepo())

	resp, err := svc.Apply(context.Background(), 1, &dto.DormApplyRequest{
		Name:          "Kim",
		StudentNumber: "2021001",
		Gender:        "male",
		Content:       "Quiet room please",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.UserID)
	assert.Equal(t, "", resp.BuildingName)
	assert.Equal(t, 0, resp.RoomNumber)
	assert.Equal(t, 0, resp.Position)
	assert.True(t, resp.IsAvailable)
}

func TestDormService_Apply_Duplicate(t *testing.T) {
	svc := NewDormService(newFakeDormRepo())

	_, err := svc.Apply(context.Background(), 1, &dto.DormApplyRequest{
		Name: "Kim", StudentNumber: "2021001", Gender: "male",
	})
	require.NoError(t, err)

	_, err = svc.Apply(context.Background(), 1, &dto.DormApplyRequest{
		Name: "Kim", StudentNumber: "2021009", Gender: "male",
	})
	assert.ErrorIs(t, err, apperrors.ErrDormApplicationExists)
}

func TestDormService_Apply_InvalidStudentNumber(t *testing.T) {
	svc := NewDormService(newFakeDormRepo())

	_, err := svc.Apply(context.Background(), 1, &dto.DormApplyRequest{
		Name: "Kim", StudentNumber: "abc", Gender: "male",
	})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestDormService_AssignRoom_Partial(t *testing.T) {
	repo := newFakeDormRepo()
	svc := NewDormService(repo)

	applied, err := svc.Apply(context.Background(), 1, &dto.DormApplyRequest{
		Name: "Kim", StudentNumber: "2021001", Gender: "male",
	})
	require.NoError(t, err)

	building := "A"
	resp, err := svc.AssignRoom(context.Background(), applied.ID, &dto.AssignRoomRequest{
		BuildingName: &building,
		RoomNumber:   flexInt(301),
	})
	require.NoError(t, err)
	assert.Equal(t, "A", resp.BuildingName)
	assert.Equal(t, 301, resp.RoomNumber)
	assert.Equal(t, 0, resp.Position)

	// A later partial update must leave the other fields untouched.
	resp, err = svc.AssignRoom(context.Background(), applied.ID, &dto.AssignRoomRequest{
		Position: flexInt(2),
	})
	require.NoError(t, err)
	assert.Equal(t, "A", resp.BuildingName)
	assert.Equal(t, 301, resp.RoomNumber)
	assert.Equal(t, 2, resp.Position)
}

func TestDormService_AssignRoom_Validation(t *testing.T) {
	repo := newFakeDormRepo()
	svc := NewDormService(repo)

	applied, err := svc.Apply(context.Background(), 1, &dto.DormApplyRequest{
		Name: "Kim", StudentNumber: "2021001", Gender: "male",
	})
	require.NoError(t, err)

	_, err = svc.AssignRoom(context.Background(), applied.ID, &dto.AssignRoomRequest{})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed), "empty assignment must fail")

	_, err = svc.AssignRoom(context.Background(), applied.ID, &dto.AssignRoomRequest{Position: flexInt(5)})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed), "position above 4 must fail")

	_, err = svc.AssignRoom(context.Background(), applied.ID, &dto.AssignRoomRequest{RoomNumber: flexInt(-1)})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed), "negative room number must fail")
}

func TestDormService_AssignRoom_NotFound(t *testing.T) {
	svc := NewDormService(newFakeDormRepo())

	_, err := svc.AssignRoom(context.Background(), 99, &dto.AssignRoomRequest{RoomNumber: flexInt(101)})
	assert.ErrorIs(t, err, apperrors.ErrDormApplicationNotFound)
}

func TestDormService_Delete(t *testing.T) {
	repo := newFakeDormRepo()
	svc := NewDormService(repo)

	applied, err := svc.Apply(context.Background(), 1, &dto.DormApplyRequest{
		Name: "Kim", StudentNumber: "2021001", Gender: "male",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), applied.ID))

	_, err = svc.Get(context.Background(), applied.ID)
	assert.ErrorIs(t, err, apperrors.ErrDormApplicationNotFound)
}
