package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minwoo/dormhub/internal/app/models"
	"github.com/minwoo/dormhub/internal/app/models/dto"
	"github.com/minwoo/dormhub/internal/pkg/apperrors"
)

func seedStudent(t *testing.T, userRepo *fakeUserRepo, username, department string) int64 {
	t.Helper()
	userID, err := userRepo.CreateUser(context.Background(), &models.User{
		Username: username,
		Email:    username + "@dorm.ac.kr",
		Password: "hashed",
	})
	require.NoError(t, err)
	_, err = userRepo.CreateProfile(context.Background(), &models.Profile{
		UserID:     userID,
		FullName:   "Student " + username,
		Department: department,
	})
	require.NoError(t, err)
	return userID
}

func TestProfileService_MyPage(t *testing.T) {
	userRepo := newFakeUserRepo()
	dormRepo := newFakeDormRepo()
	svc := NewProfileService(userRepo, dormRepo)

	userID := seedStudent(t, userRepo, "kim2021", "Computer Science")

	// Without a dorm application, my-page still succeeds.
	resp, err := svc.MyPage(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "kim2021", resp.User.Username)
	assert.Nil(t, resp.Dorm)

	_, err = dormRepo.Create(context.Background(), &models.DormApplication{
		UserID:        userID,
		Name:          "Kim",
		StudentNumber: "2021001",
		Gender:        models.GenderMale,
		IsAvailable:   true,
	})
	require.NoError(t, err)

	resp, err = svc.MyPage(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, resp.Dorm)
	assert.Equal(t, "2021001", resp.Dorm.StudentNumber)
}

func TestProfileService_MyPage_NoProfile(t *testing.T) {
	svc := NewProfileService(newFakeUserRepo(), newFakeDormRepo())

	_, err := svc.MyPage(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}

func TestProfileService_AdjustPoints(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewProfileService(userRepo, newFakeDormRepo())

	userID := seedStudent(t, userRepo, "kim2021", "Computer Science")

	err := svc.AdjustPoints(context.Background(), &dto.AdjustPointsRequest{
		StudentID: "kim2021",
		PointType: "penalty",
		Point:     flexInt(3),
	})
	require.NoError(t, err)

	err = svc.AdjustPoints(context.Background(), &dto.AdjustPointsRequest{
		StudentID: "kim2021",
		PointType: "reward",
		Point:     flexInt(2),
	})
	require.NoError(t, err)

	profile, err := userRepo.GetProfileByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 3, profile.PenaltyPoint)
	assert.Equal(t, 2, profile.RewardPoint)
}

func TestProfileService_AdjustPoints_Validation(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewProfileService(userRepo, newFakeDormRepo())
	seedStudent(t, userRepo, "kim2021", "Computer Science")

	err := svc.AdjustPoints(context.Background(), &dto.AdjustPointsRequest{
		StudentID: "kim2021",
		PointType: "bonus",
		Point:     flexInt(1),
	})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed), "unknown point type must fail")

	err = svc.AdjustPoints(context.Background(), &dto.AdjustPointsRequest{
		StudentID: "kim2021",
		PointType: "reward",
		Point:     flexInt(0),
	})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed), "zero delta must fail")

	err = svc.AdjustPoints(context.Background(), &dto.AdjustPointsRequest{
		StudentID: "nobody",
		PointType: "reward",
		Point:     flexInt(1),
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestProfileService_SearchProfiles(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewProfileService(userRepo, newFakeDormRepo())

	seedStudent(t, userRepo, "kim2021", "Computer Science")
	seedStudent(t, userRepo, "lee2022", "Computer Science")
	seedStudent(t, userRepo, "park2023", "Physics")

	byUsername, err := svc.SearchProfiles(context.Background(), "username", "kim2021")
	require.NoError(t, err)
	require.Len(t, byUsername, 1)
	assert.Equal(t, "kim2021", byUsername[0].Username)

	byDepartment, err := svc.SearchProfiles(context.Background(), "department", "Computer Science")
	require.NoError(t, err)
	assert.Len(t, byDepartment, 2)
}

func TestProfileService_SearchProfiles_Validation(t *testing.T) {
	svc := NewProfileService(newFakeUserRepo(), newFakeDormRepo())

	_, err := svc.SearchProfiles(context.Background(), "password", "x")
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed), "unknown field must be rejected")

	_, err = svc.SearchProfiles(context.Background(), "username", "")
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed), "empty value must be rejected")
}
