package dto

import "github.com/minwoo/dormhub/internal/app/models"

// AdjustPointsRequest represents a staff reward/penalty adjustment
type AdjustPointsRequest struct {
	StudentID string       `json:"studentId" binding:"required" example:"kim2021"`
	PointType string       `json:"pointType" binding:"required,oneof=reward penalty" example:"penalty"`
	Point     *FlexibleInt `json:"point" binding:"required" swaggertype:"integer" example:"3"`
}

// ProfileSearchField enumerates the fields a staff profile search may use.
// Unknown fields are rejected instead of being forwarded to the store.
type ProfileSearchField string

const (
	SearchFieldUsername      ProfileSearchField = "username"
	SearchFieldStudentNumber ProfileSearchField = "studentNumber"
	SearchFieldDepartment    ProfileSearchField = "department"
)

// Valid reports whether the search field is one of the allowed names
func (f ProfileSearchField) Valid() bool {
	switch f {
	case SearchFieldUsername, SearchFieldStudentNumber, SearchFieldDepartment:
		return true
	}
	return false
}

// ProfileResponse is the JSON view of a user profile
type ProfileResponse struct {
	UserID       int64  `json:"userId" example:"1"`
	Username     string `json:"username" example:"kim2021"`
	Email        string `json:"email" example:"kim@dorm.ac.kr"`
	FullName     string `json:"fullName" example:"Kim Minjae"`
	Department   string `json:"department" example:"Computer Science"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	RewardPoint  int    `json:"rewardPoint" example:"2"`
	PenaltyPoint int    `json:"penaltyPoint" example:"1"`
	IsStaff      bool   `json:"isStaff" example:"false"`
	IsSuperuser  bool   `json:"isSuperuser" example:"false"`
}

// MyPageResponse bundles the caller's profile with their dorm application
type MyPageResponse struct {
	User *ProfileResponse         `json:"user"`
	Dorm *DormApplicationResponse `json:"dorm,omitempty"`
}

// NewProfileResponse maps a profile model (with its user) to a response DTO
func NewProfileResponse(p *models.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}
	resp := &ProfileResponse{
		UserID:       p.UserID,
		FullName:     p.FullName,
		Department:   p.Department,
		PhoneNumber:  p.PhoneNumber,
		RewardPoint:  p.RewardPoint,
		PenaltyPoint: p.PenaltyPoint,
	}
	if p.User != nil {
		resp.Username = p.User.Username
		resp.Email = p.User.Email
		resp.IsStaff = p.User.IsStaff
		resp.IsSuperuser = p.User.IsSuperuser
	}
	return resp
}

// NewProfileListResponse maps a slice of profiles to response DTOs
func NewProfileListResponse(profiles []*models.Profile) []*ProfileResponse {
	out := make([]*ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, NewProfileResponse(p))
	}
	return out
}
