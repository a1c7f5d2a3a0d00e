package dto

import "github.com/minwoo/dormhub/internal/app/models"

// DormApplyRequest represents a student's dorm application
type DormApplyRequest struct {
	Name          string `json:"name" binding:"required" example:"Kim"`
	StudentNumber string `json:"studentNumber" binding:"required" example:"2021001"`
	Gender        string `json:"gender" binding:"required,oneof=male female" example:"male"`
	Content       string `json:"content" example:"Prefer a quiet room"`
}

// AssignRoomRequest represents a staff room assignment. Any subset of fields
// may be supplied; roomNumber and position accept either JSON numbers or
// numeric strings, matching what the admin form submits.
type AssignRoomRequest struct {
	BuildingName *string      `json:"buildingName,omitempty" example:"A"`
	RoomNumber   *FlexibleInt `json:"roomNumber,omitempty" swaggertype:"integer" example:"301"`
	Position     *FlexibleInt `json:"position,omitempty" swaggertype:"integer" example:"2"`
}

// Empty reports whether no field was supplied
func (r *AssignRoomRequest) Empty() bool {
	return r.BuildingName == nil && r.RoomNumber == nil && r.Position == nil
}

// DormApplicationResponse is the JSON view of a dorm application
type DormApplicationResponse struct {
	ID            int64  `json:"id" example:"1"`
	UserID        int64  `json:"userId" example:"1"`
	Name          string `json:"name" example:"Kim"`
	StudentNumber string `json:"studentNumber" example:"2021001"`
	Gender        string `json:"gender" example:"male"`
	Content       string `json:"content"`
	BuildingName  string `json:"buildingName" example:"A"`
	RoomNumber    int    `json:"roomNumber" example:"301"`
	Position      int    `json:"position" example:"2"`
	IsAvailable   bool   `json:"isAvailable" example:"true"`
}

// NewDormApplicationResponse maps a model to its response DTO
func NewDormApplicationResponse(d *models.DormApplication) *DormApplicationResponse {
	if d == nil {
		return nil
	}
	return &DormApplicationResponse{
		ID:            d.ID,
		UserID:        d.UserID,
		Name:          d.Name,
		StudentNumber: d.StudentNumber,
		Gender:        string(d.Gender),
		Content:       d.Content,
		BuildingName:  d.BuildingName,
		RoomNumber:    d.RoomNumber,
		Position:      d.Position,
		IsAvailable:   d.IsAvailable,
	}
}

// NewDormApplicationListResponse maps a slice of models to response DTOs
func NewDormApplicationListResponse(apps []*models.DormApplication) []*DormApplicationResponse {
	out := make([]*DormApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, NewDormApplicationResponse(a))
	}
	return out
}
