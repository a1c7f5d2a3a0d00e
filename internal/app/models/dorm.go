package models

// DormApplication defines a student's housing request based on the
// 'dorm_applications' table. A user has at most one application; room fields
// stay at their zero defaults until a staff member assigns a room.
type DormApplication struct {
	ID            int64  `json:"id" db:"id"`
	UserID        int64  `json:"userId" db:"user_id"`
	Name          string `json:"name" db:"name"`
	StudentNumber string `json:"studentNumber" db:"student_number"`
	Gender        Gender `json:"gender" db:"gender"`
	Content       string `json:"content" db:"content"`
	BuildingName  string `json:"buildingName" db:"building_name"`
	RoomNumber    int    `json:"roomNumber" db:"room_number"`
	Position      int    `json:"position" db:"position"` // 1..4 within the room, 0 = unassigned
	IsAvailable   bool   `json:"isAvailable" db:"is_available"`
}

// Assigned reports whether a room has been assigned to the application
func (d *DormApplication) Assigned() bool {
	return d.BuildingName != "" && d.RoomNumber > 0 && d.Position > 0
}
