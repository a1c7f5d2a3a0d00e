package models

// Gender defines the gender choices on a dorm application
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// OutingStatus defines the outing application workflow state
type OutingStatus string

const (
	OutingStatusPending  OutingStatus = "pending"
	OutingStatusApproved OutingStatus = "approved"
	OutingStatusRejected OutingStatus = "rejected"
)

// IsTerminal reports whether the status is a decided state
func (s OutingStatus) IsTerminal() bool {
	return s == OutingStatusApproved || s == OutingStatusRejected
}

// PointType defines the kind of point adjustment a staff member can make
type PointType string

const (
	PointTypeReward  PointType = "reward"
	PointTypePenalty PointType = "penalty"
)

// Valid reports whether the point type is one of the known kinds
func (p PointType) Valid() bool {
	return p == PointTypeReward || p == PointTypePenalty
}
