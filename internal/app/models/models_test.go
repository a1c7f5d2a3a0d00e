package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnonAuthorID(t *testing.T) {
	tests := []struct {
		userID int64
		want   string
	}{
		{1, "0001"},
		{42, "0042"},
		{12345, "2345"},
		{10000, "0000"},
		{9999, "9999"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AnonAuthorID(tt.userID))
	}
}

func TestOutingStatusIsTerminal(t *testing.T) {
	assert.False(t, OutingStatusPending.IsTerminal())
	assert.True(t, OutingStatusApproved.IsTerminal())
	assert.True(t, OutingStatusRejected.IsTerminal())
	assert.False(t, OutingStatus("unknown").IsTerminal())
}

func TestPointTypeValid(t *testing.T) {
	assert.True(t, PointTypeReward.Valid())
	assert.True(t, PointTypePenalty.Valid())
	assert.False(t, PointType("bonus").Valid())
	assert.False(t, PointType("").Valid())
}

func TestDormApplicationAssigned(t *testing.T) {
	app := &DormApplication{}
	assert.False(t, app.Assigned())

	app.BuildingName = "A"
	app.RoomNumber = 301
	assert.False(t, app.Assigned(), "position still unassigned")

	app.Position = 2
	assert.True(t, app.Assigned())
}
