package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActionStatus represents the lifecycle state of an action item
type ActionStatus string

const (
	ActionStatusPending    ActionStatus = "pending"
	ActionStatusInProgress ActionStatus = "in_progress"
	ActionStatusCompleted  ActionStatus = "completed"
	ActionStatusOverdue    ActionStatus = "overdue"
)

// SweepableStatuses are the states the overdue sweep may transition from.
// The transition is one-way: overdue is never reverted automatically.
var SweepableStatuses = []ActionStatus{ActionStatusPending, ActionStatusInProgress}

// Action represents a follow-up item agreed in a meeting.
// Owners holds member ids; stored as jsonb so an action can carry more than
// one owner.
type Action struct {
	ID        uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title     string                      `gorm:"type:varchar(255);not null" json:"title"`
	MeetingID uuid.UUID                   `gorm:"type:uuid;not null;index" json:"meetingId"`
	Meeting   *Meeting                    `gorm:"foreignKey:MeetingID;constraint:-" json:"meeting,omitempty"`
	Owners    datatypes.JSONSlice[string] `gorm:"type:jsonb;default:'[]'" json:"owners"`
	Deadline  *time.Time                  `gorm:"index" json:"deadline,omitempty"`
	Status    ActionStatus                `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt time.Time                   `gorm:"default:now()" json:"createdAt"`
	UpdatedAt time.Time                   `gorm:"default:now()" json:"updatedAt"`
}

// TableName specifies the table name for Action
func (Action) TableName() string {
	return "actions"
}

// IsOverdueAt reports whether the action should be swept to overdue as of now
func (a *Action) IsOverdueAt(now time.Time) bool {
	if a.Deadline == nil {
		return false
	}
	if a.Status != ActionStatusPending && a.Status != ActionStatusInProgress {
		return false
	}
	return a.Deadline.Before(now)
}
