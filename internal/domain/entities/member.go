package entities

import (
	"time"

	"github.com/google/uuid"
)

// DefaultWeeklyCapacity is the assumed working hours per week when a member
// is created without an explicit capacity.
const DefaultWeeklyCapacity = 40

// Member represents a team member
type Member struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Role           string    `gorm:"type:varchar(100)" json:"role"`
	Email          string    `gorm:"type:varchar(255)" json:"email"`
	WeeklyCapacity float64   `gorm:"default:40;check:weekly_capacity >= 0" json:"weeklyCapacity"`
	CreatedAt      time.Time `gorm:"default:now()" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"default:now()" json:"updatedAt"`
}

// TableName specifies the table name for Member
func (Member) TableName() string {
	return "members"
}
