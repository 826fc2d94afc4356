package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Meeting represents a recorded team meeting.
// Attendees holds member ids; the list is stored as jsonb and resolved to
// names at presentation time, no foreign key is enforced by the store.
type Meeting struct {
	ID        uuid.UUID                  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title     string                     `gorm:"type:varchar(255);not null" json:"title"`
	Date      time.Time                  `gorm:"not null;index" json:"date"`
	Agenda    string                     `gorm:"type:text" json:"agenda"`
	Notes     string                     `gorm:"type:text" json:"notes"`
	Attendees datatypes.JSONSlice[string] `gorm:"type:jsonb;default:'[]'" json:"attendees"`
	CreatedAt time.Time                  `gorm:"default:now()" json:"createdAt"`
	UpdatedAt time.Time                  `gorm:"default:now()" json:"updatedAt"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}
