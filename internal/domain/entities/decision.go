package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DecisionOutcome represents the tracked outcome of a decision
type DecisionOutcome string

const (
	DecisionOutcomePending    DecisionOutcome = "pending"
	DecisionOutcomeSuccessful DecisionOutcome = "successful"
	DecisionOutcomeFailed     DecisionOutcome = "failed"
	DecisionOutcomeRevisited  DecisionOutcome = "revisited"
)

// ActiveOutcomes are the outcomes counted as "active" on the dashboard.
var ActiveOutcomes = []DecisionOutcome{DecisionOutcomePending, DecisionOutcomeRevisited}

// Team labels a decision may be attributed to
const (
	TeamProduct     = "product"
	TeamData        = "data"
	TeamLeadership  = "leadership"
	TeamOperations  = "operations"
	TeamCommercial  = "commercial"
	TeamDevelopment = "development"
)

// Alternative is one considered option attached to a decision, kept in the
// order it was submitted.
type Alternative struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Decision represents a logged choice with rationale and outcome
type Decision struct {
	ID           uuid.UUID                        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title        string                           `gorm:"type:varchar(255);not null" json:"title"`
	Description  string                           `gorm:"type:text" json:"description"`
	Context      string                           `gorm:"type:text" json:"context"`
	Constraints  string                           `gorm:"type:text" json:"constraints"`
	Alternatives datatypes.JSONSlice[Alternative] `gorm:"type:jsonb;default:'[]'" json:"alternatives"`
	Outcome      DecisionOutcome                  `gorm:"type:varchar(20);not null;default:'pending';index" json:"outcome"`
	Tags         datatypes.JSONSlice[string]      `gorm:"type:jsonb;default:'[]'" json:"tags"`
	Project      string                           `gorm:"type:varchar(255);index" json:"project"`
	Team         datatypes.JSONSlice[string]      `gorm:"type:jsonb;default:'[]'" json:"team"`
	MadeByID     *uuid.UUID                       `gorm:"type:uuid;index" json:"madeById,omitempty"`
	MadeBy       *Member                          `gorm:"foreignKey:MadeByID;constraint:-" json:"madeBy,omitempty"`
	DecisionDate time.Time                        `gorm:"default:now();index" json:"decisionDate"`
	MeetingID    *uuid.UUID                       `gorm:"type:uuid;index" json:"meetingId"`
	CreatedAt    time.Time                        `gorm:"default:now()" json:"createdAt"`
	UpdatedAt    time.Time                        `gorm:"default:now()" json:"updatedAt"`
}

// TableName specifies the table name for Decision
func (Decision) TableName() string {
	return "decisions"
}

// IsActive reports whether the decision still needs attention
func (d *Decision) IsActive() bool {
	return d.Outcome == DecisionOutcomePending || d.Outcome == DecisionOutcomeRevisited
}
