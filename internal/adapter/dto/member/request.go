package member

// CreateMemberRequest represents the request to create a member
type CreateMemberRequest struct {
	Name           string   `json:"name" validate:"required,min=1,max=255"`
	Role           string   `json:"role,omitempty" validate:"omitempty,max=100"`
	Email          string   `json:"email,omitempty" validate:"omitempty,email"`
	WeeklyCapacity *float64 `json:"weeklyCapacity,omitempty" validate:"omitempty,gte=0"`
}

// UpdateMemberRequest represents a partial member update
type UpdateMemberRequest struct {
	Name           *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Role           *string  `json:"role,omitempty" validate:"omitempty,max=100"`
	Email          *string  `json:"email,omitempty" validate:"omitempty,email"`
	WeeklyCapacity *float64 `json:"weeklyCapacity,omitempty" validate:"omitempty,gte=0"`
}
