package domain

import "time"

// Status is the lifecycle stage of a project.
type Status string

const (
	StatusPlanning   Status = "planning"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Priority ranks how urgent a project is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// InstructionStep is one ordered step inside a project. It has no identity
// of its own.
type InstructionStep struct {
	Step int    `json:"step" validate:"required,min=1"`
	Text string `json:"text" validate:"required"`
}

// MaterialItem is one material needed for a project.
type MaterialItem struct {
	Name     string   `json:"name" validate:"required"`
	Quantity *float64 `json:"quantity" validate:"omitnil,gte=0"`
	Cost     *float64 `json:"cost" validate:"omitnil,gte=0"`
	Owned    bool     `json:"owned"`
}

// Project is a single home project row as the store returns it. The store
// assigns id and timestamps; user_id is set from the authenticated caller,
// never from client input.
type Project struct {
	ID                     string            `json:"id"`
	UserID                 string            `json:"user_id"`
	Title                  string            `json:"title"`
	Description            *string           `json:"description"`
	Status                 Status            `json:"status"`
	Priority               Priority          `json:"priority"`
	EstimatedDurationHours *float64          `json:"estimated_duration_hours"`
	EstimatedCost          *float64          `json:"estimated_cost"`
	Instructions           []InstructionStep `json:"instructions"`
	Materials              []MaterialItem    `json:"materials"`
	CreatedAt              time.Time         `json:"created_at"`
	UpdatedAt              time.Time         `json:"updated_at"`
}

// ProjectCreate is the request body for creating a project.
type ProjectCreate struct {
	Title                  string            `json:"title" validate:"required,max=255"`
	Description            *string           `json:"description"`
	Status                 Status            `json:"status" validate:"omitempty,oneof=planning in_progress completed"`
	Priority               Priority          `json:"priority" validate:"omitempty,oneof=low medium high"`
	EstimatedDurationHours *float64          `json:"estimated_duration_hours" validate:"omitnil,gte=0"`
	EstimatedCost          *float64          `json:"estimated_cost" validate:"omitnil,gte=0"`
	Instructions           []InstructionStep `json:"instructions" validate:"dive"`
	Materials              []MaterialItem    `json:"materials" validate:"dive"`
}

// ApplyDefaults fills the fields the store expects to always be present.
func (p *ProjectCreate) ApplyDefaults() {
	if p.Status == "" {
		p.Status = StatusPlanning
	}
	if p.Priority == "" {
		p.Priority = PriorityMedium
	}
	if p.Instructions == nil {
		p.Instructions = []InstructionStep{}
	}
	if p.Materials == nil {
		p.Materials = []MaterialItem{}
	}
	for i := range p.Materials {
		if p.Materials[i].Quantity == nil {
			one := 1.0
			p.Materials[i].Quantity = &one
		}
	}
}

// Record builds the row to insert, forcing user_id to the authenticated
// caller's identity. Optional fields stay absent so the store keeps them null.
func (p *ProjectCreate) Record(userID string) map[string]any {
	record := map[string]any{
		"user_id":      userID,
		"title":        p.Title,
		"status":       p.Status,
		"priority":     p.Priority,
		"instructions": p.Instructions,
		"materials":    p.Materials,
	}
	if p.Description != nil {
		record["description"] = *p.Description
	}
	if p.EstimatedDurationHours != nil {
		record["estimated_duration_hours"] = *p.EstimatedDurationHours
	}
	if p.EstimatedCost != nil {
		record["estimated_cost"] = *p.EstimatedCost
	}
	return record
}

// ProjectUpdate is the request body for a partial update. Every field is
// optional; rules apply only to fields that are present. Presence itself is
// tracked outside this struct, from the raw payload.
type ProjectUpdate struct {
	Title                  *string           `json:"title" validate:"omitnil,min=1,max=255"`
	Description            *string           `json:"description"`
	Status                 *Status           `json:"status" validate:"omitnil,oneof=planning in_progress completed"`
	Priority               *Priority         `json:"priority" validate:"omitnil,oneof=low medium high"`
	EstimatedDurationHours *float64          `json:"estimated_duration_hours" validate:"omitnil,gte=0"`
	EstimatedCost          *float64          `json:"estimated_cost" validate:"omitnil,gte=0"`
	Instructions           []InstructionStep `json:"instructions" validate:"omitempty,dive"`
	Materials              []MaterialItem    `json:"materials" validate:"omitempty,dive"`
}

// UpdatableFields lists the columns a PATCH may touch.
var UpdatableFields = []string{
	"title",
	"description",
	"status",
	"priority",
	"estimated_duration_hours",
	"estimated_cost",
	"instructions",
	"materials",
}
