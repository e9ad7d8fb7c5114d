package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Scena (kanban) DTOs ---

type CreateScenaProjectRequest struct {
	Title      string `json:"title" validate:"required,min=2"`
	ClientName string `json:"client_name,omitempty"`
}

type UpdateScenaProjectRequest struct {
	Title      *string `json:"title,omitempty" validate:"omitempty,min=2"`
	ClientName *string `json:"client_name,omitempty"`
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=active archived"`
}

type ScenaProjectResponse struct {
	Id         uuid.UUID            `json:"id"`
	Title      string               `json:"title"`
	ClientName string               `json:"client_name,omitempty"`
	Status     string               `json:"status"`
	Cards      []*ScenaCardResponse `json:"cards,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
}

type CreateScenaCardRequest struct {
	Column    string `json:"column" validate:"required,oneof=todo doing review done"`
	Title     string `json:"title" validate:"required"`
	Body      string `json:"body,omitempty"`
	SortOrder int    `json:"sort_order"`
}

type MoveScenaCardRequest struct {
	Column    string `json:"column" validate:"required,oneof=todo doing review done"`
	SortOrder int    `json:"sort_order"`
}

type ScenaCardResponse struct {
	Id        uuid.UUID `json:"id"`
	ProjectId uuid.UUID `json:"project_id"`
	Column    string    `json:"column"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	SortOrder int       `json:"sort_order"`
	UpdatedAt time.Time `json:"updated_at"`
}
