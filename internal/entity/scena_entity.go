package entity

import (
	"time"

	"github.com/google/uuid"
)

type ScenaColumn string

const (
	ScenaColumnTodo   ScenaColumn = "todo"
	ScenaColumnDoing  ScenaColumn = "doing"
	ScenaColumnReview ScenaColumn = "review"
	ScenaColumnDone   ScenaColumn = "done"
)

type ScenaProject struct {
	Id         uuid.UUID
	OwnerId    uuid.UUID
	Title      string
	ClientName string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Cards []*ScenaCard
}

type ScenaCard struct {
	Id        uuid.UUID
	ProjectId uuid.UUID
	Column    ScenaColumn
	Title     string
	Body      string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}
