package model

import (
	"time"

	"github.com/google/uuid"
)

// ScenaProject is a kanban-style collaborative project board.
type ScenaProject struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerId   uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	ClientName string   `gorm:"type:varchar(255)"`
	Status    string    `gorm:"type:varchar(50);not null;default:'active'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Cards []*ScenaCard `gorm:"foreignKey:ProjectId"`
}

func (ScenaProject) TableName() string {
	return "scena_projects"
}

type ScenaCard struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectId uuid.UUID `gorm:"type:uuid;not null;index"`
	Column    string    `gorm:"type:varchar(50);not null;default:'todo'"` // todo, doing, review, done
	Title     string    `gorm:"type:varchar(255);not null"`
	Body      string    `gorm:"type:text"`
	SortOrder int       `gorm:"default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ScenaCard) TableName() string {
	return "scena_cards"
}
