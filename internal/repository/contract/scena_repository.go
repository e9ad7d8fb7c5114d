package contract

import (
	"context"

	"photofolio-be/internal/entity"
	"photofolio-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ScenaRepository interface {
	CreateProject(ctx context.Context, project *entity.ScenaProject) error
	UpdateProject(ctx context.Context, project *entity.ScenaProject) error
	DeleteProject(ctx context.Context, id uuid.UUID) error
	FindOneProject(ctx context.Context, specs ...specification.Specification) (*entity.ScenaProject, error)
	FindProjects(ctx context.Context, specs ...specification.Specification) ([]*entity.ScenaProject, error)
	CountProjects(ctx context.Context, specs ...specification.Specification) (int64, error)

	CreateCard(ctx context.Context, card *entity.ScenaCard) error
	UpdateCard(ctx context.Context, card *entity.ScenaCard) error
	DeleteCard(ctx context.Context, id uuid.UUID) error
	FindOneCard(ctx context.Context, specs ...specification.Specification) (*entity.ScenaCard, error)
	FindCards(ctx context.Context, projectId uuid.UUID) ([]*entity.ScenaCard, error)
}
