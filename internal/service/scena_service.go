// FILE: internal/service/scena_service.go
// Scena is the kanban-style shoot planning board. Project creation is
// gated by the maxScenaProjects entitlement; card changes fan out to
// connected board clients through the websocket hub.
package service

import (
	"context"
	"errors"
	"time"

	"photofolio-be/internal/dto"
	"photofolio-be/internal/entity"
	"photofolio-be/internal/repository/specification"
	"photofolio-be/internal/repository/unitofwork"
	"photofolio-be/internal/websocket"

	"github.com/google/uuid"
)

type IScenaService interface {
	CreateProject(ctx context.Context, userId uuid.UUID, req *dto.CreateScenaProjectRequest) (*dto.ScenaProjectResponse, error)
	GetProject(ctx context.Context, userId, projectId uuid.UUID) (*dto.ScenaProjectResponse, error)
	ListProjects(ctx context.Context, userId uuid.UUID) ([]*dto.ScenaProjectResponse, error)
	UpdateProject(ctx context.Context, userId, projectId uuid.UUID, req *dto.UpdateScenaProjectRequest) (*dto.ScenaProjectResponse, error)
	DeleteProject(ctx context.Context, userId, projectId uuid.UUID) error

	CreateCard(ctx context.Context, userId, projectId uuid.UUID, req *dto.CreateScenaCardRequest) (*dto.ScenaCardResponse, error)
	MoveCard(ctx context.Context, userId, cardId uuid.UUID, req *dto.MoveScenaCardRequest) (*dto.ScenaCardResponse, error)
	DeleteCard(ctx context.Context, userId, cardId uuid.UUID) error
}

type scenaService struct {
	uowFactory  unitofwork.RepositoryFactory
	entitlement IEntitlementService
	hub         *websocket.Hub
}

func NewScenaService(uowFactory unitofwork.RepositoryFactory, entitlementSvc IEntitlementService, hub *websocket.Hub) IScenaService {
	return &scenaService{
		uowFactory:  uowFactory,
		entitlement: entitlementSvc,
		hub:         hub,
	}
}

func (s *scenaService) CreateProject(ctx context.Context, userId uuid.UUID, req *dto.CreateScenaProjectRequest) (*dto.ScenaProjectResponse, error) {
	features, err := s.entitlement.ResolveFeatures(ctx, userId)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if limit, ok := features.Features.Limit("maxScenaProjects"); ok && limit >= 0 {
		count, err := uow.ScenaRepository().CountProjects(ctx, specification.Filter("owner_id", userId))
		if err != nil {
			return nil, err
		}
		if count >= int64(limit) {
			return nil, ErrFeatureGated
		}
	}

	project := &entity.ScenaProject{
		Id:         uuid.New(),
		OwnerId:    userId,
		Title:      req.Title,
		ClientName: req.ClientName,
		Status:     "active",
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := uow.ScenaRepository().CreateProject(ctx, project); err != nil {
		return nil, err
	}

	return projectToResponse(project), nil
}

func (s *scenaService) GetProject(ctx context.Context, userId, projectId uuid.UUID) (*dto.ScenaProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := s.ownedProject(ctx, uow, userId, projectId)
	if err != nil {
		return nil, err
	}

	cards, err := uow.ScenaRepository().FindCards(ctx, project.Id)
	if err != nil {
		return nil, err
	}
	project.Cards = cards

	return projectToResponse(project), nil
}

func (s *scenaService) ListProjects(ctx context.Context, userId uuid.UUID) ([]*dto.ScenaProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	projects, err := uow.ScenaRepository().FindProjects(ctx,
		specification.Filter("owner_id", userId),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ScenaProjectResponse, 0, len(projects))
	for _, p := range projects {
		result = append(result, projectToResponse(p))
	}
	return result, nil
}

func (s *scenaService) UpdateProject(ctx context.Context, userId, projectId uuid.UUID, req *dto.UpdateScenaProjectRequest) (*dto.ScenaProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := s.ownedProject(ctx, uow, userId, projectId)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.ClientName != nil {
		project.ClientName = *req.ClientName
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	project.UpdatedAt = time.Now()

	if err := uow.ScenaRepository().UpdateProject(ctx, project); err != nil {
		return nil, err
	}

	return projectToResponse(project), nil
}

func (s *scenaService) DeleteProject(ctx context.Context, userId, projectId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := s.ownedProject(ctx, uow, userId, projectId)
	if err != nil {
		return err
	}

	return uow.ScenaRepository().DeleteProject(ctx, project.Id)
}

func (s *scenaService) CreateCard(ctx context.Context, userId, projectId uuid.UUID, req *dto.CreateScenaCardRequest) (*dto.ScenaCardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := s.ownedProject(ctx, uow, userId, projectId)
	if err != nil {
		return nil, err
	}

	card := &entity.ScenaCard{
		Id:        uuid.New(),
		ProjectId: project.Id,
		Column:    entity.ScenaColumn(req.Column),
		Title:     req.Title,
		Body:      req.Body,
		SortOrder: req.SortOrder,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uow.ScenaRepository().CreateCard(ctx, card); err != nil {
		return nil, err
	}

	res := cardToResponse(card)
	s.notify(userId, "card_created", &project.Id, res)
	return res, nil
}

func (s *scenaService) MoveCard(ctx context.Context, userId, cardId uuid.UUID, req *dto.MoveScenaCardRequest) (*dto.ScenaCardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	card, project, err := s.ownedCard(ctx, uow, userId, cardId)
	if err != nil {
		return nil, err
	}

	card.Column = entity.ScenaColumn(req.Column)
	card.SortOrder = req.SortOrder
	card.UpdatedAt = time.Now()

	if err := uow.ScenaRepository().UpdateCard(ctx, card); err != nil {
		return nil, err
	}

	res := cardToResponse(card)
	s.notify(userId, "card_moved", &project.Id, res)
	return res, nil
}

func (s *scenaService) DeleteCard(ctx context.Context, userId, cardId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	card, project, err := s.ownedCard(ctx, uow, userId, cardId)
	if err != nil {
		return err
	}

	if err := uow.ScenaRepository().DeleteCard(ctx, card.Id); err != nil {
		return err
	}

	s.notify(userId, "card_deleted", &project.Id, map[string]interface{}{"card_id": card.Id})
	return nil
}

func (s *scenaService) ownedProject(ctx context.Context, uow unitofwork.UnitOfWork, userId, projectId uuid.UUID) (*entity.ScenaProject, error) {
	project, err := uow.ScenaRepository().FindOneProject(ctx,
		specification.ByID{ID: projectId},
		specification.Filter("owner_id", userId),
	)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, errors.New("project not found")
	}
	return project, nil
}

func (s *scenaService) ownedCard(ctx context.Context, uow unitofwork.UnitOfWork, userId, cardId uuid.UUID) (*entity.ScenaCard, *entity.ScenaProject, error) {
	card, err := uow.ScenaRepository().FindOneCard(ctx, specification.ByID{ID: cardId})
	if err != nil {
		return nil, nil, err
	}
	if card == nil {
		return nil, nil, errors.New("card not found")
	}

	project, err := s.ownedProject(ctx, uow, userId, card.ProjectId)
	if err != nil {
		return nil, nil, err
	}

	return card, project, nil
}

func (s *scenaService) notify(userId uuid.UUID, eventType string, projectId *uuid.UUID, data interface{}) {
	if s.hub == nil {
		return
	}
	s.hub.Send(userId, websocket.BoardEvent{
		Type:      eventType,
		ProjectId: projectId,
		Data:      data,
	})
}

func projectToResponse(p *entity.ScenaProject) *dto.ScenaProjectResponse {
	res := &dto.ScenaProjectResponse{
		Id:         p.Id,
		Title:      p.Title,
		ClientName: p.ClientName,
		Status:     p.Status,
		CreatedAt:  p.CreatedAt,
	}
	for _, c := range p.Cards {
		res.Cards = append(res.Cards, cardToResponse(c))
	}
	return res
}

func cardToResponse(c *entity.ScenaCard) *dto.ScenaCardResponse {
	return &dto.ScenaCardResponse{
		Id:        c.Id,
		ProjectId: c.ProjectId,
		Column:    string(c.Column),
		Title:     c.Title,
		Body:      c.Body,
		SortOrder: c.SortOrder,
		UpdatedAt: c.UpdatedAt,
	}
}
