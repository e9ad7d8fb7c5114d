// FILE: internal/service/gallery_service.go
package service

import (
	"context"
	"errors"
	"time"

	"photofolio-be/internal/dto"
	"photofolio-be/internal/entity"
	"photofolio-be/internal/repository/specification"
	"photofolio-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// ErrFeatureGated signals the caller's plan does not include the feature
// or its numeric limit is exhausted. Controllers map it to 403.
var ErrFeatureGated = errors.New("feature not available on current plan")

type IGalleryService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateGalleryRequest) (*dto.GalleryResponse, error)
	Update(ctx context.Context, userId, galleryId uuid.UUID, req *dto.UpdateGalleryRequest) error
	Delete(ctx context.Context, userId, galleryId uuid.UUID) error
	List(ctx context.Context, userId uuid.UUID) ([]*dto.GalleryResponse, error)
}

type galleryService struct {
	uowFactory  unitofwork.RepositoryFactory
	entitlement IEntitlementService
}

func NewGalleryService(uowFactory unitofwork.RepositoryFactory, entitlementSvc IEntitlementService) IGalleryService {
	return &galleryService{
		uowFactory:  uowFactory,
		entitlement: entitlementSvc,
	}
}

func (s *galleryService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateGalleryRequest) (*dto.GalleryResponse, error) {
	features, err := s.entitlement.ResolveFeatures(ctx, userId)
	if err != nil {
		return nil, err
	}
	if !features.Features.CanUse("clientGalleries") {
		return nil, ErrFeatureGated
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if limit, ok := features.Features.Limit("maxGalleries"); ok && limit >= 0 {
		count, err := uow.GalleryRepository().Count(ctx, specification.OwnedBy{UserID: userId})
		if err != nil {
			return nil, err
		}
		if count >= int64(limit) {
			return nil, ErrFeatureGated
		}
	}

	gallery := &entity.Gallery{
		Id:               uuid.New(),
		UserId:           userId,
		StorageAccountId: req.StorageAccountId,
		Title:            req.Title,
		Description:      req.Description,
		RemoteFolderId:   req.RemoteFolderId,
		IsPublic:         req.IsPublic,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := uow.GalleryRepository().Create(ctx, gallery); err != nil {
		return nil, err
	}

	return galleryToResponse(gallery), nil
}

func (s *galleryService) Update(ctx context.Context, userId, galleryId uuid.UUID, req *dto.UpdateGalleryRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	gallery, err := uow.GalleryRepository().FindOne(ctx, specification.ByID{ID: galleryId}, specification.OwnedBy{UserID: userId})
	if err != nil {
		return err
	}
	if gallery == nil {
		return errors.New("gallery not found")
	}

	if req.Title != nil {
		gallery.Title = *req.Title
	}
	if req.Description != nil {
		gallery.Description = *req.Description
	}
	if req.CoverURL != nil {
		gallery.CoverURL = *req.CoverURL
	}
	if req.IsPublic != nil {
		gallery.IsPublic = *req.IsPublic
	}
	if req.SortOrder != nil {
		gallery.SortOrder = *req.SortOrder
	}
	gallery.UpdatedAt = time.Now()

	return uow.GalleryRepository().Update(ctx, gallery)
}

func (s *galleryService) Delete(ctx context.Context, userId, galleryId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	gallery, err := uow.GalleryRepository().FindOne(ctx, specification.ByID{ID: galleryId}, specification.OwnedBy{UserID: userId})
	if err != nil {
		return err
	}
	if gallery == nil {
		return errors.New("gallery not found")
	}

	return uow.GalleryRepository().Delete(ctx, gallery.Id)
}

func (s *galleryService) List(ctx context.Context, userId uuid.UUID) ([]*dto.GalleryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	galleries, err := uow.GalleryRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "sort_order"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.GalleryResponse, 0, len(galleries))
	for _, g := range galleries {
		result = append(result, galleryToResponse(g))
	}
	return result, nil
}

func galleryToResponse(g *entity.Gallery) *dto.GalleryResponse {
	return &dto.GalleryResponse{
		Id:             g.Id,
		Title:          g.Title,
		Description:    g.Description,
		StorageAccount: g.StorageAccountId,
		RemoteFolderId: g.RemoteFolderId,
		CoverURL:       g.CoverURL,
		IsPublic:       g.IsPublic,
		SortOrder:      g.SortOrder,
		CreatedAt:      g.CreatedAt,
	}
}
