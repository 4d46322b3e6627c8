package catalog

import (
	"context"
)

type Service struct {
	repo  *Repository
	cache *Cache
}

func NewService(repo *Repository, cache *Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

func (s *Service) Create(ctx context.Context, userID int64, req *CreateSightseeingRequest) (*Sightseeing, error) {
	item := &Sightseeing{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Duration:    req.Duration,
		Price:       req.Price,
		OfferPrice:  req.OfferPrice,
		Images:      req.Images,
		IsActive:    true,
		CreatedBy:   userID,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Sightseeing, error) {
	if cached, ok := s.cache.Get(ctx, id); ok {
		return cached, nil
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, item)
	return item, nil
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]Sightseeing, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateSightseeingRequest) (*Sightseeing, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Location != nil {
		item.Location = *req.Location
	}
	if req.Duration != nil {
		item.Duration = *req.Duration
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.OfferPrice != nil {
		item.OfferPrice = req.OfferPrice
	}
	if req.Images != nil {
		item.Images = req.Images
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, id)
	return item, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, id)
	return nil
}
