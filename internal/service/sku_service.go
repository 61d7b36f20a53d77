package service

import (
	"context"
	"fmt"

	"inventory/internal/dto"
	"inventory/internal/model"
	"inventory/internal/repository"
)

// SKUService manages storage locations.
type SKUService interface {
	Create(ctx context.Context, req dto.SKURequest) (*dto.SKUResponse, error)
	Get(ctx context.Context, id int64) (*dto.SKUResponse, error)
	List(ctx context.Context) ([]dto.SKUResponse, error)
	Update(ctx context.Context, id int64, req dto.SKURequest) (*dto.SKUResponse, error)
	Delete(ctx context.Context, id int64) error
}

type skuService struct {
	repo repository.SKURepository
}

func NewSKUService(repo repository.SKURepository) SKUService {
	return &skuService{repo: repo}
}

func mapSKU(s model.SKU) dto.SKUResponse {
	return dto.SKUResponse{ID: s.ID, Name: s.Name, Location: s.Location, Capacity: s.Capacity}
}

func (s *skuService) Create(ctx context.Context, req dto.SKURequest) (*dto.SKUResponse, error) {
	sku := &model.SKU{Name: req.Name, Location: req.Location, Capacity: req.Capacity}
	if err := s.repo.Create(ctx, sku); err != nil {
		return nil, fmt.Errorf("create sku: %w", err)
	}
	resp := mapSKU(*sku)
	return &resp, nil
}

func (s *skuService) Get(ctx context.Context, id int64) (*dto.SKUResponse, error) {
	sku, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(entitySKU, id, err)
	}
	resp := mapSKU(*sku)
	return &resp, nil
}

func (s *skuService) List(ctx context.Context) ([]dto.SKUResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skus: %w", err)
	}
	result := make([]dto.SKUResponse, 0, len(list))
	for _, sku := range list {
		result = append(result, mapSKU(sku))
	}
	return result, nil
}

func (s *skuService) Update(ctx context.Context, id int64, req dto.SKURequest) (*dto.SKUResponse, error) {
	sku, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(entitySKU, id, err)
	}
	sku.Name = req.Name
	sku.Location = req.Location
	sku.Capacity = req.Capacity
	if err := s.repo.Update(ctx, sku); err != nil {
		return nil, fmt.Errorf("update sku %d: %w", id, err)
	}
	resp := mapSKU(*sku)
	return &resp, nil
}

func (s *skuService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete sku %d: %w", id, err)
	}
	return nil
}
