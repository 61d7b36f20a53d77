package service

import (
	"context"
	"fmt"

	"inventory/internal/dto"
	"inventory/internal/model"
	"inventory/internal/repository"
)

type SupplierService interface {
	Create(ctx context.Context, req dto.SupplierRequest) (*dto.SupplierResponse, error)
	Get(ctx context.Context, id int64) (*dto.SupplierResponse, error)
	List(ctx context.Context) ([]dto.SupplierResponse, error)
	Update(ctx context.Context, id int64, req dto.SupplierRequest) (*dto.SupplierResponse, error)
	Delete(ctx context.Context, id int64) error
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func mapSupplier(s model.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{ID: s.ID, Name: s.Name, Email: s.Email}
}

func (s *supplierService) Create(ctx context.Context, req dto.SupplierRequest) (*dto.SupplierResponse, error) {
	sup := &model.Supplier{Name: req.Name, Email: req.Email}
	if err := s.repo.Create(ctx, sup); err != nil {
		return nil, fmt.Errorf("create supplier: %w", err)
	}
	resp := mapSupplier(*sup)
	return &resp, nil
}

func (s *supplierService) Get(ctx context.Context, id int64) (*dto.SupplierResponse, error) {
	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(entitySupplier, id, err)
	}
	resp := mapSupplier(*sup)
	return &resp, nil
}

func (s *supplierService) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	result := make([]dto.SupplierResponse, 0, len(list))
	for _, sup := range list {
		result = append(result, mapSupplier(sup))
	}
	return result, nil
}

func (s *supplierService) Update(ctx context.Context, id int64, req dto.SupplierRequest) (*dto.SupplierResponse, error) {
	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(entitySupplier, id, err)
	}
	sup.Name = req.Name
	sup.Email = req.Email
	if err := s.repo.Update(ctx, sup); err != nil {
		return nil, fmt.Errorf("update supplier %d: %w", id, err)
	}
	resp := mapSupplier(*sup)
	return &resp, nil
}

// Delete does not check existence: deleting an absent id succeeds.
// Products referencing the supplier keep their supplier_id.
func (s *supplierService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete supplier %d: %w", id, err)
	}
	return nil
}
