package service

import (
	"context"
	"fmt"

	"inventory/internal/dto"
	"inventory/internal/model"
	"inventory/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService defines the business logic contract for products.
type ProductService interface {
	Create(ctx context.Context, req dto.ProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, id int64) (*dto.ProductResponse, error)
	List(ctx context.Context) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id int64, req dto.ProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id int64) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func mapProduct(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:         p.ID,
		SKUID:      p.SKUID,
		Name:       p.Name,
		Price:      p.Price,
		Quantity:   p.Quantity,
		SupplierID: p.SupplierID,
	}
}

// Create stores the product as given; sku_id and supplier_id are not
// checked against existing rows.
func (s *productService) Create(ctx context.Context, req dto.ProductRequest) (*dto.ProductResponse, error) {
	p := &model.Product{
		SKUID:      req.SKUID,
		Name:       req.Name,
		Price:      roundCents(req.Price),
		Quantity:   req.Quantity,
		SupplierID: req.SupplierID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	resp := mapProduct(*p)
	return &resp, nil
}

func (s *productService) Get(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(entityProduct, id, err)
	}
	resp := mapProduct(*p)
	return &resp, nil
}

func (s *productService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	result := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapProduct(p))
	}
	return result, nil
}

func (s *productService) Update(ctx context.Context, id int64, req dto.ProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(entityProduct, id, err)
	}
	p.SKUID = req.SKUID
	p.Name = req.Name
	p.Price = roundCents(req.Price)
	p.Quantity = req.Quantity
	p.SupplierID = req.SupplierID
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}
	resp := mapProduct(*p)
	return &resp, nil
}

// Delete leaves orders and sales of the product in place.
func (s *productService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return nil
}

// roundCents keeps money at two places whatever the store's numeric
// column enforces.
func roundCents(d decimal.Decimal) decimal.Decimal { return d.Round(2) }
