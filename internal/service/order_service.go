package service

import (
	"context"
	"fmt"

	"inventory/internal/dto"
	"inventory/internal/model"
	"inventory/internal/repository"
)

type OrderService interface {
	Create(ctx context.Context, req dto.OrderRequest) (*dto.OrderResponse, error)
	Get(ctx context.Context, id int64) (*dto.OrderResponse, error)
	List(ctx context.Context) ([]dto.OrderResponse, error)
	// Update merges the supplied fields into the stored order.
	Update(ctx context.Context, id int64, req dto.UpdateOrderRequest) (*dto.OrderResponse, error)
	Delete(ctx context.Context, id int64) error
}

type orderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

func mapOrder(o model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:            o.ID,
		ProductID:     o.ProductID,
		Quantity:      o.Quantity,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
	}
}

func (s *orderService) Create(ctx context.Context, req dto.OrderRequest) (*dto.OrderResponse, error) {
	o := &model.Order{
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	resp := mapOrder(*o)
	return &resp, nil
}

func (s *orderService) Get(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(entityOrder, id, err)
	}
	resp := mapOrder(*o)
	return &resp, nil
}

func (s *orderService) List(ctx context.Context) ([]dto.OrderResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	result := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		result = append(result, mapOrder(o))
	}
	return result, nil
}

func (s *orderService) Update(ctx context.Context, id int64, req dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	if req.Empty() {
		return nil, ErrNothingToUpdate
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, lookupErr(entityOrder, id, err)
	}

	patch := repository.OrderPatch{
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
	}
	if err := s.repo.Patch(ctx, id, patch); err != nil {
		return nil, fmt.Errorf("update order %d: %w", id, err)
	}

	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(entityOrder, id, err)
	}
	resp := mapOrder(*o)
	return &resp, nil
}

func (s *orderService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}
	return nil
}
