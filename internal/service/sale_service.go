package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inventory/internal/dto"
	"inventory/internal/model"
	"inventory/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StockAlertNotifier receives low-stock alerts after a sale commits.
// worker.Dispatcher implements it by enqueueing an alert job.
type StockAlertNotifier interface {
	NotifyLowStock(ctx context.Context, alert dto.StockAlert) error
}

type SaleService interface {
	Record(ctx context.Context, req dto.CreateSaleRequest) (*dto.SaleResponse, error)
	ListByProduct(ctx context.Context, productID int64) ([]dto.SaleResponse, error)
}

type saleService struct {
	repo              repository.SaleRepository
	productRepo       repository.ProductRepository
	notifier          StockAlertNotifier // nil: alerts are only logged
	lowStockThreshold int
	now               func() time.Time
}

func NewSaleService(
	repo repository.SaleRepository,
	productRepo repository.ProductRepository,
	notifier StockAlertNotifier,
	lowStockThreshold int,
) SaleService {
	return &saleService{
		repo:              repo,
		productRepo:       productRepo,
		notifier:          notifier,
		lowStockThreshold: lowStockThreshold,
		now:               time.Now,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func mapSale(s model.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:        s.ID,
		ProductID: s.ProductID,
		Quantity:  s.Quantity,
		Price:     s.Price,
		SaleDate:  s.SaleDate.Format("2006-01-02"),
	}
}

// ── Record ───────────────────────────────────────────────────────────────────
// One transaction:
//   1. Load the product (NotFound when absent)
//   2. Conditionally decrement stock; on failure return OutOfStock with stock unchanged
//   3. Insert the sale with total = quantity × unit price
// Two concurrent sales cannot both pass the stock check: the decrement
// itself carries the "quantity >= ?" guard.

func (s *saleService) Record(ctx context.Context, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	var (
		sale      model.Sale
		product   model.Product
		remaining int
	)

	txErr := runTx(ctx, s.productRepo.DB(), func(tx *gorm.DB) error {
		p, err := s.productRepo.FindByIDTx(tx, req.ProductID)
		if err != nil {
			return lookupErr(entityProduct, req.ProductID, err)
		}
		if req.Quantity > p.Quantity {
			return ErrOutOfStock
		}

		ok, err := s.productRepo.DecrementStockTx(tx, p.ID, req.Quantity)
		if err != nil {
			return fmt.Errorf("decrement stock of product %d: %w", p.ID, err)
		}
		if !ok {
			return ErrOutOfStock
		}

		unitPrice := p.Price
		if req.Price != nil {
			unitPrice = roundCents(*req.Price)
		}
		today := s.now().UTC()
		sale = model.Sale{
			ProductID: p.ID,
			Quantity:  req.Quantity,
			Price:     roundCents(unitPrice.Mul(decimal.NewFromInt(int64(req.Quantity)))),
			SaleDate:  time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC),
		}
		if err := s.repo.CreateTx(tx, &sale); err != nil {
			return fmt.Errorf("insert sale: %w", err)
		}

		product = *p
		remaining = p.Quantity - req.Quantity
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, ErrOutOfStock) {
			log.Info().Int64("product_id", req.ProductID).Int("requested", req.Quantity).Msg("sale rejected: out of stock")
		}
		return nil, txErr
	}

	log.Info().
		Int64("sale_id", sale.ID).
		Int64("product_id", product.ID).
		Int("quantity", sale.Quantity).
		Str("total", sale.Price.String()).
		Int("remaining", remaining).
		Msg("sale recorded")

	if remaining < s.lowStockThreshold {
		s.alertLowStock(ctx, dto.StockAlert{
			ProductID:   product.ID,
			ProductName: product.Name,
			Remaining:   remaining,
			Threshold:   s.lowStockThreshold,
		})
	}

	resp := mapSale(sale)
	return &resp, nil
}

// alertLowStock is best effort: the sale has already committed.
func (s *saleService) alertLowStock(ctx context.Context, alert dto.StockAlert) {
	log.Warn().
		Int64("product_id", alert.ProductID).
		Str("product", alert.ProductName).
		Int("remaining", alert.Remaining).
		Int("threshold", alert.Threshold).
		Msg("low stock")
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyLowStock(ctx, alert); err != nil {
		log.Error().Err(err).Int64("product_id", alert.ProductID).Msg("failed to enqueue low stock alert")
	}
}

func (s *saleService) ListByProduct(ctx context.Context, productID int64) ([]dto.SaleResponse, error) {
	list, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("list sales of product %d: %w", productID, err)
	}
	result := make([]dto.SaleResponse, 0, len(list))
	for _, sale := range list {
		result = append(result, mapSale(sale))
	}
	return result, nil
}
