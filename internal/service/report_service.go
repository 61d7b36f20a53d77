package service

import (
	"context"
	"fmt"
	"time"

	"inventory/internal/dto"
	"inventory/internal/repository"

	"github.com/shopspring/decimal"
)

// ReportService assembles the printable stock report.
type ReportService interface {
	StockReport(ctx context.Context) (*dto.StockReport, error)
}

type reportService struct {
	productRepo   repository.ProductRepository
	analyticsRepo repository.AnalyticsRepository
}

func NewReportService(productRepo repository.ProductRepository, analyticsRepo repository.AnalyticsRepository) ReportService {
	return &reportService{productRepo: productRepo, analyticsRepo: analyticsRepo}
}

func (s *reportService) StockReport(ctx context.Context) (*dto.StockReport, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("stock report: list products: %w", err)
	}
	capacity, err := s.analyticsRepo.Capacity(ctx)
	if err != nil {
		return nil, fmt.Errorf("stock report: capacity: %w", err)
	}

	report := &dto.StockReport{
		GeneratedAt: time.Now().UTC().Format("2006-01-02 15:04 MST"),
		Products:    make([]dto.ProductResponse, 0, len(products)),
		Capacity:    capacity,
		TotalValue:  decimal.Zero,
	}
	for _, p := range products {
		report.Products = append(report.Products, mapProduct(p))
		report.TotalValue = report.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}
	return report, nil
}
