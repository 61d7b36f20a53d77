package repository

import (
	"context"

	"inventory/internal/model"

	"gorm.io/gorm"
)

type SaleRepository interface {
	// CreateTx inserts a sale inside the caller's transaction.
	CreateTx(tx *gorm.DB, s *model.Sale) error
	ListByProduct(ctx context.Context, productID int64) ([]model.Sale, error)
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) CreateTx(tx *gorm.DB, s *model.Sale) error {
	return tx.Create(s).Error
}

func (r *saleRepo) ListByProduct(ctx context.Context, productID int64) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("id asc").Find(&sales).Error
	return sales, err
}
