package repository

import (
	"context"

	"inventory/internal/model"

	"gorm.io/gorm"
)

// ProductRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling unit testing with in-memory stubs.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id int64) error

	// Used inside transactions; callers must pass the tx instance
	FindByIDTx(tx *gorm.DB, id int64) (*model.Product, error)
	// DecrementStockTx subtracts qty only when at least qty units are in
	// stock. It reports false, leaving the row untouched, otherwise.
	DecrementStockTx(tx *gorm.DB, id int64, qty int) (bool, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Order("id asc").Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id).Error
}

func (r *productRepo) FindByIDTx(tx *gorm.DB, id int64) (*model.Product, error) {
	var p model.Product
	if err := tx.First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) DecrementStockTx(tx *gorm.DB, id int64, qty int) (bool, error) {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND quantity >= ?", id, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *productRepo) DB() *gorm.DB { return r.db }
