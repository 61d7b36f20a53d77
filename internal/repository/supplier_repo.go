package repository

import (
	"context"

	"inventory/internal/model"

	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(ctx context.Context, s *model.Supplier) error
	FindByID(ctx context.Context, id int64) (*model.Supplier, error)
	List(ctx context.Context) ([]model.Supplier, error)
	Update(ctx context.Context, s *model.Supplier) error
	Delete(ctx context.Context, id int64) error
}

type supplierRepo struct{ db *gorm.DB }

func NewSupplierRepository(db *gorm.DB) SupplierRepository { return &supplierRepo{db: db} }

func (r *supplierRepo) Create(ctx context.Context, s *model.Supplier) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *supplierRepo) FindByID(ctx context.Context, id int64) (*model.Supplier, error) {
	var s model.Supplier
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *supplierRepo) List(ctx context.Context) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.WithContext(ctx).Order("id asc").Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) Update(ctx context.Context, s *model.Supplier) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *supplierRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Supplier{}, "id = ?", id).Error
}
