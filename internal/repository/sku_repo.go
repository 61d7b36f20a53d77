package repository

import (
	"context"

	"inventory/internal/model"

	"gorm.io/gorm"
)

type SKURepository interface {
	Create(ctx context.Context, s *model.SKU) error
	FindByID(ctx context.Context, id int64) (*model.SKU, error)
	List(ctx context.Context) ([]model.SKU, error)
	Update(ctx context.Context, s *model.SKU) error
	Delete(ctx context.Context, id int64) error
}

type skuRepo struct{ db *gorm.DB }

func NewSKURepository(db *gorm.DB) SKURepository { return &skuRepo{db: db} }

func (r *skuRepo) Create(ctx context.Context, s *model.SKU) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *skuRepo) FindByID(ctx context.Context, id int64) (*model.SKU, error) {
	var s model.SKU
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *skuRepo) List(ctx context.Context) ([]model.SKU, error) {
	var skus []model.SKU
	err := r.db.WithContext(ctx).Order("id asc").Find(&skus).Error
	return skus, err
}

func (r *skuRepo) Update(ctx context.Context, s *model.SKU) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *skuRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.SKU{}, "id = ?", id).Error
}
