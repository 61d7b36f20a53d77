package repository

import (
	"context"

	"inventory/internal/model"

	"gorm.io/gorm"
)

// OrderPatch is a structured partial update: nil fields are left untouched.
type OrderPatch struct {
	ProductID     *int64
	Quantity      *int
	CustomerName  *string
	CustomerEmail *string
}

// columns resolves the patch into the whitelisted column → value set.
func (p OrderPatch) columns() map[string]interface{} {
	cols := make(map[string]interface{}, 4)
	if p.ProductID != nil {
		cols["product_id"] = *p.ProductID
	}
	if p.Quantity != nil {
		cols["quantity"] = *p.Quantity
	}
	if p.CustomerName != nil {
		cols["customer_name"] = *p.CustomerName
	}
	if p.CustomerEmail != nil {
		cols["customer_email"] = *p.CustomerEmail
	}
	return cols
}

type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	// Patch writes only the supplied fields of an existing order.
	Patch(ctx context.Context, id int64, patch OrderPatch) error
	Delete(ctx context.Context, id int64) error
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) FindByID(ctx context.Context, id int64) (*model.Order, error) {
	var o model.Order
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) List(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).Order("id asc").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) Patch(ctx context.Context, id int64, patch OrderPatch) error {
	cols := patch.columns()
	if len(cols) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).Updates(cols).Error
}

func (r *orderRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Order{}, "id = ?", id).Error
}
