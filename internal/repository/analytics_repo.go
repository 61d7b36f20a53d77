package repository

import (
	"context"

	"inventory/internal/dto"

	"gorm.io/gorm"
)

// AnalyticsRepository runs the two read-only aggregate joins.
type AnalyticsRepository interface {
	Capacity(ctx context.Context) ([]dto.CapacityRow, error)
	UnitsSold(ctx context.Context) ([]dto.UnitsSoldRow, error)
}

type analyticsRepo struct{ db *gorm.DB }

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository { return &analyticsRepo{db: db} }

const capacityQuery = `
SELECT s.id AS sku_id,
       s.name AS sku_name,
       s.capacity AS total_capacity,
       COALESCE(SUM(p.quantity), 0) AS used_capacity
FROM skus s
LEFT JOIN products p ON s.id = p.sku_id
GROUP BY s.id, s.name, s.capacity
ORDER BY s.id`

func (r *analyticsRepo) Capacity(ctx context.Context) ([]dto.CapacityRow, error) {
	rows := make([]dto.CapacityRow, 0)
	err := r.db.WithContext(ctx).Raw(capacityQuery).Scan(&rows).Error
	return rows, err
}

// Grouped by name, as two products sharing a name are reported together.
const unitsSoldQuery = `
SELECT p.name AS product_name,
       COALESCE(SUM(o.quantity), 0) AS total_sold
FROM products p
LEFT JOIN orders o ON p.id = o.product_id
GROUP BY p.name
ORDER BY p.name`

func (r *analyticsRepo) UnitsSold(ctx context.Context) ([]dto.UnitsSoldRow, error) {
	rows := make([]dto.UnitsSoldRow, 0)
	err := r.db.WithContext(ctx).Raw(unitsSoldQuery).Scan(&rows).Error
	return rows, err
}
