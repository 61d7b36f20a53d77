package service_test

import (
	"context"
	"errors"
	"sort"

	"inventory/internal/dto"
	"inventory/internal/model"
	"inventory/internal/repository"

	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

var errStore = errors.New("database is locked")

type stubSupplierRepo struct {
	rows   map[int64]*model.Supplier
	seq    int64
	failOn string
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{rows: make(map[int64]*model.Supplier)}
}

func (r *stubSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	if r.failOn == "create" {
		return errStore
	}
	r.seq++
	s.ID = r.seq
	cp := *s
	r.rows[s.ID] = &cp
	return nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id int64) (*model.Supplier, error) {
	s, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubSupplierRepo) List(_ context.Context) ([]model.Supplier, error) {
	out := make([]model.Supplier, 0, len(r.rows))
	for _, s := range r.rows {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubSupplierRepo) Update(_ context.Context, s *model.Supplier) error {
	cp := *s
	r.rows[s.ID] = &cp
	return nil
}

func (r *stubSupplierRepo) Delete(_ context.Context, id int64) error {
	delete(r.rows, id)
	return nil
}

var _ repository.SupplierRepository = (*stubSupplierRepo)(nil)

type stubSKURepo struct {
	rows map[int64]*model.SKU
	seq  int64
}

func newStubSKURepo() *stubSKURepo { return &stubSKURepo{rows: make(map[int64]*model.SKU)} }

func (r *stubSKURepo) Create(_ context.Context, s *model.SKU) error {
	r.seq++
	s.ID = r.seq
	cp := *s
	r.rows[s.ID] = &cp
	return nil
}

func (r *stubSKURepo) FindByID(_ context.Context, id int64) (*model.SKU, error) {
	s, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubSKURepo) List(_ context.Context) ([]model.SKU, error) {
	out := make([]model.SKU, 0, len(r.rows))
	for _, s := range r.rows {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubSKURepo) Update(_ context.Context, s *model.SKU) error {
	cp := *s
	r.rows[s.ID] = &cp
	return nil
}

func (r *stubSKURepo) Delete(_ context.Context, id int64) error {
	delete(r.rows, id)
	return nil
}

var _ repository.SKURepository = (*stubSKURepo)(nil)

type stubProductRepo struct {
	rows map[int64]*model.Product
	seq  int64
	// stale overrides the quantity FindByIDTx reports, as if another sale
	// committed between the read and the decrement.
	stale map[int64]int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{rows: make(map[int64]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	r.seq++
	p.ID = r.seq
	cp := *p
	r.rows[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id int64) (*model.Product, error) {
	return r.FindByIDTx(nil, id)
}

func (r *stubProductRepo) List(_ context.Context) ([]model.Product, error) {
	out := make([]model.Product, 0, len(r.rows))
	for _, p := range r.rows {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	cp := *p
	r.rows[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id int64) error {
	delete(r.rows, id)
	return nil
}

func (r *stubProductRepo) FindByIDTx(_ *gorm.DB, id int64) (*model.Product, error) {
	p, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	if q, ok := r.stale[id]; ok {
		cp.Quantity = q
	}
	return &cp, nil
}

func (r *stubProductRepo) DecrementStockTx(_ *gorm.DB, id int64, qty int) (bool, error) {
	p, ok := r.rows[id]
	if !ok || p.Quantity < qty {
		return false, nil
	}
	p.Quantity -= qty
	return true, nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

type stubOrderRepo struct {
	rows    map[int64]*model.Order
	seq     int64
	patches []repository.OrderPatch
}

func newStubOrderRepo() *stubOrderRepo { return &stubOrderRepo{rows: make(map[int64]*model.Order)} }

func (r *stubOrderRepo) Create(_ context.Context, o *model.Order) error {
	r.seq++
	o.ID = r.seq
	cp := *o
	r.rows[o.ID] = &cp
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id int64) (*model.Order, error) {
	o, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *stubOrderRepo) List(_ context.Context) ([]model.Order, error) {
	out := make([]model.Order, 0, len(r.rows))
	for _, o := range r.rows {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubOrderRepo) Patch(_ context.Context, id int64, p repository.OrderPatch) error {
	r.patches = append(r.patches, p)
	o, ok := r.rows[id]
	if !ok {
		return nil
	}
	if p.ProductID != nil {
		o.ProductID = *p.ProductID
	}
	if p.Quantity != nil {
		o.Quantity = *p.Quantity
	}
	if p.CustomerName != nil {
		o.CustomerName = *p.CustomerName
	}
	if p.CustomerEmail != nil {
		o.CustomerEmail = *p.CustomerEmail
	}
	return nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id int64) error {
	delete(r.rows, id)
	return nil
}

var _ repository.OrderRepository = (*stubOrderRepo)(nil)

type stubSaleRepo struct {
	sales []model.Sale
}

func (r *stubSaleRepo) CreateTx(_ *gorm.DB, s *model.Sale) error {
	s.ID = int64(len(r.sales) + 1)
	r.sales = append(r.sales, *s)
	return nil
}

func (r *stubSaleRepo) ListByProduct(_ context.Context, productID int64) ([]model.Sale, error) {
	out := make([]model.Sale, 0)
	for _, s := range r.sales {
		if s.ProductID == productID {
			out = append(out, s)
		}
	}
	return out, nil
}

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

type stubAnalyticsRepo struct {
	capacity      []dto.CapacityRow
	unitsSold     []dto.UnitsSoldRow
	capacityCalls int
	unitsCalls    int
	err           error
}

func (r *stubAnalyticsRepo) Capacity(context.Context) ([]dto.CapacityRow, error) {
	r.capacityCalls++
	return r.capacity, r.err
}

func (r *stubAnalyticsRepo) UnitsSold(context.Context) ([]dto.UnitsSoldRow, error) {
	r.unitsCalls++
	return r.unitsSold, r.err
}

var _ repository.AnalyticsRepository = (*stubAnalyticsRepo)(nil)

// memoryCache is an AnalyticsCache keeping values in a map.
type memoryCache struct {
	values map[string]interface{}
}

func newMemoryCache() *memoryCache { return &memoryCache{values: make(map[string]interface{})} }

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) bool {
	v, ok := c.values[key]
	if !ok {
		return false
	}
	switch d := dest.(type) {
	case *[]dto.CapacityRow:
		*d = v.([]dto.CapacityRow)
	case *[]dto.UnitsSoldRow:
		*d = v.([]dto.UnitsSoldRow)
	default:
		return false
	}
	return true
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}) {
	c.values[key] = value
}

type recordingNotifier struct {
	alerts []dto.StockAlert
	err    error
}

func (n *recordingNotifier) NotifyLowStock(_ context.Context, a dto.StockAlert) error {
	n.alerts = append(n.alerts, a)
	return n.err
}
