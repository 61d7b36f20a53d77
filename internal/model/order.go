package model

// Order is a customer order line for a single product.
type Order struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	ProductID     int64  `gorm:"column:product_id;index"`
	Quantity      int    `gorm:"not null"`
	CustomerName  string `gorm:"not null"`
	CustomerEmail string `gorm:"not null"`
}

func (Order) TableName() string { return "orders" }
