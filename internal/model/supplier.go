package model

// Supplier is a vendor that products are sourced from.
type Supplier struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"not null"`
	Email string `gorm:"not null"`
}

func (Supplier) TableName() string { return "suppliers" }
