package model

// SKU is a storage location with a fixed unit capacity.
// Products point at the SKU they are stocked in.
type SKU struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"not null"`
	Location string `gorm:"not null"`
	Capacity int    `gorm:"not null;default:0"`
}

// TableName overrides GORM's naming, which would split the acronym.
func (SKU) TableName() string { return "skus" }
