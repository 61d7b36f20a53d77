package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

const (
	entityProduct  = "Product"
	entitySKU      = "SKU"
	entitySupplier = "Supplier"
	entityOrder    = "Order"
)

var (
	// ErrNotFound matches every *NotFoundError via errors.Is.
	ErrNotFound = errors.New("not found")
	// ErrOutOfStock is returned when a sale asks for more units than are stocked.
	ErrOutOfStock = errors.New("product is out of stock")
	// ErrNothingToUpdate is returned by a partial update that carries no field.
	ErrNothingToUpdate = errors.New("no fields to update")
)

// NotFoundError names the entity whose id was absent.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// lookupErr converts gorm.ErrRecordNotFound into the entity's NotFoundError
// and wraps anything else as a store fault.
func lookupErr(entity string, id int64, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return fmt.Errorf("find %s %d: %w", strings.ToLower(entity), id, err)
}
