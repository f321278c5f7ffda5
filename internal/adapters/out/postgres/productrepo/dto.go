// Package productrepo provides data transfer objects and mapping functions for catalog persistence.
// This package implements the repository pattern for the product domain aggregate, handling
// the conversion between domain entities and database representations.
package productrepo

import (
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting catalog items.
type ProductDTO struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name          string           `gorm:"type:varchar(255);not null"`
	Price         decimal.Decimal  `gorm:"type:numeric(14,2);not null"`
	DiscountPrice *decimal.Decimal `gorm:"type:numeric(14,2)"`
	Status        int              `gorm:"type:int;not null;index"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	var discountPrice *decimal.Decimal
	if dp := aggregate.DiscountPrice(); dp != nil {
		raw := dp.Decimal()
		discountPrice = &raw
	}

	return ProductDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Price:         aggregate.Price().Decimal(),
		DiscountPrice: discountPrice,
		Status:        int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	var discountPrice *kernel.Money
	if dto.DiscountPrice != nil {
		dp, dpErr := kernel.NewMoney(*dto.DiscountPrice)
		if dpErr != nil {
			return nil, dpErr
		}
		discountPrice = &dp
	}

	return product.NewProduct(id, dto.Name, price, discountPrice, product.Status(dto.Status))
}
