package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name       string         `gorm:"column:name;not null;index"`
	SKU        string         `gorm:"column:sku;unique;not null"`
	Category   string         `gorm:"column:category;index"`
	Price      float64        `gorm:"column:price;not null"`
	Stock      int            `gorm:"column:stock;default:0;not null"`
	Active     bool           `gorm:"column:active;default:true;not null"`
	Attributes datatypes.JSON `gorm:"column:attributes"`
}

// ProductFilterable and ProductSortable are the fixed column sets list
// requests may reference. They are maintained by hand on purpose: the query
// builders must never learn columns from the schema.
var (
	ProductFilterable = []string{"name", "sku", "category", "price", "stock", "active"}
	ProductSortable   = []string{"name", "price", "stock", "created_at"}
)
