package dto

import (
	"time"

	"gorm.io/datatypes"
)

type CreateProductRequest struct {
	Name       string         `json:"name" binding:"required,min=2,max=120"`
	SKU        string         `json:"sku" binding:"required,min=3,max=64"`
	Category   string         `json:"category" binding:"required,min=2,max=64"`
	Price      float64        `json:"price" binding:"required,gt=0"`
	Stock      int            `json:"stock" binding:"gte=0"`
	Active     bool           `json:"active"`
	Attributes datatypes.JSON `json:"attributes" binding:"omitempty"`
}

type ProductResponse struct {
	ID         uint           `json:"id"`
	Name       string         `json:"name"`
	SKU        string         `json:"sku"`
	Category   string         `json:"category"`
	Price      float64        `json:"price"`
	Stock      int            `json:"stock"`
	Active     bool           `json:"active"`
	Attributes datatypes.JSON `json:"attributes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
