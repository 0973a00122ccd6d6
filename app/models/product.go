package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Size string

const (
	SizeXS  Size = "XS"
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "XXL"
)

type Color string

const (
	ColorBlack Color = "black"
	ColorWhite Color = "white"
	ColorGrey  Color = "grey"
	ColorRed   Color = "red"
	ColorBlue  Color = "blue"
	ColorGreen Color = "green"
	ColorPink  Color = "pink"
)

// Product is a catalog record. The cart only reads ID, Price and Discount;
// the remaining fields travel with the line item for display.
type Product struct {
	ID          string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id" validate:"required"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Slug        string          `gorm:"size:255;not null;uniqueIndex" json:"slug,omitempty"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Price       decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	Discount    *int            `json:"discount,omitempty"`
	Images      []string        `gorm:"type:json;serializer:json" json:"images,omitempty"`
	Sizes       []Size          `gorm:"type:json;serializer:json" json:"sizes,omitempty"`
	Colors      []Color         `gorm:"type:json;serializer:json" json:"colors,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (p Product) OffersSize(size Size) bool {
	if size == "" {
		return true
	}
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

func (p Product) OffersColor(color Color) bool {
	if color == "" {
		return true
	}
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}

func (p Product) Equal(other Product) bool {
	if p.ID != other.ID || p.Name != other.Name || p.Slug != other.Slug || p.Description != other.Description {
		return false
	}
	if !p.Price.Equal(other.Price) {
		return false
	}
	if !p.CreatedAt.Equal(other.CreatedAt) || !p.UpdatedAt.Equal(other.UpdatedAt) {
		return false
	}
	if (p.Discount == nil) != (other.Discount == nil) {
		return false
	}
	if p.Discount != nil && *p.Discount != *other.Discount {
		return false
	}
	return equalSlices(p.Images, other.Images) && equalSlices(p.Sizes, other.Sizes) && equalSlices(p.Colors, other.Colors)
}

func equalSlices[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
