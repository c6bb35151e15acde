package models

import "math"

// Product is a single catalog entry. The JSON field names match the persisted
// catalog layout, so a stored collection round-trips byte-compatibly.
type Product struct {
	ID                 string            `json:"id"`
	Code               string            `json:"code"`
	Name               string            `json:"name"`
	Brand              string            `json:"brand"`
	Category           string            `json:"category"`
	Subcategory        string            `json:"subcategory"`
	Description        string            `json:"description"`
	Specifications     map[string]string `json:"specifications"`
	CompatibleVehicles []string          `json:"compatibleVehicles"`
	Price              float64           `json:"price"`
	OriginalPrice      *float64          `json:"originalPrice,omitempty"`
	Stock              int               `json:"stock"`
	Images             []string          `json:"images"`
	Tags               []string          `json:"tags"`
	IsOEM              bool              `json:"isOEM"`
	Warranty           string            `json:"warranty"`
}

func (p Product) InStock() bool {
	return p.Stock > 0
}

// DiscountPercent reports the rounded percentage off the original price.
// Returns 0 unless an original price is set and exceeds the current price.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice == nil || *p.OriginalPrice <= 0 || *p.OriginalPrice <= p.Price {
		return 0
	}
	return int(math.Round((*p.OriginalPrice - p.Price) / *p.OriginalPrice * 100))
}

// ProductPatch is a partial update: one optional field per mutable Product
// attribute. Nil fields leave the prior value untouched.
type ProductPatch struct {
	Code               *string            `json:"code,omitempty"`
	Name               *string            `json:"name,omitempty"`
	Brand              *string            `json:"brand,omitempty"`
	Category           *string            `json:"category,omitempty"`
	Subcategory        *string            `json:"subcategory,omitempty"`
	Description        *string            `json:"description,omitempty"`
	Specifications     *map[string]string `json:"specifications,omitempty"`
	CompatibleVehicles *[]string          `json:"compatibleVehicles,omitempty"`
	Price              *float64           `json:"price,omitempty"`
	OriginalPrice      *float64           `json:"originalPrice,omitempty"`
	Stock              *int               `json:"stock,omitempty"`
	Images             *[]string          `json:"images,omitempty"`
	Tags               *[]string          `json:"tags,omitempty"`
	IsOEM              *bool              `json:"isOEM,omitempty"`
	Warranty           *string            `json:"warranty,omitempty"`
}

// ApplyPatch merges the patch into the product field by field.
func (p *Product) ApplyPatch(patch ProductPatch) {
	if patch.Code != nil {
		p.Code = *patch.Code
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Subcategory != nil {
		p.Subcategory = *patch.Subcategory
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Specifications != nil {
		p.Specifications = *patch.Specifications
	}
	if patch.CompatibleVehicles != nil {
		p.CompatibleVehicles = *patch.CompatibleVehicles
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.OriginalPrice != nil {
		p.OriginalPrice = patch.OriginalPrice
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Images != nil {
		p.Images = *patch.Images
	}
	if patch.Tags != nil {
		p.Tags = *patch.Tags
	}
	if patch.IsOEM != nil {
		p.IsOEM = *patch.IsOEM
	}
	if patch.Warranty != nil {
		p.Warranty = *patch.Warranty
	}
}

// SearchFilters narrows a product listing. Every field is independently
// optional; the zero value imposes no constraint. A nil MaxPrice means the
// price interval is unbounded above.
type SearchFilters struct {
	Brand       string
	Category    string
	MinPrice    *float64
	MaxPrice    *float64
	Vehicle     string
	InStockOnly bool
}
