package services

import (
	"strings"

	"github.com/JekaTruck/Jeka-Truck/models"
)

// FilterProducts narrows the product list by a free-text query and a
// structured filter set. Pure function: the input slice is never mutated and
// result order follows input order. All active criteria AND-combine.
func FilterProducts(products []models.Product, query string, filters models.SearchFilters) []models.Product {
	filtered := products

	if query != "" {
		filtered = keep(filtered, func(p models.Product) bool {
			return matchesQuery(p, query)
		})
	}

	if filters.Brand != "" {
		filtered = keep(filtered, func(p models.Product) bool {
			return p.Brand == filters.Brand
		})
	}

	if filters.Category != "" {
		filtered = keep(filtered, func(p models.Product) bool {
			return p.Category == filters.Category
		})
	}

	// Half-open price interval: [min, max), with max optionally unbounded.
	if filters.MinPrice != nil {
		min := *filters.MinPrice
		filtered = keep(filtered, func(p models.Product) bool {
			return p.Price >= min
		})
	}
	if filters.MaxPrice != nil {
		max := *filters.MaxPrice
		filtered = keep(filtered, func(p models.Product) bool {
			return p.Price < max
		})
	}

	if filters.Vehicle != "" {
		filtered = keep(filtered, func(p models.Product) bool {
			return matchesVehicle(p, filters.Vehicle)
		})
	}

	if filters.InStockOnly {
		filtered = keep(filtered, models.Product.InStock)
	}

	return filtered
}

// AdminFilterProducts is the narrower admin listing filter: name/code/brand
// substring match plus an exact category match.
func AdminFilterProducts(products []models.Product, term, category string) []models.Product {
	filtered := products

	if term != "" {
		q := strings.ToLower(term)
		filtered = keep(filtered, func(p models.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), q) ||
				strings.Contains(strings.ToLower(p.Code), q) ||
				strings.Contains(strings.ToLower(p.Brand), q)
		})
	}

	if category != "" {
		filtered = keep(filtered, func(p models.Product) bool {
			return p.Category == category
		})
	}

	return filtered
}

func matchesQuery(p models.Product, query string) bool {
	q := strings.ToLower(query)

	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Code), q) ||
		strings.Contains(strings.ToLower(p.Brand), q) ||
		strings.Contains(strings.ToLower(p.Category), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return matchesVehicle(p, query)
}

func matchesVehicle(p models.Product, vehicle string) bool {
	v := strings.ToLower(vehicle)
	for _, cv := range p.CompatibleVehicles {
		if strings.Contains(strings.ToLower(cv), v) {
			return true
		}
	}
	return false
}

func keep(products []models.Product, pred func(models.Product) bool) []models.Product {
	kept := make([]models.Product, 0, len(products))
	for _, p := range products {
		if pred(p) {
			kept = append(kept, p)
		}
	}
	return kept
}
