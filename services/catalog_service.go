package services

import (
	"context"

	"github.com/JekaTruck/Jeka-Truck/models"
	"github.com/JekaTruck/Jeka-Truck/repository"
)

// CatalogService composes the catalog repository with the filter engine for
// the storefront and admin surfaces.
type CatalogService struct {
	catalog *repository.CatalogRepository
}

func NewCatalogService(catalog *repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// Search runs the storefront filter pipeline over the current catalog.
func (s *CatalogService) Search(ctx context.Context, query string, filters models.SearchFilters) ([]models.Product, error) {
	return FilterProducts(s.catalog.Load(ctx), query, filters), nil
}

// AdminSearch runs the narrower admin listing filter.
func (s *CatalogService) AdminSearch(ctx context.Context, term, category string) ([]models.Product, error) {
	return AdminFilterProducts(s.catalog.Load(ctx), term, category), nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (models.Product, error) {
	return s.catalog.Get(ctx, id)
}

func (s *CatalogService) Create(ctx context.Context, product models.Product) (models.Product, error) {
	return s.catalog.Add(ctx, product)
}

func (s *CatalogService) Update(ctx context.Context, id string, patch models.ProductPatch) (models.Product, error) {
	return s.catalog.Update(ctx, id, patch)
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	return s.catalog.Delete(ctx, id)
}
