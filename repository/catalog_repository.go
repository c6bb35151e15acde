package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JekaTruck/Jeka-Truck/database"
	"github.com/JekaTruck/Jeka-Truck/models"
)

const productsKey = "products"

// ErrProductNotFound signals a lookup or update against an unknown product ID.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository persists the full product collection as one JSON array
// under the "products" key. Every mutation rewrites the whole collection,
// which is fine at the catalog sizes involved (tens to low thousands).
type CatalogRepository struct {
	kv database.KV
}

func NewCatalogRepository(kv database.KV) *CatalogRepository {
	return &CatalogRepository{kv: kv}
}

// Load returns the persisted catalog, falling back to the built-in seed when
// nothing is stored or the stored value fails to parse. The fallback is NOT
// persisted: the seed only reaches storage through a later mutation.
func (r *CatalogRepository) Load(ctx context.Context) []models.Product {
	raw, err := r.kv.Get(ctx, productsKey)
	if err != nil {
		if !errors.Is(err, database.ErrNoKey) {
			zap.L().Warn("failed to read catalog, using seed data", zap.Error(err))
		}
		return models.SeedProducts()
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		zap.L().Warn("corrupt catalog data, using seed data", zap.Error(err))
		return models.SeedProducts()
	}
	return products
}

func (r *CatalogRepository) persist(ctx context.Context, products []models.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, productsKey, string(data))
}

// Get returns the product with the given ID or ErrProductNotFound.
func (r *CatalogRepository) Get(ctx context.Context, id string) (models.Product, error) {
	for _, p := range r.Load(ctx) {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Add assigns a fresh identifier, appends the product and persists the
// updated collection.
func (r *CatalogRepository) Add(ctx context.Context, product models.Product) (models.Product, error) {
	product.ID = uuid.NewString()

	products := append(r.Load(ctx), product)
	if err := r.persist(ctx, products); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// Update applies the patch to the product with the given ID and persists the
// collection. An unknown ID returns ErrProductNotFound and leaves the
// persisted collection untouched.
func (r *CatalogRepository) Update(ctx context.Context, id string, patch models.ProductPatch) (models.Product, error) {
	products := r.Load(ctx)

	for i := range products {
		if products[i].ID != id {
			continue
		}
		products[i].ApplyPatch(patch)
		if err := r.persist(ctx, products); err != nil {
			return models.Product{}, err
		}
		return products[i], nil
	}
	return models.Product{}, ErrProductNotFound
}

// Delete removes the product with the given ID. Deleting an unknown ID is a
// silent no-op; the resulting collection is persisted either way.
func (r *CatalogRepository) Delete(ctx context.Context, id string) error {
	products := r.Load(ctx)

	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return r.persist(ctx, kept)
}
