package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JekaTruck/Jeka-Truck/database"
	"github.com/JekaTruck/Jeka-Truck/models"
)

func TestLookupDefaults(t *testing.T) {
	repo := NewLookupRepository(database.NewMemoryKV())
	ctx := context.Background()

	assert.Equal(t, models.DefaultBrands, repo.Brands(ctx))
	assert.Equal(t, models.DefaultCategories, repo.Categories(ctx))
}

func TestAddBrandPersists(t *testing.T) {
	kv := database.NewMemoryKV()
	repo := NewLookupRepository(kv)
	ctx := context.Background()

	brands, err := repo.AddBrand(ctx, "Valeo")
	require.NoError(t, err)
	assert.Equal(t, append(append([]string(nil), models.DefaultBrands...), "Valeo"), brands)

	// Survives a fresh repository over the same store.
	assert.Equal(t, brands, NewLookupRepository(kv).Brands(ctx))
}

func TestAddBrandDeduplicates(t *testing.T) {
	repo := NewLookupRepository(database.NewMemoryKV())
	ctx := context.Background()

	brands, err := repo.AddBrand(ctx, "Bosch")
	require.NoError(t, err)

	assert.Equal(t, models.DefaultBrands, brands)
}

func TestAddBrandIgnoresBlank(t *testing.T) {
	repo := NewLookupRepository(database.NewMemoryKV())
	ctx := context.Background()

	brands, err := repo.AddBrand(ctx, "   ")
	require.NoError(t, err)

	assert.Equal(t, models.DefaultBrands, brands)
}

func TestAddCategoryTrims(t *testing.T) {
	repo := NewLookupRepository(database.NewMemoryKV())
	ctx := context.Background()

	categories, err := repo.AddCategory(ctx, "  Arrefecimento ")
	require.NoError(t, err)

	assert.Contains(t, categories, "Arrefecimento")
}

func TestLookupFallsBackToDefaultsWhenCorrupt(t *testing.T) {
	kv := database.NewMemoryKV()
	repo := NewLookupRepository(kv)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, brandsKey, "not an array"))

	assert.Equal(t, models.DefaultBrands, repo.Brands(ctx))
}
