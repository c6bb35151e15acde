package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/JekaTruck/Jeka-Truck/database"
	"github.com/JekaTruck/Jeka-Truck/models"
)

const (
	brandsKey     = "brands"
	categoriesKey = "categories"
)

// LookupRepository manages the selectable brand and category sets backing the
// admin product form. Stored as JSON string arrays; the built-in defaults
// apply until a set is first extended.
type LookupRepository struct {
	kv database.KV
}

func NewLookupRepository(kv database.KV) *LookupRepository {
	return &LookupRepository{kv: kv}
}

func (r *LookupRepository) Brands(ctx context.Context) []string {
	return r.load(ctx, brandsKey, models.DefaultBrands)
}

func (r *LookupRepository) Categories(ctx context.Context) []string {
	return r.load(ctx, categoriesKey, models.DefaultCategories)
}

// AddBrand appends a brand to the stored set and returns the updated set.
// Blank and duplicate values are ignored.
func (r *LookupRepository) AddBrand(ctx context.Context, name string) ([]string, error) {
	return r.add(ctx, brandsKey, models.DefaultBrands, name)
}

func (r *LookupRepository) AddCategory(ctx context.Context, name string) ([]string, error) {
	return r.add(ctx, categoriesKey, models.DefaultCategories, name)
}

func (r *LookupRepository) load(ctx context.Context, key string, defaults []string) []string {
	raw, err := r.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, database.ErrNoKey) {
			zap.L().Warn("failed to read lookup set, using defaults", zap.String("key", key), zap.Error(err))
		}
		return append([]string(nil), defaults...)
	}

	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		zap.L().Warn("corrupt lookup set, using defaults", zap.String("key", key), zap.Error(err))
		return append([]string(nil), defaults...)
	}
	return values
}

func (r *LookupRepository) add(ctx context.Context, key string, defaults []string, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	values := r.load(ctx, key, defaults)
	if name == "" {
		return values, nil
	}
	for _, v := range values {
		if v == name {
			return values, nil
		}
	}

	values = append(values, name)
	data, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	if err := r.kv.Set(ctx, key, string(data)); err != nil {
		return nil, err
	}
	return values, nil
}
