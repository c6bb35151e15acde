package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JekaTruck/Jeka-Truck/models"
	"github.com/JekaTruck/Jeka-Truck/repository"
)

// CatalogService is the catalog surface the controllers depend on.
type CatalogService interface {
	Search(ctx context.Context, query string, filters models.SearchFilters) ([]models.Product, error)
	AdminSearch(ctx context.Context, term, category string) ([]models.Product, error)
	Get(ctx context.Context, id string) (models.Product, error)
	Create(ctx context.Context, product models.Product) (models.Product, error)
	Update(ctx context.Context, id string, patch models.ProductPatch) (models.Product, error)
	Delete(ctx context.Context, id string) error
}

// ProductController serves the storefront read API.
type ProductController struct {
	catalog CatalogService
}

func NewProductController(catalog CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// GetProducts lists the catalog narrowed by the query parameters
// q, brand, category, minPrice, maxPrice, vehicle and inStock.
func (pc *ProductController) GetProducts(c *gin.Context) {
	filters := models.SearchFilters{
		Brand:    c.Query("brand"),
		Category: c.Query("category"),
		Vehicle:  c.Query("vehicle"),
	}

	if raw := c.Query("minPrice"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid minPrice"})
			return
		}
		filters.MinPrice = &min
	}
	if raw := c.Query("maxPrice"); raw != "" {
		max, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maxPrice"})
			return
		}
		filters.MaxPrice = &max
	}
	if raw := c.Query("inStock"); raw != "" {
		inStock, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inStock"})
			return
		}
		filters.InStockOnly = inStock
	}

	products, err := pc.catalog.Search(c.Request.Context(), c.Query("q"), filters)
	if err != nil {
		zap.L().Error("Error searching products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetProductByID returns a single product with its discount percentage.
func (pc *ProductController) GetProductByID(c *gin.Context) {
	id := c.Param("id")

	product, err := pc.catalog.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		zap.L().Error("Error fetching product", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product":         product,
		"discountPercent": product.DiscountPercent(),
	})
}
