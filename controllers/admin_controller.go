package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/JekaTruck/Jeka-Truck/models"
	"github.com/JekaTruck/Jeka-Truck/repository"
)

var validate = validator.New()

// LookupService manages the selectable brand/category sets of the admin form.
type LookupService interface {
	Brands(ctx context.Context) []string
	Categories(ctx context.Context) []string
	AddBrand(ctx context.Context, name string) ([]string, error)
	AddCategory(ctx context.Context, name string) ([]string, error)
}

// CreateProductRequest defines the expected structure for creating a product.
type CreateProductRequest struct {
	Code               string            `json:"code" validate:"required"`
	Name               string            `json:"name" validate:"required"`
	Brand              string            `json:"brand" validate:"required"`
	Category           string            `json:"category" validate:"required"`
	Subcategory        string            `json:"subcategory"`
	Description        string            `json:"description" validate:"required"`
	Specifications     map[string]string `json:"specifications"`
	CompatibleVehicles []string          `json:"compatibleVehicles"`
	Price              float64           `json:"price" validate:"gte=0"`
	OriginalPrice      *float64          `json:"originalPrice"`
	Stock              int               `json:"stock" validate:"gte=0"`
	Images             []string          `json:"images"`
	Tags               []string          `json:"tags"`
	IsOEM              bool              `json:"isOEM"`
	Warranty           string            `json:"warranty"`
}

func (r CreateProductRequest) toProduct() models.Product {
	return models.Product{
		Code:               r.Code,
		Name:               r.Name,
		Brand:              r.Brand,
		Category:           r.Category,
		Subcategory:        r.Subcategory,
		Description:        r.Description,
		Specifications:     r.Specifications,
		CompatibleVehicles: r.CompatibleVehicles,
		Price:              r.Price,
		OriginalPrice:      r.OriginalPrice,
		Stock:              r.Stock,
		Images:             r.Images,
		Tags:               r.Tags,
		IsOEM:              r.IsOEM,
		Warranty:           r.Warranty,
	}
}

// AdminController serves the authenticated CRUD API.
type AdminController struct {
	catalog CatalogService
	lookups LookupService
}

func NewAdminController(catalog CatalogService, lookups LookupService) *AdminController {
	return &AdminController{catalog: catalog, lookups: lookups}
}

// ListProducts lists the catalog narrowed by the admin filter:
// name/code/brand substring plus exact category.
func (ac *AdminController) ListProducts(c *gin.Context) {
	products, err := ac.catalog.AdminSearch(c.Request.Context(), c.Query("q"), c.Query("category"))
	if err != nil {
		zap.L().Error("Error listing products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// CreateProduct validates the payload and appends a product with a freshly
// assigned identifier.
func (ac *AdminController) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := ac.catalog.Create(c.Request.Context(), req.toProduct())
	if err != nil {
		zap.L().Error("Error creating product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	zap.L().Info("Product created", zap.String("id", product.ID), zap.String("code", product.Code))
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// UpdateProduct applies a partial update to an existing product.
func (ac *AdminController) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var patch models.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}
	if patch.Price != nil && *patch.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be non-negative"})
		return
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stock must be non-negative"})
		return
	}

	product, err := ac.catalog.Update(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		zap.L().Error("Error updating product", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// DeleteProduct removes a product. Deletion is immediate and irreversible;
// confirming it is the client's job. Unknown IDs are a no-op.
func (ac *AdminController) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if err := ac.catalog.Delete(c.Request.Context(), id); err != nil {
		zap.L().Error("Error deleting product", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	zap.L().Info("Product deleted", zap.String("id", id))
	c.Status(http.StatusNoContent)
}

type lookupRequest struct {
	Name string `json:"name" binding:"required"`
}

func (ac *AdminController) GetBrands(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"brands": ac.lookups.Brands(c.Request.Context())})
}

func (ac *AdminController) AddBrand(c *gin.Context) {
	var req lookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	brands, err := ac.lookups.AddBrand(c.Request.Context(), req.Name)
	if err != nil {
		zap.L().Error("Error adding brand", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add brand"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"brands": brands})
}

func (ac *AdminController) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": ac.lookups.Categories(c.Request.Context())})
}

func (ac *AdminController) AddCategory(c *gin.Context) {
	var req lookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	categories, err := ac.lookups.AddCategory(c.Request.Context(), req.Name)
	if err != nil {
		zap.L().Error("Error adding category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
