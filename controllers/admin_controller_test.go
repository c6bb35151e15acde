package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JekaTruck/Jeka-Truck/database"
	"github.com/JekaTruck/Jeka-Truck/middleware"
	"github.com/JekaTruck/Jeka-Truck/models"
	"github.com/JekaTruck/Jeka-Truck/repository"
	"github.com/JekaTruck/Jeka-Truck/services"
)

type adminTestEnv struct {
	router      *gin.Engine
	catalog     *services.CatalogService
	adminToken  string
	editorToken string
}

func newAdminEnv(t *testing.T) *adminTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv := database.NewMemoryKV()
	catalogRepo := repository.NewCatalogRepository(kv)
	lookupRepo := repository.NewLookupRepository(kv)
	tokens := services.NewTokenService("test-secret")
	catalog := services.NewCatalogService(catalogRepo)
	controller := NewAdminController(catalog, lookupRepo)

	router := gin.New()
	admin := router.Group("/admin", middleware.RequireAuth(tokens))
	admin.GET("/products", controller.ListProducts)
	admin.POST("/products", controller.CreateProduct)
	admin.PUT("/products/:id", controller.UpdateProduct)
	admin.DELETE("/products/:id", middleware.RequireRole(models.RoleAdmin), controller.DeleteProduct)
	admin.GET("/brands", controller.GetBrands)
	admin.POST("/brands", controller.AddBrand)
	admin.GET("/categories", controller.GetCategories)
	admin.POST("/categories", controller.AddCategory)

	adminToken, err := tokens.GenerateToken(models.User{ID: "1", Username: "admin", Role: models.RoleAdmin})
	require.NoError(t, err)
	editorToken, err := tokens.GenerateToken(models.User{ID: "2", Username: "editor", Role: models.RoleEditor})
	require.NoError(t, err)

	return &adminTestEnv{
		router:      router,
		catalog:     catalog,
		adminToken:  adminToken,
		editorToken: editorToken,
	}
}

func (e *adminTestEnv) do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, req)
	return recorder
}

const validProductBody = `{
	"code": "RAD-777-FIA",
	"name": "Radiador Valeo",
	"brand": "Valeo",
	"category": "Arrefecimento",
	"description": "Radiador de alumínio para linha Fiat.",
	"price": 449.90,
	"stock": 4
}`

func TestAdminRequiresToken(t *testing.T) {
	env := newAdminEnv(t)

	recorder := env.do(http.MethodGet, "/admin/products", "", "")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAdminCreateProduct(t *testing.T) {
	env := newAdminEnv(t)

	recorder := env.do(http.MethodPost, "/admin/products", env.editorToken, validProductBody)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var body struct {
		Product models.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Product.ID)
	assert.Equal(t, "Radiador Valeo", body.Product.Name)

	list := env.do(http.MethodGet, "/admin/products?q=radiador", env.editorToken, "")
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), body.Product.ID)
}

func TestAdminCreateProductValidation(t *testing.T) {
	env := newAdminEnv(t)

	// Missing name, brand, category and description.
	recorder := env.do(http.MethodPost, "/admin/products", env.adminToken, `{"code":"X-1","price":10}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAdminUpdateProduct(t *testing.T) {
	env := newAdminEnv(t)

	created := env.do(http.MethodPost, "/admin/products", env.adminToken, validProductBody)
	require.Equal(t, http.StatusCreated, created.Code)
	var createdBody struct {
		Product models.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &createdBody))

	recorder := env.do(http.MethodPut, "/admin/products/"+createdBody.Product.ID, env.editorToken, `{"stock":5}`)

	require.Equal(t, http.StatusOK, recorder.Code)
	var updatedBody struct {
		Product models.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &updatedBody))
	assert.Equal(t, 5, updatedBody.Product.Stock)
	assert.Equal(t, createdBody.Product.Name, updatedBody.Product.Name)
	assert.Equal(t, createdBody.Product.Price, updatedBody.Product.Price)
}

func TestAdminUpdateUnknownProduct(t *testing.T) {
	env := newAdminEnv(t)

	recorder := env.do(http.MethodPut, "/admin/products/no-such-id", env.adminToken, `{"stock":5}`)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestAdminUpdateRejectsNegativeValues(t *testing.T) {
	env := newAdminEnv(t)

	recorder := env.do(http.MethodPut, "/admin/products/1", env.adminToken, `{"price":-1}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAdminDeleteProduct(t *testing.T) {
	env := newAdminEnv(t)

	created := env.do(http.MethodPost, "/admin/products", env.adminToken, validProductBody)
	require.Equal(t, http.StatusCreated, created.Code)
	var createdBody struct {
		Product models.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &createdBody))

	recorder := env.do(http.MethodDelete, "/admin/products/"+createdBody.Product.ID, env.adminToken, "")
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	list := env.do(http.MethodGet, "/admin/products", env.adminToken, "")
	assert.NotContains(t, list.Body.String(), createdBody.Product.ID)

	// Deleting again is a no-op.
	again := env.do(http.MethodDelete, "/admin/products/"+createdBody.Product.ID, env.adminToken, "")
	assert.Equal(t, http.StatusNoContent, again.Code)
}

func TestAdminDeleteRequiresAdminRole(t *testing.T) {
	env := newAdminEnv(t)

	recorder := env.do(http.MethodDelete, "/admin/products/1", env.editorToken, "")

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestAdminBrandLookups(t *testing.T) {
	env := newAdminEnv(t)

	brands := env.do(http.MethodGet, "/admin/brands", env.editorToken, "")
	require.Equal(t, http.StatusOK, brands.Code)
	assert.Contains(t, brands.Body.String(), "Bosch")

	added := env.do(http.MethodPost, "/admin/brands", env.editorToken, `{"name":"Valeo"}`)
	require.Equal(t, http.StatusOK, added.Code)
	assert.Contains(t, added.Body.String(), "Valeo")

	categories := env.do(http.MethodGet, "/admin/categories", env.editorToken, "")
	require.Equal(t, http.StatusOK, categories.Code)
	assert.Contains(t, categories.Body.String(), "Filtros")
}
