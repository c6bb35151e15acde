package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/JekaTruck/Jeka-Truck/controllers"
	"github.com/JekaTruck/Jeka-Truck/middleware"
	"github.com/JekaTruck/Jeka-Truck/models"
	"github.com/JekaTruck/Jeka-Truck/services"
)

// RegisterRoutes wires the storefront, auth and admin route groups.
func RegisterRoutes(
	r *gin.Engine,
	products *controllers.ProductController,
	admin *controllers.AdminController,
	auth *controllers.AuthController,
	tokens *services.TokenService,
) {
	productRoutes := r.Group("/products")
	{
		productRoutes.GET("", products.GetProducts)
		productRoutes.GET("/:id", products.GetProductByID)
	}

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/login", auth.Login)

		authed := authRoutes.Group("", middleware.RequireAuth(tokens))
		{
			authed.POST("/logout", auth.Logout)
			authed.GET("/me", auth.Me)
		}
	}

	adminRoutes := r.Group("/admin", middleware.RequireAuth(tokens))
	{
		adminRoutes.GET("/products", admin.ListProducts)
		adminRoutes.POST("/products", admin.CreateProduct)
		adminRoutes.PUT("/products/:id", admin.UpdateProduct)
		adminRoutes.DELETE("/products/:id", middleware.RequireRole(models.RoleAdmin), admin.DeleteProduct)

		adminRoutes.GET("/brands", admin.GetBrands)
		adminRoutes.POST("/brands", admin.AddBrand)
		adminRoutes.GET("/categories", admin.GetCategories)
		adminRoutes.POST("/categories", admin.AddCategory)
	}
}
