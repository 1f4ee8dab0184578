package routes

import (
	"agro-catalog/internal/handlers"
	"agro-catalog/internal/repository"
	"agro-catalog/internal/storage"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func RegisterRoutes(router *gin.Engine, db *mongo.Database, media storage.MediaStore) {
	productHandler := handlers.NewProductHandler(
		repository.NewProductRepository(db.Collection("products")),
		media,
	)
	categoryHandler := handlers.NewCategoryHandler(
		repository.NewCategoryRepository(db.Collection("categories")),
	)
	contactHandler := handlers.NewContactHandler(
		repository.NewContactRepository(db.Collection("contactforms")),
	)

	products := router.Group("/api/products")
	{
		products.POST("/add", productHandler.AddProduct)
		products.PUT("/update/:id", productHandler.UpdateProduct)
		products.DELETE("/delete/:id", productHandler.DeleteProduct)
		products.GET("/list", productHandler.ListProducts)
		products.GET("/detail/:id", productHandler.ProductDetails)
	}

	categories := router.Group("/api/categories")
	{
		categories.POST("/add", categoryHandler.AddCategory)
		categories.PUT("/update/:id", categoryHandler.UpdateCategory)
		categories.DELETE("/delete/:id", categoryHandler.DeleteCategory)
		categories.GET("/list", categoryHandler.ListCategories)
		categories.GET("/detail/:id", categoryHandler.CategoryDetails)
	}

	contact := router.Group("/api/contact")
	{
		contact.POST("/submit", contactHandler.SubmitInquiry)
		contact.GET("/list", contactHandler.ListInquiries)
		contact.GET("/detail/:id", contactHandler.InquiryDetails)
		contact.DELETE("/delete/:id", contactHandler.DeleteInquiry)
	}
}
