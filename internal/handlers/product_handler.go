package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"agro-catalog/internal/models"
	"agro-catalog/internal/repository"
	"agro-catalog/internal/storage"
)

// mediaFolder es la carpeta lógica del almacén remoto para las
// imágenes de producto
const mediaFolder = "products"

// ProductStore es la vista del repositorio que necesita el handler
type ProductStore interface {
	Insert(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	Replace(ctx context.Context, id string, product *models.Product) error
	Delete(ctx context.Context, id string) error
}

type ProductHandler struct {
	store ProductStore
	media storage.MediaStore
}

func NewProductHandler(store ProductStore, media storage.MediaStore) *ProductHandler {
	return &ProductHandler{
		store: store,
		media: media,
	}
}

// splitList corta un campo separado por comas en una lista; sin
// recortes ni filtrado de vacíos, split literal
func splitList(raw string) []string {
	return strings.Split(raw, ",")
}

// AddProduct crea un producto a partir del formulario multipart.
// Sube la imagen primero: si el documento luego no se persiste, el
// recurso remoto queda huérfano (sin transacción entre ambos).
func (h *ProductHandler) AddProduct(c *gin.Context) {
	var in models.ProductInput
	if err := c.ShouldBind(&in); err != nil {
		validationError(c, err)
		return
	}

	ctx := c.Request.Context()

	file, err := c.FormFile("image")
	if err != nil {
		// sin campo image no hay error de validación definido: el
		// fallo del form sale como Server Error
		serverError(c, err)
		return
	}

	imageURL, err := h.media.Upload(ctx, file, mediaFolder)
	if err != nil {
		serverError(c, err)
		return
	}

	product := models.Product{
		Name:               in.Name,
		Category:           in.Category,
		Description:        in.Description,
		Features:           splitList(in.Features),
		Benefits:           splitList(in.Benefits),
		Composition:        in.Composition,
		TargetCrops:        splitList(in.TargetCrops),
		Dosage:             in.Dosage,
		Image:              imageURL,
		ApplicationMethods: in.ApplicationMethods,
		Precautions:        splitList(in.Precautions),
	}
	if err := h.store.Insert(ctx, &product); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product added successfully",
		"product": product,
	})
}

// UpdateProduct actualiza campo a campo; campo vacío conserva el valor
// previo. Si llega imagen nueva: destruir la anterior, subir la nueva
// y recién entonces persistir, en ese orden.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var in models.ProductUpdateInput
	if err := c.ShouldBind(&in); err != nil {
		validationError(c, err)
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")

	product, err := h.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		serverError(c, err)
		return
	}

	if file, ferr := c.FormFile("image"); ferr == nil {
		publicID := mediaFolder + "/" + storage.PublicIDFromURL(product.Image)
		if err := h.media.Destroy(ctx, publicID); err != nil {
			serverError(c, err)
			return
		}

		imageURL, err := h.media.Upload(ctx, file, mediaFolder)
		if err != nil {
			serverError(c, err)
			return
		}
		product.Image = imageURL
	}

	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Category != "" {
		product.Category = in.Category
	}
	if in.Description != "" {
		product.Description = in.Description
	}
	if in.Features != "" {
		product.Features = splitList(in.Features)
	}
	if in.Benefits != "" {
		product.Benefits = splitList(in.Benefits)
	}
	if in.Composition != "" {
		product.Composition = in.Composition
	}
	if in.TargetCrops != "" {
		product.TargetCrops = splitList(in.TargetCrops)
	}
	if in.Dosage != "" {
		product.Dosage = in.Dosage
	}
	if in.ApplicationMethods != "" {
		product.ApplicationMethods = in.ApplicationMethods
	}
	if in.Precautions != "" {
		product.Precautions = splitList(in.Precautions)
	}

	if err := h.store.Replace(ctx, id, product); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": product,
	})
}

// DeleteProduct destruye el recurso remoto y luego borra el documento;
// si el borrado del documento falla, la imagen remota ya no existe
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	product, err := h.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		serverError(c, err)
		return
	}

	publicID := mediaFolder + "/" + storage.PublicIDFromURL(product.Image)
	if err := h.media.Destroy(ctx, publicID); err != nil {
		serverError(c, err)
		return
	}

	if err := h.store.Delete(ctx, id); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// ListProducts devuelve todos los productos en orden de almacenamiento
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.store.FindAll(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, products)
}

// ProductDetails devuelve un producto por ID
func (h *ProductHandler) ProductDetails(c *gin.Context) {
	product, err := h.store.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}
