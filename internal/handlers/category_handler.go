package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"agro-catalog/internal/models"
	"agro-catalog/internal/repository"
)

// CategoryStore es la vista del repositorio que necesita el handler
type CategoryStore interface {
	Insert(ctx context.Context, category *models.Category) error
	FindByID(ctx context.Context, id string) (*models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	FindAll(ctx context.Context) ([]models.Category, error)
	Replace(ctx context.Context, id string, category *models.Category) error
	Delete(ctx context.Context, id string) error
}

type CategoryHandler struct {
	store CategoryStore
}

func NewCategoryHandler(store CategoryStore) *CategoryHandler {
	return &CategoryHandler{store: store}
}

// AddCategory crea una categoría nueva; rechaza nombres ya existentes.
// El chequeo de duplicados no es atómico respecto al insert.
func (h *CategoryHandler) AddCategory(c *gin.Context) {
	var in models.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		validationError(c, err)
		return
	}

	ctx := c.Request.Context()

	_, err := h.store.FindByName(ctx, in.Name)
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Category already exists"})
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		serverError(c, err)
		return
	}

	category := models.Category{
		Name:        in.Name,
		Description: in.Description,
	}
	if err := h.store.Insert(ctx, &category); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Category added successfully",
		"category": category,
	})
}

// UpdateCategory reemplaza solo los campos presentes en el cuerpo.
// El nombre no se re-chequea contra duplicados.
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var in models.CategoryUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		validationError(c, err)
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")

	category, err := h.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}
		serverError(c, err)
		return
	}

	if in.Name != "" {
		category.Name = in.Name
	}
	if in.Description != "" {
		category.Description = in.Description
	}

	if err := h.store.Replace(ctx, id, category); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Category updated successfully",
		"category": category,
	})
}

// DeleteCategory elimina definitivamente la categoría
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if _, err := h.store.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}
		serverError(c, err)
		return
	}

	if err := h.store.Delete(ctx, id); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// ListCategories devuelve todas las categorías en orden de almacenamiento
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.store.FindAll(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	c.JSON(http.StatusOK, categories)
}

// CategoryDetails devuelve una categoría por ID
func (h *CategoryHandler) CategoryDetails(c *gin.Context) {
	category, err := h.store.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}
