package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"agro-catalog/internal/models"
	"agro-catalog/internal/repository"
)

// ContactStore no expone actualización: las consultas son inmutables
type ContactStore interface {
	Insert(ctx context.Context, form *models.ContactForm) error
	FindByID(ctx context.Context, id string) (*models.ContactForm, error)
	FindAll(ctx context.Context) ([]models.ContactForm, error)
	Delete(ctx context.Context, id string) error
}

type ContactHandler struct {
	store ContactStore
}

func NewContactHandler(store ContactStore) *ContactHandler {
	return &ContactHandler{store: store}
}

// SubmitInquiry registra una consulta del formulario de contacto
func (h *ContactHandler) SubmitInquiry(c *gin.Context) {
	var in models.ContactFormInput
	if err := c.ShouldBindJSON(&in); err != nil {
		validationError(c, err)
		return
	}

	inquiry := models.ContactForm{
		Name:    in.Name,
		Email:   in.Email,
		Message: in.Message,
	}
	if err := h.store.Insert(c.Request.Context(), &inquiry); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Inquiry submitted successfully",
		"inquiry": inquiry,
	})
}

// ListInquiries devuelve todas las consultas
func (h *ContactHandler) ListInquiries(c *gin.Context) {
	inquiries, err := h.store.FindAll(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	if inquiries == nil {
		inquiries = []models.ContactForm{}
	}

	c.JSON(http.StatusOK, inquiries)
}

// InquiryDetails devuelve una consulta por ID
func (h *ContactHandler) InquiryDetails(c *gin.Context) {
	inquiry, err := h.store.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Inquiry not found"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, inquiry)
}

// DeleteInquiry elimina definitivamente la consulta
func (h *ContactHandler) DeleteInquiry(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if _, err := h.store.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Inquiry not found"})
			return
		}
		serverError(c, err)
		return
	}

	if err := h.store.Delete(ctx, id); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inquiry deleted successfully"})
}
