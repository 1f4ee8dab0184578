package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agro-catalog/internal/validation"
)

// serverError responde 500 con el fallo subyacente en el cuerpo
func serverError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"message": "Server Error",
		"error":   err.Error(),
	})
}

// validationError responde 400 con los mensajes por campo
func validationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": validation.Messages(err)})
}
