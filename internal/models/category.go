package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category es una etiqueta de catálogo; Product.category la referencia
// por nombre, no por ID
type Category struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
}

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CategoryUpdateInput: campo vacío = conservar valor
type CategoryUpdateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
