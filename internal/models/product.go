package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product representa un producto agrícola del catálogo
type Product struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name               string             `json:"name" bson:"name"`
	Category           string             `json:"category" bson:"category"`
	Description        string             `json:"description" bson:"description"`
	Features           []string           `json:"features" bson:"features"`
	Benefits           []string           `json:"benefits" bson:"benefits"`
	Composition        string             `json:"composition" bson:"composition"`
	TargetCrops        []string           `json:"targetCrops" bson:"targetCrops"`
	Dosage             string             `json:"dosage" bson:"dosage"`
	Image              string             `json:"image" bson:"image"`
	ApplicationMethods string             `json:"applicationMethods" bson:"applicationMethods"`
	Precautions        []string           `json:"precautions" bson:"precautions"`
	CreatedAt          time.Time          `json:"createdAt" bson:"createdAt"`
}

// ProductInput es el formulario multipart de alta; los campos de lista
// (features, benefits, targetCrops, precautions) llegan separados por comas
type ProductInput struct {
	Name               string `form:"name" binding:"required"`
	Category           string `form:"category" binding:"required"`
	Description        string `form:"description" binding:"required"`
	Features           string `form:"features" binding:"required"`
	Benefits           string `form:"benefits" binding:"required"`
	Composition        string `form:"composition" binding:"required"`
	TargetCrops        string `form:"targetCrops" binding:"required"`
	Dosage             string `form:"dosage" binding:"required"`
	ApplicationMethods string `form:"applicationMethods" binding:"required"`
	Precautions        string `form:"precautions" binding:"required"`
}

// ProductUpdateInput admite actualización parcial: campo vacío = conservar valor
type ProductUpdateInput struct {
	Name               string `form:"name"`
	Category           string `form:"category"`
	Description        string `form:"description"`
	Features           string `form:"features"`
	Benefits           string `form:"benefits"`
	Composition        string `form:"composition"`
	TargetCrops        string `form:"targetCrops"`
	Dosage             string `form:"dosage"`
	ApplicationMethods string `form:"applicationMethods"`
	Precautions        string `form:"precautions"`
}
