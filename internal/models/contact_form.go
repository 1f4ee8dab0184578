package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactForm es una consulta enviada por un cliente; inmutable tras el alta
type ContactForm struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name    string             `json:"name" bson:"name"`
	Email   string             `json:"email" bson:"email"`
	Message string             `json:"message" bson:"message"`
}

type ContactFormInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}
