package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Mensajes por campo de entrada, alineados con los que espera el cliente
var fieldMessages = map[string]string{
	"ProductInput.Name":               "Product name is required",
	"ProductInput.Category":           "Category is required",
	"ProductInput.Description":        "Description is required",
	"ProductInput.Features":           "Features are required",
	"ProductInput.Benefits":           "Benefits are required",
	"ProductInput.Composition":        "Composition is required",
	"ProductInput.TargetCrops":        "Target crops are required",
	"ProductInput.Dosage":             "Dosage is required",
	"ProductInput.ApplicationMethods": "Application methods are required",
	"ProductInput.Precautions":        "Precautions are required",
	"CategoryInput.Name":              "Category name is required",
	"ContactFormInput.Name":           "Name is required",
	"ContactFormInput.Email":          "Valid email is required",
	"ContactFormInput.Message":        "Message is required",
}

// Messages aplana un error de binding en los mensajes por campo que se
// devuelven al cliente con estado 400
func Messages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}
	return msgs
}

func message(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.StructNamespace()]; ok {
		return msg
	}
	if fe.Tag() == "email" {
		return "Valid email is required"
	}
	return fe.Field() + " is required"
}
