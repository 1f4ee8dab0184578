package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"agro-catalog/internal/models"
)

// ContactRepository no expone Replace: las consultas son inmutables
type ContactRepository struct {
	collection *mongo.Collection
}

func NewContactRepository(collection *mongo.Collection) *ContactRepository {
	return &ContactRepository{
		collection: collection,
	}
}

func (r *ContactRepository) Insert(ctx context.Context, form *models.ContactForm) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	form.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, form)
	return err
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*models.ContactForm, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var form models.ContactForm
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&form)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &form, nil
}

func (r *ContactRepository) FindAll(ctx context.Context) ([]models.ContactForm, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var forms []models.ContactForm
	if err = cursor.All(ctx, &forms); err != nil {
		return nil, err
	}

	return forms, nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
