package handlers

import (
	"context"
	"mime/multipart"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"agro-catalog/internal/models"
	"agro-catalog/internal/repository"
)

// Fakes en memoria de los stores y del almacén de medios. Conservan el
// orden de inserción, igual que las colecciones reales sin índices.

type fakeProductStore struct {
	products []models.Product
}

func (s *fakeProductStore) Insert(_ context.Context, product *models.Product) error {
	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now()
	s.products = append(s.products, *product)
	return nil
}

func (s *fakeProductStore) FindByID(_ context.Context, id string) (*models.Product, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	for _, p := range s.products {
		if p.ID.Hex() == id {
			found := p
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeProductStore) FindAll(_ context.Context) ([]models.Product, error) {
	return s.products, nil
}

func (s *fakeProductStore) Replace(_ context.Context, id string, product *models.Product) error {
	for i, p := range s.products {
		if p.ID.Hex() == id {
			s.products[i] = *product
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *fakeProductStore) Delete(_ context.Context, id string) error {
	for i, p := range s.products {
		if p.ID.Hex() == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeCategoryStore struct {
	categories []models.Category
}

func (s *fakeCategoryStore) Insert(_ context.Context, category *models.Category) error {
	category.ID = primitive.NewObjectID()
	s.categories = append(s.categories, *category)
	return nil
}

func (s *fakeCategoryStore) FindByID(_ context.Context, id string) (*models.Category, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	for _, c := range s.categories {
		if c.ID.Hex() == id {
			found := c
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeCategoryStore) FindByName(_ context.Context, name string) (*models.Category, error) {
	for _, c := range s.categories {
		if c.Name == name {
			found := c
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeCategoryStore) FindAll(_ context.Context) ([]models.Category, error) {
	return s.categories, nil
}

func (s *fakeCategoryStore) Replace(_ context.Context, id string, category *models.Category) error {
	for i, c := range s.categories {
		if c.ID.Hex() == id {
			s.categories[i] = *category
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *fakeCategoryStore) Delete(_ context.Context, id string) error {
	for i, c := range s.categories {
		if c.ID.Hex() == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeContactStore struct {
	inquiries []models.ContactForm
}

func (s *fakeContactStore) Insert(_ context.Context, form *models.ContactForm) error {
	form.ID = primitive.NewObjectID()
	s.inquiries = append(s.inquiries, *form)
	return nil
}

func (s *fakeContactStore) FindByID(_ context.Context, id string) (*models.ContactForm, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	for _, f := range s.inquiries {
		if f.ID.Hex() == id {
			found := f
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeContactStore) FindAll(_ context.Context) ([]models.ContactForm, error) {
	return s.inquiries, nil
}

func (s *fakeContactStore) Delete(_ context.Context, id string) error {
	for i, f := range s.inquiries {
		if f.ID.Hex() == id {
			s.inquiries = append(s.inquiries[:i], s.inquiries[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// fakeMediaStore registra las operaciones remotas en orden
type fakeMediaStore struct {
	ops       []string
	uploadURL string
}

func (m *fakeMediaStore) Upload(_ context.Context, file *multipart.FileHeader, folder string) (string, error) {
	m.ops = append(m.ops, "upload:"+folder+"/"+file.Filename)
	return m.uploadURL, nil
}

func (m *fakeMediaStore) Destroy(_ context.Context, publicID string) error {
	m.ops = append(m.ops, "destroy:"+publicID)
	return nil
}
