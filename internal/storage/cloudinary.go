package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// MediaStore abstrae el almacén externo de imágenes de producto
type MediaStore interface {
	Upload(ctx context.Context, file *multipart.FileHeader, folder string) (string, error)
	Destroy(ctx context.Context, publicID string) error
}

// CloudinaryStore implementa MediaStore sobre Cloudinary
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStore(cloudinaryURL string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, err
	}
	return &CloudinaryStore{cld: cld}, nil
}

// Upload sube el archivo a la carpeta indicada y devuelve la URL pública
func (s *CloudinaryStore) Upload(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	result, err := s.cld.Upload.Upload(ctx, f, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", err
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", result.Error.Message)
	}

	return result.SecureURL, nil
}

// Destroy elimina el recurso remoto identificado por su public ID
func (s *CloudinaryStore) Destroy(ctx context.Context, publicID string) error {
	result, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return err
	}
	if result.Error.Message != "" {
		return fmt.Errorf("cloudinary destroy: %s", result.Error.Message)
	}

	return nil
}

// PublicIDFromURL deriva el public ID a partir de la URL almacenada:
// último segmento de la ruta, cortado en el primer punto
func PublicIDFromURL(rawURL string) string {
	parts := strings.Split(rawURL, "/")
	base := parts[len(parts)-1]
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	return base
}
