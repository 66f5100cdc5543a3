package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService defines the interface for profile media operations.
type StorageService interface {
	UploadImage(ctx context.Context, r io.Reader, folder, publicID string) (string, error)
	DeleteImage(ctx context.Context, publicID string) error
}

// CloudinaryStorageService implements StorageService using Cloudinary.
type CloudinaryStorageService struct {
	client *cloudinary.Cloudinary
}

// NewStorageService creates a StorageService backed by the given Cloudinary client.
func NewStorageService(client *cloudinary.Cloudinary) StorageService {
	return &CloudinaryStorageService{client: client}
}

// UploadImage uploads an image and returns its delivery URL.
func (s *CloudinaryStorageService) UploadImage(ctx context.Context, r io.Reader, folder, publicID string) (string, error) {
	overwrite := true
	resp, err := s.client.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:    folder,
		PublicID:  publicID,
		Overwrite: &overwrite,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload failed: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}

// DeleteImage removes a previously uploaded image.
func (s *CloudinaryStorageService) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy failed: %w", err)
	}
	return nil
}
