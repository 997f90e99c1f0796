package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Cloudinary stores documents in a Cloudinary folder.
type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinary(cloudinaryURL, folder string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &Cloudinary{cld: cld, folder: strings.Trim(folder, "/")}, nil
}

func (s *Cloudinary) Save(ctx context.Context, key string, r io.Reader, _ string) (string, error) {
	key, err := cleanKey(key)
	if err != nil {
		return "", err
	}

	res, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID:     publicID(key),
		Folder:       s.folder,
		ResourceType: "auto",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}
	return res.SecureURL, nil
}

func (s *Cloudinary) Delete(ctx context.Context, key string) error {
	key, err := cleanKey(key)
	if err != nil {
		return err
	}

	id := publicID(key)
	if s.folder != "" {
		id = s.folder + "/" + id
	}
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     id,
		ResourceType: resourceType(key),
	})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("cloudinary destroy: %s", res.Error.Message)
	}
	return nil
}

// publicID drops the extension; Cloudinary appends its own format.
func publicID(key string) string {
	return strings.TrimSuffix(key, path.Ext(key))
}

func resourceType(key string) string {
	switch strings.ToLower(path.Ext(key)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg", ".pdf", ".heic":
		return "image"
	case ".mp4", ".webm", ".mov":
		return "video"
	default:
		return "raw"
	}
}
