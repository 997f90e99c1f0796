package document

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"rvconsign/internal/domain"
	"rvconsign/internal/pkg/dates"
	"rvconsign/internal/storage"
)

const MaxFileSize = 50 * 1024 * 1024 // 50 MB

// Service stores the file first, then the metadata row.
type Service struct {
	repo  Repository
	store storage.Storage
}

func NewService(repo Repository, store storage.Storage) *Service {
	return &Service{repo: repo, store: store}
}

// Upload saves the file under {document_type}/{unixms}_{random}.{ext} and
// records it. The stored object is removed again if the row cannot be written.
func (s *Service) Upload(ctx context.Context, req UploadRequest, fh *multipart.FileHeader, uploadedBy string) (*domain.Document, error) {
	if fh == nil {
		return nil, ErrMissingFile
	}
	if strings.TrimSpace(req.DocumentType) == "" || strings.TrimSpace(req.Title) == "" {
		return nil, ErrMissingFields
	}
	docType := domain.DocumentType(req.DocumentType)
	if !docType.Valid() {
		return nil, ErrInvalidType
	}
	if fh.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fh.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		buf := make([]byte, 512)
		n, _ := file.Read(buf)
		mimeType = strings.Split(http.DetectContentType(buf[:n]), ";")[0]
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("failed to rewind file: %w", err)
		}
	}

	key := objectKey(docType, fh.Filename, mimeType)
	url, err := s.store.Save(ctx, key, file, mimeType)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	doc := &domain.Document{
		AssetID:      req.AssetID,
		OwnerID:      req.OwnerID,
		BookingID:    req.BookingID,
		RenterID:     req.RenterID,
		ExpenseID:    req.ExpenseID,
		DocumentType: docType,
		Title:        req.Title,
		Description:  req.Description,
		FileName:     fh.Filename,
		FileURL:      url,
		StoragePath:  key,
		FileSize:     fh.Size,
		MimeType:     mimeType,
		UploadedBy:   uploadedBy,
		Status:       domain.DocumentActive,
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		if rmErr := s.store.Delete(ctx, key); rmErr != nil {
			log.Printf("document_cleanup_failed key=%s err=%v", key, rmErr)
		}
		return nil, fmt.Errorf("failed to save document record: %w", err)
	}
	return doc, nil
}

func (s *Service) List(ctx context.Context, f Filter) ([]domain.Document, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Document, error) {
	return s.repo.Get(ctx, id)
}

// Delete removes the stored object, then the row.
func (s *Service) Delete(ctx context.Context, id string) error {
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, doc.StoragePath); err != nil {
		return fmt.Errorf("failed to delete stored file: %w", err)
	}
	return s.repo.Delete(ctx, id)
}

func objectKey(docType domain.DocumentType, filename, mimeType string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		ext = mimeToExt(mimeType)
	}
	random := strconv.FormatInt(rand.Int64N(36*36*36*36*36*36), 36)
	return fmt.Sprintf("%s/%d_%s.%s", docType, dates.Now().UnixMilli(), random, ext)
}

func mimeToExt(mime string) string {
	switch mime {
	case "image/jpeg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	case "application/pdf":
		return "pdf"
	case "text/plain":
		return "txt"
	default:
		return "bin"
	}
}
