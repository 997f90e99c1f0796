package document

import "errors"

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrMissingFile      = errors.New("file is required")
	ErrMissingFields    = errors.New("document_type and title are required")
	ErrInvalidType      = errors.New("invalid document_type")
	ErrFileTooLarge     = errors.New("file exceeds maximum allowed size")
	ErrEmptyFile        = errors.New("file is empty")
	ErrMissingID        = errors.New("id is required")
)
