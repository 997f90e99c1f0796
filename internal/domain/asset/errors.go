package asset

import "errors"

var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrOwnerNotFound = errors.New("owner not found")
	ErrInvalidStatus = errors.New("invalid asset status")
	ErrMissingID     = errors.New("asset id is required")
)
