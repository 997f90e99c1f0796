package document

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rvconsign/internal/middleware"
	"rvconsign/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Upload godoc
// @Summary Upload a document with its metadata
// @Accept multipart/form-data
// @Param file formData file true "File to upload"
// @Param document_type formData string true "Document type"
// @Param title formData string true "Title"
// @Router /documents/upload [post]
func (h *Handler) Upload(c *gin.Context) {
	var req UploadRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid form data")
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, ErrMissingFile.Error())
		return
	}
	if id := middleware.ScopedOwnerID(c); id != "" {
		req.OwnerID = id
	}

	doc, err := h.service.Upload(c.Request.Context(), req, fh, middleware.UserID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, doc)
}

// List godoc
// @Summary List documents
// @Router /documents [get]
func (h *Handler) List(c *gin.Context) {
	f := Filter{
		DocumentType: c.Query("type"),
		AssetID:      c.Query("asset_id"),
		OwnerID:      c.Query("owner_id"),
		BookingID:    c.Query("booking_id"),
	}
	if f.DocumentType == "" {
		f.DocumentType = c.Query("document_type")
	}
	if id := middleware.ScopedOwnerID(c); id != "" {
		f.OwnerID = id
	}

	docs, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, docs)
}

// Delete godoc
// @Summary Delete a document and its stored file
// @Router /documents/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		id = c.Query("id")
	}
	if id == "" {
		response.BadRequest(c, ErrMissingID.Error())
		return
	}

	if scope := middleware.ScopedOwnerID(c); scope != "" {
		doc, err := h.service.Get(c.Request.Context(), id)
		if err != nil {
			h.writeError(c, err)
			return
		}
		if doc.OwnerID != scope {
			response.NotFound(c, ErrDocumentNotFound.Error())
			return
		}
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrDocumentNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, ErrFileTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
	case errors.Is(err, ErrMissingFile), errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidType), errors.Is(err, ErrEmptyFile):
		response.BadRequest(c, err.Error())
	default:
		response.Internal(c, err)
	}
}
