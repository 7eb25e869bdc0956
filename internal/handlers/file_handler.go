package handlers

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"workbridge_backend/internal/logger"
	"workbridge_backend/internal/storage"
	"workbridge_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// TokenVerifier resolves a signed download token to an object path.
type TokenVerifier interface {
	VerifySignedToken(token string) (string, error)
}

// FileHandler serves signed CV downloads for local storage. Remote backends
// sign their own URLs, so the handler is only mounted with a verifier.
type FileHandler struct {
	*BaseHandler
	storage  storage.Storage
	verifier TokenVerifier
}

func NewFileHandler(base *BaseHandler, store storage.Storage, verifier TokenVerifier) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		storage:     store,
		verifier:    verifier,
	}
}

func (h *FileHandler) RegisterRoutes(r *gin.RouterGroup) {
	if h.verifier == nil {
		return
	}
	files := r.Group("/files")
	{
		files.GET("/signed", h.ServeSigned)
	}
}

// ServeSigned godoc
// @Summary Download a signed file
// @Tags files
// @Produce octet-stream
// @Param token query string true "Signed token"
// @Success 200 {file} file
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/files/signed [get]
func (h *FileHandler) ServeSigned(c *gin.Context) {
	ctx := c.Request.Context()

	path, err := h.verifier.VerifySignedToken(c.Query("token"))
	if err != nil {
		apperrors.HandleError(c, apperrors.NewForbiddenError("Link is invalid or has expired"))
		return
	}

	reader, err := h.storage.Get(ctx, path)
	if err != nil {
		logger.CtxWarn(ctx, "Signed file missing", "path", path, "error", err)
		apperrors.HandleError(c, apperrors.NewNotFoundError("file", "File not found"))
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	if size, err := h.storage.GetSize(ctx, path); err == nil {
		c.Header("Content-Length", strconv.FormatInt(size, 10))
	}
	c.Header("Cache-Control", "private, no-store")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filepath.Base(path)))
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, reader); err != nil {
		// headers are already sent
		c.Error(err)
	}
}
