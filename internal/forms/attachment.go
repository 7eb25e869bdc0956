package forms

import (
	"io"
	"path/filepath"
	"strings"

	"workbridge_backend/pkg/apperrors"
)

// FileInfo describes an attached file. Open is nil for metadata-only checks.
type FileInfo struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// Ext returns the lower-cased extension including the dot.
func (f FileInfo) Ext() string {
	return strings.ToLower(filepath.Ext(f.Name))
}

// AttachmentPolicy accepts a file when its MIME type or its extension is
// allowed and its size is within MaxSize.
type AttachmentPolicy struct {
	MaxSize      int64
	ContentTypes []string
	Extensions   []string
}

const MaxCVSize = 5 * 1024 * 1024

// CVPolicy accepts PDF and Word documents up to 5MB.
var CVPolicy = AttachmentPolicy{
	MaxSize: MaxCVSize,
	ContentTypes: []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	},
	Extensions: []string{".pdf", ".doc", ".docx"},
}

func (p AttachmentPolicy) Check(f FileInfo) error {
	contentType := strings.TrimSpace(strings.SplitN(f.ContentType, ";", 2)[0])
	if !containsFold(p.ContentTypes, contentType) && !containsFold(p.Extensions, f.Ext()) {
		return apperrors.ErrInvalidFileType
	}
	if p.MaxSize > 0 && f.Size > p.MaxSize {
		return apperrors.ErrFileTooLarge
	}
	return nil
}

func containsFold(list []string, v string) bool {
	if v == "" {
		return false
	}
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}
