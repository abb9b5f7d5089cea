package service

import (
	"context"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"rheumassoc/api/internal/ids"
	"rheumassoc/api/internal/storage"
)

type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// UploadService stores admin-uploaded files (images, documents) under
// generated names. Any payload is accepted; no type or size checks.
type UploadService struct {
	store storage.UploadStore
	log   zerolog.Logger
}

func NewUploadService(store storage.UploadStore, log zerolog.Logger) *UploadService {
	return &UploadService{
		store: store,
		log:   log,
	}
}

func (s *UploadService) Upload(ctx context.Context, file multipart.File, originalName string) (UploadResult, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return UploadResult{}, err
	}
	name := GenerateFilename(originalName)
	url, err := s.store.Save(ctx, name, data)
	if err != nil {
		return UploadResult{}, err
	}

	s.log.Debug().Str("file", name).Int("size", len(data)).Msg("file uploaded")

	return UploadResult{
		URL:      url,
		Filename: name,
	}, nil
}

// GenerateFilename keeps the original extension and replaces the base name
// with a collision-resistant id. No existence check is performed.
func GenerateFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return ids.New() + ext
}
