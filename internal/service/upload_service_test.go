package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploadStore struct {
	saved map[string][]byte
}

func (f *fakeUploadStore) Save(_ context.Context, name string, data []byte) (string, error) {
	if f.saved == nil {
		f.saved = make(map[string][]byte)
	}
	f.saved[name] = data
	return "/uploads/" + name, nil
}

type bytesFile struct {
	*bytes.Reader
}

func (bytesFile) Close() error { return nil }

func newBytesFile(data []byte) bytesFile {
	return bytesFile{bytes.NewReader(data)}
}

func TestUploadStoresFile(t *testing.T) {
	store := &fakeUploadStore{}
	svc := NewUploadService(store, zerolog.Nop())

	result, err := svc.Upload(context.Background(), newBytesFile([]byte("pdf bytes")), "Charter.PDF")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(result.Filename, ".pdf"))
	assert.Equal(t, "/uploads/"+result.Filename, result.URL)
	assert.Equal(t, []byte("pdf bytes"), store.saved[result.Filename])
}

func TestUploadAcceptsEmptyFile(t *testing.T) {
	store := &fakeUploadStore{}
	svc := NewUploadService(store, zerolog.Nop())

	result, err := svc.Upload(context.Background(), newBytesFile(nil), "empty.png")
	require.NoError(t, err)

	saved, ok := store.saved[result.Filename]
	assert.True(t, ok)
	assert.Empty(t, saved)
}

func TestGenerateFilename(t *testing.T) {
	first := GenerateFilename("photo.JPG")
	second := GenerateFilename("photo.JPG")

	assert.True(t, strings.HasSuffix(first, ".jpg"))
	assert.NotEqual(t, first, second)

	noExt := GenerateFilename("README")
	assert.NotContains(t, noExt, ".")
}
