package storage

import (
	"bytes"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func uploadFixture(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", name)
	assert.NoError(t, err)
	_, err = fw.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(1 << 20)
	assert.NoError(t, err)
	return form.File["image"][0]
}

func TestLocalStorageSaveFile(t *testing.T) {
	dir := t.TempDir()
	ls := NewLocalStorage(dir)

	ref, err := ls.SaveFile(uploadFixture(t, "Photo du Zoo.JPG", []byte("fake image")), "Zoo de Zurich")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(ref), "zoo-de-zurich-"))
	assert.True(t, strings.HasSuffix(ref, ".jpg"))

	data, err := os.ReadFile(filepath.FromSlash(ref))
	assert.NoError(t, err)
	assert.Equal(t, []byte("fake image"), data)
}

func TestLocalStorageDefaultsExtension(t *testing.T) {
	ls := NewLocalStorage(t.TempDir())
	ref, err := ls.SaveFile(uploadFixture(t, "sans-extension", []byte("x")), "Piscine")
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, ".png"))
}

type brokenStorage struct{}

func (brokenStorage) SaveFile(*multipart.FileHeader, string) (string, error) {
	return "", errors.New("bucket unreachable")
}

func TestFallbackStorageLandsFileLocally(t *testing.T) {
	dir := t.TempDir()
	fs := NewFallbackStorage(brokenStorage{}, NewLocalStorage(dir))

	ref, err := fs.SaveFile(uploadFixture(t, "img.png", []byte("x")), "Musée")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, filepath.ToSlash(dir)))
	_, err = os.Stat(filepath.FromSlash(ref))
	assert.NoError(t, err)
}

func TestResolve(t *testing.T) {
	got, ok := Resolve("")
	assert.False(t, ok)
	assert.Empty(t, got)

	got, ok = Resolve("https://cdn.example.ch/uploads/zoo.png")
	assert.True(t, ok)
	assert.Equal(t, "https://cdn.example.ch/uploads/zoo.png", got)

	_, ok = Resolve("uploads/does-not-exist.png")
	assert.False(t, ok)

	dir := t.TempDir()
	path := filepath.Join(dir, "zoo.png")
	assert.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	got, ok = Resolve(filepath.ToSlash(path))
	assert.True(t, ok)
	assert.Equal(t, filepath.ToSlash(path), got)
}
