// Package storage saves uploaded images either to a local directory or to an
// S3-compatible bucket, and resolves stored references back to something
// renderable.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/rs/zerolog/log"

	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/model"
)

// Storage saves one uploaded image and returns the reference to persist:
// a relative path for the local backend, a public URL for the bucket one.
type Storage interface {
	SaveFile(fileHeader *multipart.FileHeader, prefix string) (string, error)
}

type LocalStorage struct {
	uploadDir string
}

type SpacesStorage struct {
	client *s3.S3
	bucket string
	cdnURL string
}

func NewLocalStorage(uploadDir string) *LocalStorage {
	return &LocalStorage{uploadDir: uploadDir}
}

func NewSpacesStorage(endpoint, region, bucket, cdnURL, accessKey, secretKey string) (*SpacesStorage, error) {
	config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(accessKey, secretKey, ""),
		Endpoint:         aws.String(endpoint),
		Region:           aws.String(region),
		S3ForcePathStyle: aws.Bool(false),
	}

	sess, err := session.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &SpacesStorage{
		client: s3.New(sess),
		bucket: bucket,
		cdnURL: cdnURL,
	}, nil
}

// uploadName builds the stored filename from the record's display name and
// the upload instant, keeping the original file's extension.
func uploadName(prefix, originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	if ext == "" {
		ext = ".png"
	}
	return fmt.Sprintf("%s-%d%s", model.Slugify(prefix), time.Now().Unix(), ext)
}

func contentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, prefix string) (string, error) {
	name := uploadName(prefix, fileHeader.Filename)
	uploadPath := filepath.Join(ls.uploadDir, name)

	if err := os.MkdirAll(ls.uploadDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(uploadPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return filepath.ToSlash(uploadPath), nil
}

func (ss *SpacesStorage) SaveFile(fileHeader *multipart.FileHeader, prefix string) (string, error) {
	name := uploadName(prefix, fileHeader.Filename)

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	key := fmt.Sprintf("uploads/%s", name)

	_, err = ss.client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(ss.bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(contentType(name)),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to bucket: %w", err)
	}

	return fmt.Sprintf("%s/%s", strings.TrimSuffix(ss.cdnURL, "/"), key), nil
}

// FallbackStorage uploads to the remote tier and lands the file locally when
// that fails. A failed remote upload stores nothing remotely, so no record
// ever references a half-written object.
type FallbackStorage struct {
	remote Storage
	local  Storage
}

func NewFallbackStorage(remote, local Storage) *FallbackStorage {
	return &FallbackStorage{remote: remote, local: local}
}

func (fs *FallbackStorage) SaveFile(fileHeader *multipart.FileHeader, prefix string) (string, error) {
	ref, err := fs.remote.SaveFile(fileHeader, prefix)
	if err != nil {
		log.Warn().Err(err).Str("prefix", prefix).Msg("remote image upload failed, saving locally")
		return fs.local.SaveFile(fileHeader, prefix)
	}
	return ref, nil
}

// Resolve turns a stored image reference into a displayable handle. Remote
// URLs pass through; local paths must exist on disk and come back as web
// paths. ok is false for an empty reference or a missing local file.
func Resolve(ref string) (string, bool) {
	if ref == "" {
		return "", false
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref, true
	}
	if _, err := os.Stat(filepath.FromSlash(ref)); err != nil {
		return "", false
	}
	if strings.HasPrefix(ref, "/") {
		return ref, true
	}
	return "/" + strings.TrimPrefix(ref, "./"), true
}
