package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"nssportal_backend/internals/configs"
)

const (
	maxUploadSize = int64(5 * 1024 * 1024)

	photoMaxW    = 800
	photoQuality = float32(80)
)

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return filenameSanitizer.ReplaceAllString(filename, "_")
}

// GenerateUniqueFilename prefixes a sanitized original name with a UUID so
// repeated uploads never collide on disk.
func GenerateUniqueFilename(folder, original string) string {
	return filepath.Join(folder, uuid.NewString()+"_"+sanitizeFilename(original))
}

// SaveUploadedFile stores a multipart file under UPLOAD_DIR/<folder> and
// returns the stored path. The content is opaque to the caller.
func SaveUploadedFile(folder string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxUploadSize {
		return "", fmt.Errorf("file exceeds %d bytes", maxUploadSize)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	rel := GenerateUniqueFilename(folder, fileHeader.Filename)
	abs := filepath.Join(configs.UploadDir, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("mkdir upload dir: %w", err)
	}

	dst, err := os.Create(abs)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return rel, nil
}

// SavePhotoAsWebP decodes an uploaded jpeg/png photo, shrinks it to a
// reasonable width and re-encodes it lossy WebP before storing it.
func SavePhotoAsWebP(folder string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxUploadSize {
		return "", fmt.Errorf("photo exceeds %d bytes", maxUploadSize)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open photo: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("decode photo: %w", err)
	}

	if img.Bounds().Dx() > photoMaxW {
		img = imaging.Resize(img, photoMaxW, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: photoQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	base := strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename))
	rel := GenerateUniqueFilename(folder, base+".webp")
	abs := filepath.Join(configs.UploadDir, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("mkdir upload dir: %w", err)
	}
	if err := os.WriteFile(abs, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write webp: %w", err)
	}
	return rel, nil
}
