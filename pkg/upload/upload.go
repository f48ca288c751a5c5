// Package upload stores logo attachments under a fixed directory. Filenames
// are sanitized, the extension whitelist is strict, and oversized images are
// downscaled before they hit disk.
package upload

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/image/draw"
)

// Allowed logo extensions (strict whitelist)
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

type Saver struct {
	dir      string
	maxWidth int
}

// NewSaver returns a Saver writing into dir. Images wider than maxWidth are
// downscaled on save; zero disables scaling.
func NewSaver(dir string, maxWidth int) *Saver {
	return &Saver{dir: dir, maxWidth: maxWidth}
}

// Allowed reports whether the filename carries a whitelisted extension.
func Allowed(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return allowedExtensions[ext]
}

// SanitizeFilename strips path components and replaces unsafe characters so
// the result is a bare, safe file name. Leading dots are removed to keep
// hidden and relative names out of the upload directory.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, "._")
	return name
}

// Store validates, sanitizes and persists an uploaded logo, returning the
// stored filename. Callers treat any error as "use the default logo".
func (s *Saver) Store(file *multipart.FileHeader) (string, error) {
	if !Allowed(file.Filename) {
		return "", fmt.Errorf("file extension not allowed: %s", file.Filename)
	}
	name := SanitizeFilename(file.Filename)
	if name == "" {
		return "", fmt.Errorf("empty filename after sanitizing: %s", file.Filename)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	img, format, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("decode uploaded image: %w", err)
	}
	img = s.scale(img)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	out, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create logo file: %w", err)
	}
	defer out.Close()

	switch format {
	case "png":
		err = png.Encode(out, img)
	case "jpeg":
		err = jpeg.Encode(out, img, nil)
	case "gif":
		err = gif.Encode(out, img, nil)
	default:
		err = fmt.Errorf("unsupported image format: %s", format)
	}
	if err != nil {
		return "", fmt.Errorf("encode logo: %w", err)
	}
	return name, nil
}

// scale downscales wide logos, preserving aspect ratio.
func (s *Saver) scale(img image.Image) image.Image {
	if s.maxWidth <= 0 || img.Bounds().Dx() <= s.maxWidth {
		return img
	}
	width := img.Bounds().Dx()
	height := img.Bounds().Dy() * s.maxWidth / width
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, s.maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
