package upload_test

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"go-resume-backend/pkg/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowed(t *testing.T) {
	assert.True(t, upload.Allowed("logo.png"))
	assert.True(t, upload.Allowed("logo.JPG"))
	assert.True(t, upload.Allowed("logo.jpeg"))
	assert.True(t, upload.Allowed("logo.gif"))

	assert.False(t, upload.Allowed("logo.txt"))
	assert.False(t, upload.Allowed("logo.png.exe"))
	assert.False(t, upload.Allowed("logo"))
	assert.False(t, upload.Allowed(""))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "logo.png", upload.SanitizeFilename("logo.png"))
	assert.Equal(t, "my_logo_.png", upload.SanitizeFilename("my logo!.png"))
	assert.Equal(t, "passwd.png", upload.SanitizeFilename("../../etc/passwd.png"))
	assert.Equal(t, "evil.png", upload.SanitizeFilename("..\\windows\\evil.png"))
	assert.Equal(t, "hidden.png", upload.SanitizeFilename(".hidden.png"))
}

func TestStore(t *testing.T) {
	dir := t.TempDir()
	saver := upload.NewSaver(dir, 512)

	t.Run("valid png is written under the sanitized name", func(t *testing.T) {
		name, err := saver.Store(fileHeader(t, "company logo.png", pngBytes(t, 4, 4)))
		require.NoError(t, err)
		assert.Equal(t, "company_logo.png", name)

		_, err = os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err)
	})

	t.Run("disallowed extension is rejected", func(t *testing.T) {
		_, err := saver.Store(fileHeader(t, "notes.txt", []byte("plain text")))
		assert.Error(t, err)
	})

	t.Run("non-image content behind an image extension is rejected", func(t *testing.T) {
		_, err := saver.Store(fileHeader(t, "fake.png", []byte("not an image")))
		assert.Error(t, err)
	})

	t.Run("wide images are downscaled", func(t *testing.T) {
		small := upload.NewSaver(dir, 10)
		name, err := small.Store(fileHeader(t, "banner.png", pngBytes(t, 100, 50)))
		require.NoError(t, err)

		f, err := os.Open(filepath.Join(dir, name))
		require.NoError(t, err)
		defer f.Close()

		img, _, err := image.Decode(f)
		require.NoError(t, err)
		assert.Equal(t, 10, img.Bounds().Dx())
		assert.Equal(t, 5, img.Bounds().Dy())
	})
}

// fileHeader builds a real multipart.FileHeader the way Gin would hand one
// to the saver.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("logo", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["logo"][0]
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
