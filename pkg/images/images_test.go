package images

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uploadHeader packs raw bytes into a multipart file header the way a form
// submission would deliver them.
func uploadHeader(t *testing.T, filename string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["image"]
	require.Len(t, files, 1)
	return files[0]
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func TestProcessPNG(t *testing.T) {
	data := pngBytes(t, 800, 600)

	upload, err := Process(uploadHeader(t, "photo.png", data))
	require.NoError(t, err)

	assert.Equal(t, "image/png", upload.ContentType)
	assert.Equal(t, data, upload.Data, "original bytes are stored untouched")
	assert.True(t, strings.HasPrefix(upload.Path, PathPrefix))
	assert.True(t, strings.HasSuffix(upload.Path, ".png"))

	// thumbnail is a JPEG scaled down to the fixed width
	thumb, format, err := image.Decode(bytes.NewReader(upload.Thumbnail))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 320, thumb.Bounds().Dx())
}

func TestProcessRejectsNonImage(t *testing.T) {
	_, err := Process(uploadHeader(t, "notes.txt", []byte("just some text")))
	assert.ErrorIs(t, err, ErrNotAnImage)
}

func TestProcessPathsAreUnique(t *testing.T) {
	data := pngBytes(t, 10, 10)

	first, err := Process(uploadHeader(t, "a.png", data))
	require.NoError(t, err)
	second, err := Process(uploadHeader(t, "a.png", data))
	require.NoError(t, err)

	assert.NotEqual(t, first.Path, second.Path)
}
