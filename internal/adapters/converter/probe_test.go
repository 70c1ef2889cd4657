package converter

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackramireznewacc/webp-converter/internal/core/domain"

	"github.com/deepteams/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbePNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cat.png")
	writePNG(t, path, gradientImage(32, 24))

	p := NewWebPProber()
	info, err := p.Probe(t.Context(), path)
	require.NoError(t, err)

	assert.Equal(t, path, info.Path)
	assert.Equal(t, "png", info.Format)
	assert.Equal(t, 32, info.Width)
	assert.Equal(t, 24, info.Height)
	assert.Positive(t, info.Bytes)
	assert.Equal(t, 1, info.Frames)
	assert.False(t, info.Alpha)
}

func TestProbePNGWithAlpha(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "alpha.png")

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 128})
	writePNG(t, path, img)

	p := NewWebPProber()
	info, err := p.Probe(t.Context(), path)
	require.NoError(t, err)

	assert.True(t, info.Alpha)
}

func TestProbeJPEG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cat.jpg")

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(f, gradientImage(20, 10), nil))
	require.NoError(t, f.Close())

	p := NewWebPProber()
	info, err := p.Probe(t.Context(), path)
	require.NoError(t, err)

	assert.Equal(t, "jpeg", info.Format)
	assert.Equal(t, 20, info.Width)
	assert.Equal(t, 10, info.Height)
	assert.False(t, info.Alpha)
}

func TestProbeWebP(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cat.webp")

	f, err := os.Create(path)
	require.NoError(t, err)
	opts := webp.DefaultOptions()
	opts.Lossless = true
	require.NoError(t, webp.Encode(f, gradientImage(10, 8), opts))
	require.NoError(t, f.Close())

	p := NewWebPProber()
	info, err := p.Probe(t.Context(), path)
	require.NoError(t, err)

	assert.Equal(t, "webp (lossless)", info.Format)
	assert.Equal(t, 10, info.Width)
	assert.Equal(t, 8, info.Height)
	assert.Equal(t, 1, info.Frames)
	assert.False(t, info.Animated)
}

func TestProbeMissingFile(t *testing.T) {
	p := NewWebPProber()

	_, err := p.Probe(t.Context(), filepath.Join(t.TempDir(), "absent.png"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFileAccess)
}

func TestProbeDirectory(t *testing.T) {
	p := NewWebPProber()

	_, err := p.Probe(t.Context(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFileAccess)
}

func TestProbeCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "junk.png")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))

	p := NewWebPProber()

	_, err := p.Probe(t.Context(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDecodeFailed)
}
