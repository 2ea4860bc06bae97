package assets_test

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.webdroid.dev/webdroid/internal/adapters/assets"
	"go.webdroid.dev/webdroid/internal/adapters/logger"
	"go.webdroid.dev/webdroid/internal/core/domain"
)

func newEmbedder(t *testing.T) *assets.Embedder {
	t.Helper()
	lg := logger.New()
	lg.SetOutput(io.Discard)
	return assets.New(lg)
}

func scaffoldDirs(t *testing.T, ws domain.BuildWorkspace) {
	t.Helper()
	require.NoError(t, os.MkdirAll(ws.AssetsDir(), 0o750))
	for _, bucket := range domain.IconDensities {
		require.NoError(t, os.MkdirAll(filepath.Join(ws.ResDir(), bucket.Name), 0o750))
	}
}

func writeIcon(t *testing.T, path string, size int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xFF})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func TestEmbed_EntryVerbatim(t *testing.T) {
	dir := t.TempDir()
	entry := filepath.Join(dir, "app.html")
	content := []byte("<html><script>const x = \xF0\x9F\x8E\xAF;</script></html>")
	require.NoError(t, os.WriteFile(entry, content, 0o644))

	ws := domain.NewWorkspace(filepath.Join(dir, "ws"), "com.example.demo")
	scaffoldDirs(t, ws)

	err := newEmbedder(t).Embed(context.Background(), domain.ProjectSpec{EntryFile: entry}, ws)
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(ws.AssetsDir(), "index.html"))
	require.NoError(t, err)
	assert.Equal(t, content, got, "entry file is copied byte for byte")
}

func TestEmbed_IconAllDensities(t *testing.T) {
	dir := t.TempDir()
	entry := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(entry, []byte("<html></html>"), 0o644))
	icon := filepath.Join(dir, "icon.png")
	writeIcon(t, icon, 512)

	ws := domain.NewWorkspace(filepath.Join(dir, "ws"), "com.example.demo")
	scaffoldDirs(t, ws)

	spec := domain.ProjectSpec{EntryFile: entry, IconFile: icon}
	require.NoError(t, newEmbedder(t).Embed(context.Background(), spec, ws))

	for _, bucket := range domain.IconDensities {
		path := filepath.Join(ws.ResDir(), bucket.Name, "ic_launcher.png")
		f, err := os.Open(path)
		require.NoError(t, err)
		img, err := png.Decode(f)
		require.NoError(t, f.Close())
		require.NoError(t, err)
		assert.Equal(t, bucket.Size, img.Bounds().Dx(), "%s width", bucket.Name)
		assert.Equal(t, bucket.Size, img.Bounds().Dy(), "%s height", bucket.Name)
	}
}

func TestEmbed_RejectsNonImageIcon(t *testing.T) {
	dir := t.TempDir()
	entry := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(entry, []byte("<html></html>"), 0o644))
	icon := filepath.Join(dir, "icon.png")
	require.NoError(t, os.WriteFile(icon, []byte("not an image"), 0o644))

	ws := domain.NewWorkspace(filepath.Join(dir, "ws"), "com.example.demo")
	scaffoldDirs(t, ws)

	err := newEmbedder(t).Embed(context.Background(), domain.ProjectSpec{EntryFile: entry, IconFile: icon}, ws)
	require.ErrorIs(t, err, domain.ErrAssetRejected)
}

func TestEmbed_RejectsMissingEntry(t *testing.T) {
	dir := t.TempDir()
	ws := domain.NewWorkspace(filepath.Join(dir, "ws"), "com.example.demo")
	scaffoldDirs(t, ws)

	spec := domain.ProjectSpec{EntryFile: filepath.Join(dir, "gone.html")}
	err := newEmbedder(t).Embed(context.Background(), spec, ws)
	require.ErrorIs(t, err, domain.ErrAssetRejected)
}

func TestEmbed_NoIconIsFine(t *testing.T) {
	dir := t.TempDir()
	entry := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(entry, []byte("<html></html>"), 0o644))

	ws := domain.NewWorkspace(filepath.Join(dir, "ws"), "com.example.demo")
	scaffoldDirs(t, ws)

	require.NoError(t, newEmbedder(t).Embed(context.Background(), domain.ProjectSpec{EntryFile: entry}, ws))
	assert.NoFileExists(t, filepath.Join(ws.ResDir(), "mipmap-mdpi", "ic_launcher.png"))
}
